package fleet

import (
	"strings"
	"time"

	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
)

// Driver is a delivery staff record fulfilling orders.
type Driver struct {
	ID                  string
	Name                string
	Email               string
	Phone               string
	Vehicle             string
	Status              Status
	AddedAt             time.Time
	CompletedDeliveries int
}

// DriverInput carries the operator-supplied fields for a new driver.
type DriverInput struct {
	Name    string
	Email   string
	Phone   string
	Vehicle string
}

// Normalize trims surrounding whitespace from every field.
func (in DriverInput) Normalize() DriverInput {
	return DriverInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Vehicle: strings.TrimSpace(in.Vehicle),
	}
}

// Validate checks required fields in form order.
func (in DriverInput) Validate() error {
	in = in.Normalize()
	if err := validateContact(in.Name, in.Email, in.Phone); err != nil {
		return err
	}
	if in.Vehicle == "" {
		return apperrors.New(apperrors.CodeVehicleRequired, "vehicle is required")
	}
	return nil
}

// NewDriver builds an active driver with zeroed counters dated at now.
func NewDriver(input DriverInput, id string, now time.Time) (Driver, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return Driver{}, err
	}
	return Driver{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Vehicle: input.Vehicle,
		Status:  StatusActive,
		AddedAt: dateOf(now),
	}, nil
}

// Matches reports whether query appears in the driver's name, email, phone, or vehicle.
func (d Driver) Matches(query string) bool {
	return matchesAny(query, d.Name, d.Email, d.Phone, d.Vehicle)
}
