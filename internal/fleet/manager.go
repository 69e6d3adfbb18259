package fleet

import (
	"strings"
	"time"
)

// Manager is an operations staff record managing orders.
type Manager struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Status        Status
	AddedAt       time.Time
	ManagedOrders int
}

// ManagerInput carries the operator-supplied fields for a new manager.
type ManagerInput struct {
	Name  string
	Email string
	Phone string
}

// Normalize trims surrounding whitespace from every field.
func (in ManagerInput) Normalize() ManagerInput {
	return ManagerInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
}

// Validate checks required fields in form order.
func (in ManagerInput) Validate() error {
	in = in.Normalize()
	return validateContact(in.Name, in.Email, in.Phone)
}

// NewManager builds an active manager with zeroed counters dated at now.
func NewManager(input ManagerInput, id string, now time.Time) (Manager, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return Manager{}, err
	}
	return Manager{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Status:  StatusActive,
		AddedAt: dateOf(now),
	}, nil
}

// Matches reports whether query appears in the manager's name, email, or phone.
func (m Manager) Matches(query string) bool {
	return matchesAny(query, m.Name, m.Email, m.Phone)
}
