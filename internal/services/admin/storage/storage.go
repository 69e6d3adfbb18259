package storage

import (
	"context"

	"github.com/louisbranch/dispatchdesk/internal/fleet"
	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
)

// ErrNotFound matches (via errors.Is) any lookup of a missing record.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// NotFound builds a not-found error carrying the record kind and id.
func NotFound(kind, id string) error {
	return apperrors.WithMetadata(apperrors.CodeNotFound, kind+" "+id+" not found", map[string]string{
		"Kind": kind,
		"ID":   id,
	})
}

// ManagerStore manages the manager list.
type ManagerStore interface {
	ListManagers(ctx context.Context, query string) ([]fleet.Manager, error)
	AddManager(ctx context.Context, input fleet.ManagerInput) (fleet.Manager, error)
	ToggleManagerStatus(ctx context.Context, id string) (fleet.Manager, error)
	DeleteManager(ctx context.Context, id string) error
}

// DriverStore manages the driver list.
type DriverStore interface {
	ListDrivers(ctx context.Context, query string) ([]fleet.Driver, error)
	AddDriver(ctx context.Context, input fleet.DriverInput) (fleet.Driver, error)
	ToggleDriverStatus(ctx context.Context, id string) (fleet.Driver, error)
	DeleteDriver(ctx context.Context, id string) error
}

// OrderStore exposes the read-only order list.
type OrderStore interface {
	ListOrders(ctx context.Context, filter fleet.OrderFilter) ([]fleet.Order, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	ManagerStore
	DriverStore
	OrderStore
	Close() error
}
