package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/dispatchdesk/internal/fleet"
	"github.com/louisbranch/dispatchdesk/internal/platform/id"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/dispatchdesk/internal/services/admin/storage/memory"

const (
	kindManager = "manager"
	kindDriver  = "driver"
)

// Options configures a Store. Zero values select production defaults.
type Options struct {
	// NewID generates record identifiers; defaults to id.NewPrefixedID.
	NewID func(prefix string) (string, error)
	// Now supplies the current time for date-added stamps.
	Now func() time.Time
	// Tracer records one span per store operation.
	Tracer trace.Tracer
}

// Store keeps managers, drivers, and orders in insertion order.
type Store struct {
	mu       sync.RWMutex
	managers []fleet.Manager
	drivers  []fleet.Driver
	orders   []fleet.Order

	newID  func(prefix string) (string, error)
	now    func() time.Time
	tracer trace.Tracer
}

var _ storage.Store = (*Store)(nil)

// New returns an empty store.
func New(options Options) *Store {
	s := &Store{
		newID:  options.NewID,
		now:    options.Now,
		tracer: options.Tracer,
	}
	if s.newID == nil {
		s.newID = id.NewPrefixedID
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// NewSeeded returns a store preloaded with the sample records.
func NewSeeded(options Options) *Store {
	s := New(options)
	s.Seed()
	return s
}

// Seed resets every list to the sample records.
func (s *Store) Seed() {
	s.Load(SampleManagers(), SampleDrivers(), SampleOrders())
}

// Load replaces every list with copies of the supplied records.
func (s *Store) Load(managers []fleet.Manager, drivers []fleet.Driver, orders []fleet.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.managers = append([]fleet.Manager(nil), managers...)
	s.drivers = append([]fleet.Driver(nil), drivers...)
	s.orders = append([]fleet.Order(nil), orders...)
}

// Close is a no-op; it satisfies storage.Store.
func (s *Store) Close() error {
	return nil
}

// ListManagers returns managers matching query in insertion order.
func (s *Store) ListManagers(ctx context.Context, query string) ([]fleet.Manager, error) {
	_, span := s.start(ctx, "ListManagers", attribute.String("query", query))
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.Manager, 0, len(s.managers))
	for _, manager := range s.managers {
		if manager.Matches(query) {
			out = append(out, manager)
		}
	}
	span.SetAttributes(attribute.Int("result.count", len(out)))
	return out, nil
}

// AddManager validates input and appends a new active manager.
func (s *Store) AddManager(ctx context.Context, input fleet.ManagerInput) (fleet.Manager, error) {
	_, span := s.start(ctx, "AddManager")
	defer span.End()

	if err := input.Normalize().Validate(); err != nil {
		return fleet.Manager{}, fail(span, err)
	}
	recordID, err := s.newID("mgr")
	if err != nil {
		return fleet.Manager{}, fail(span, fmt.Errorf("generate manager id: %w", err))
	}
	manager, err := fleet.NewManager(input, recordID, s.now())
	if err != nil {
		return fleet.Manager{}, fail(span, err)
	}

	s.mu.Lock()
	s.managers = append(s.managers, manager)
	s.mu.Unlock()

	span.SetAttributes(attribute.String("record.id", manager.ID))
	return manager, nil
}

// ToggleManagerStatus flips a manager between active and locked.
func (s *Store) ToggleManagerStatus(ctx context.Context, managerID string) (fleet.Manager, error) {
	_, span := s.start(ctx, "ToggleManagerStatus", attribute.String("record.id", managerID))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.managers {
		if s.managers[i].ID == managerID {
			s.managers[i].Status = s.managers[i].Status.Toggle()
			return s.managers[i], nil
		}
	}
	return fleet.Manager{}, fail(span, storage.NotFound(kindManager, managerID))
}

// DeleteManager removes a manager from the list.
func (s *Store) DeleteManager(ctx context.Context, managerID string) error {
	_, span := s.start(ctx, "DeleteManager", attribute.String("record.id", managerID))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.managers {
		if s.managers[i].ID == managerID {
			s.managers = append(s.managers[:i], s.managers[i+1:]...)
			return nil
		}
	}
	return fail(span, storage.NotFound(kindManager, managerID))
}

// ListDrivers returns drivers matching query in insertion order.
func (s *Store) ListDrivers(ctx context.Context, query string) ([]fleet.Driver, error) {
	_, span := s.start(ctx, "ListDrivers", attribute.String("query", query))
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.Driver, 0, len(s.drivers))
	for _, driver := range s.drivers {
		if driver.Matches(query) {
			out = append(out, driver)
		}
	}
	span.SetAttributes(attribute.Int("result.count", len(out)))
	return out, nil
}

// AddDriver validates input and appends a new active driver.
func (s *Store) AddDriver(ctx context.Context, input fleet.DriverInput) (fleet.Driver, error) {
	_, span := s.start(ctx, "AddDriver")
	defer span.End()

	if err := input.Normalize().Validate(); err != nil {
		return fleet.Driver{}, fail(span, err)
	}
	recordID, err := s.newID("drv")
	if err != nil {
		return fleet.Driver{}, fail(span, fmt.Errorf("generate driver id: %w", err))
	}
	driver, err := fleet.NewDriver(input, recordID, s.now())
	if err != nil {
		return fleet.Driver{}, fail(span, err)
	}

	s.mu.Lock()
	s.drivers = append(s.drivers, driver)
	s.mu.Unlock()

	span.SetAttributes(attribute.String("record.id", driver.ID))
	return driver, nil
}

// ToggleDriverStatus flips a driver between active and locked.
func (s *Store) ToggleDriverStatus(ctx context.Context, driverID string) (fleet.Driver, error) {
	_, span := s.start(ctx, "ToggleDriverStatus", attribute.String("record.id", driverID))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drivers {
		if s.drivers[i].ID == driverID {
			s.drivers[i].Status = s.drivers[i].Status.Toggle()
			return s.drivers[i], nil
		}
	}
	return fleet.Driver{}, fail(span, storage.NotFound(kindDriver, driverID))
}

// DeleteDriver removes a driver from the list.
func (s *Store) DeleteDriver(ctx context.Context, driverID string) error {
	_, span := s.start(ctx, "DeleteDriver", attribute.String("record.id", driverID))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drivers {
		if s.drivers[i].ID == driverID {
			s.drivers = append(s.drivers[:i], s.drivers[i+1:]...)
			return nil
		}
	}
	return fail(span, storage.NotFound(kindDriver, driverID))
}

// ListOrders returns orders passing filter in insertion order.
func (s *Store) ListOrders(ctx context.Context, filter fleet.OrderFilter) ([]fleet.Order, error) {
	_, span := s.start(ctx, "ListOrders",
		attribute.String("query", filter.Query),
		attribute.String("status", string(filter.Status)),
	)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if filter.Matches(order) {
			out = append(out, order)
		}
	}
	span.SetAttributes(attribute.Int("result.count", len(out)))
	return out, nil
}

func (s *Store) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.tracer.Start(ctx, "memory."+op, trace.WithAttributes(attrs...))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
