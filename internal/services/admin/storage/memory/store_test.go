package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/dispatchdesk/internal/fleet"
	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/storage"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var fixedNow = time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

func sequentialIDs() func(string) (string, error) {
	var mu sync.Mutex
	n := 0
	return func(prefix string) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-new-%d", prefix, n), nil
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewSeeded(Options{
		NewID: sequentialIDs(),
		Now:   func() time.Time { return fixedNow },
	})
}

func TestSeedProvidesSampleRecords(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	managers, err := store.ListManagers(ctx, "")
	if err != nil {
		t.Fatalf("ListManagers: %v", err)
	}
	drivers, err := store.ListDrivers(ctx, "")
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	orders, err := store.ListOrders(ctx, fleet.OrderFilter{})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(managers) != len(SampleManagers()) || len(drivers) != len(SampleDrivers()) || len(orders) != len(SampleOrders()) {
		t.Fatalf("seed sizes = %d/%d/%d", len(managers), len(drivers), len(orders))
	}
}

func TestSampleIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	check := func(kind, id string) {
		if seen[kind+id] {
			t.Fatalf("duplicate %s id %q", kind, id)
		}
		seen[kind+id] = true
	}
	for _, m := range SampleManagers() {
		check("manager", m.ID)
	}
	for _, d := range SampleDrivers() {
		check("driver", d.ID)
	}
	for _, o := range SampleOrders() {
		check("order", o.ID)
	}
}

func TestAddManagerAppendsActiveRecord(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	before, _ := store.ListManagers(ctx, "")

	got, err := store.AddManager(ctx, fleet.ManagerInput{Name: "Zoe Park", Email: "zoe@example.com", Phone: "555-9999"})
	if err != nil {
		t.Fatalf("AddManager: %v", err)
	}
	want := fleet.Manager{
		ID:      "mgr-new-1",
		Name:    "Zoe Park",
		Email:   "zoe@example.com",
		Phone:   "555-9999",
		Status:  fleet.StatusActive,
		AddedAt: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("AddManager mismatch (-want +got):\n%s", diff)
	}

	after, _ := store.ListManagers(ctx, "")
	if len(after) != len(before)+1 {
		t.Fatalf("len = %d, want %d", len(after), len(before)+1)
	}
	if diff := cmp.Diff(want, after[len(after)-1]); diff != "" {
		t.Fatalf("last manager mismatch (-want +got):\n%s", diff)
	}
}

func TestAddManagerRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	before, _ := store.ListManagers(ctx, "")

	_, err := store.AddManager(ctx, fleet.ManagerInput{Name: "No Phone", Email: "np@example.com"})
	if got := apperrors.CodeOf(err); got != apperrors.CodePhoneRequired {
		t.Fatalf("code = %q, want %q", got, apperrors.CodePhoneRequired)
	}
	after, _ := store.ListManagers(ctx, "")
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("list changed (-before +after):\n%s", diff)
	}
}

func TestAddDriverRequiresVehicle(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	_, err := store.AddDriver(context.Background(), fleet.DriverInput{Name: "A", Email: "a@b.c", Phone: "1"})
	if got := apperrors.CodeOf(err); got != apperrors.CodeVehicleRequired {
		t.Fatalf("code = %q, want %q", got, apperrors.CodeVehicleRequired)
	}

	driver, err := store.AddDriver(context.Background(), fleet.DriverInput{Name: "A", Email: "a@b.c", Phone: "1", Vehicle: "Scooter"})
	if err != nil {
		t.Fatalf("AddDriver: %v", err)
	}
	if driver.ID != "drv-new-1" || driver.CompletedDeliveries != 0 || driver.Status != fleet.StatusActive {
		t.Fatalf("driver = %+v", driver)
	}
}

func TestRejectedAddsDoNotConsumeIDs(t *testing.T) {
	t.Parallel()

	calls := 0
	store := New(Options{
		NewID: func(prefix string) (string, error) {
			calls++
			return fmt.Sprintf("%s-%d", prefix, calls), nil
		},
		Now: func() time.Time { return fixedNow },
	})
	ctx := context.Background()

	if _, err := store.AddManager(ctx, fleet.ManagerInput{Name: "  ", Email: "a@b.c", Phone: "1"}); err == nil {
		t.Fatal("expected validation error for blank name")
	}
	if _, err := store.AddDriver(ctx, fleet.DriverInput{Name: "A", Email: "not-an-email", Phone: "1", Vehicle: "Van"}); err == nil {
		t.Fatal("expected validation error for invalid email")
	}
	if calls != 0 {
		t.Fatalf("id generator calls = %d, want 0", calls)
	}

	manager, err := store.AddManager(ctx, fleet.ManagerInput{Name: "A", Email: "a@b.c", Phone: "1"})
	if err != nil {
		t.Fatalf("AddManager: %v", err)
	}
	if manager.ID != "mgr-1" {
		t.Fatalf("manager id = %q, want %q", manager.ID, "mgr-1")
	}
}

func TestAddPropagatesIDGeneratorFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("entropy exhausted")
	store := New(Options{NewID: func(string) (string, error) { return "", boom }})
	if _, err := store.AddManager(context.Background(), fleet.ManagerInput{Name: "A", Email: "a@b.c", Phone: "1"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	managers, _ := store.ListManagers(context.Background(), "")
	if len(managers) != 0 {
		t.Fatalf("managers = %d, want 0", len(managers))
	}
}

func TestToggleTwiceRestoresStatus(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	locked, err := store.ToggleManagerStatus(ctx, "mgr-1")
	if err != nil {
		t.Fatalf("ToggleManagerStatus: %v", err)
	}
	if locked.Status != fleet.StatusLocked {
		t.Fatalf("status = %q, want locked", locked.Status)
	}
	restored, err := store.ToggleManagerStatus(ctx, "mgr-1")
	if err != nil {
		t.Fatalf("ToggleManagerStatus: %v", err)
	}
	if restored.Status != fleet.StatusActive {
		t.Fatalf("status = %q, want active", restored.Status)
	}

	driver, err := store.ToggleDriverStatus(ctx, "drv-4")
	if err != nil {
		t.Fatalf("ToggleDriverStatus: %v", err)
	}
	if driver.Status != fleet.StatusActive {
		t.Fatalf("driver status = %q, want active", driver.Status)
	}
}

func TestDeleteRemovesOnlyMatchingRecord(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if err := store.DeleteDriver(ctx, "drv-2"); err != nil {
		t.Fatalf("DeleteDriver: %v", err)
	}
	drivers, _ := store.ListDrivers(ctx, "")
	if len(drivers) != len(SampleDrivers())-1 {
		t.Fatalf("len = %d", len(drivers))
	}
	for _, d := range drivers {
		if d.ID == "drv-2" {
			t.Fatal("drv-2 still listed")
		}
	}
	if drivers[0].ID != "drv-1" || drivers[1].ID != "drv-3" {
		t.Fatalf("order not preserved: %s, %s", drivers[0].ID, drivers[1].ID)
	}
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	checks := map[string]error{
		"toggle manager": func() error { _, err := store.ToggleManagerStatus(ctx, "missing"); return err }(),
		"delete manager": store.DeleteManager(ctx, "missing"),
		"toggle driver":  func() error { _, err := store.ToggleDriverStatus(ctx, "missing"); return err }(),
		"delete driver":  store.DeleteDriver(ctx, "missing"),
	}
	for name, err := range checks {
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("%s: err = %v, want not found", name, err)
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	managers, _ := store.ListManagers(ctx, "SOUZA")
	if len(managers) != 1 || managers[0].ID != "mgr-1" {
		t.Fatalf("managers = %+v", managers)
	}
	drivers, _ := store.ListDrivers(ctx, "van")
	if len(drivers) != 3 {
		t.Fatalf("van drivers = %d, want 3", len(drivers))
	}
	none, _ := store.ListDrivers(ctx, "nobody-matches-this")
	if len(none) != 0 {
		t.Fatalf("drivers = %d, want 0", len(none))
	}
}

func TestListOrdersFiltersByQueryAndStatus(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	pending, _ := store.ListOrders(ctx, fleet.OrderFilter{Status: fleet.OrderPending})
	for _, o := range pending {
		if o.Status != fleet.OrderPending {
			t.Fatalf("order %s status = %q", o.ID, o.Status)
		}
	}
	if len(pending) != 3 {
		t.Fatalf("pending = %d, want 3", len(pending))
	}

	cafe, _ := store.ListOrders(ctx, fleet.OrderFilter{Query: "blue harbor", Status: fleet.OrderDelivered})
	if len(cafe) != 1 || cafe[0].Code != "ORD-1001" {
		t.Fatalf("cafe orders = %+v", cafe)
	}
}

func TestListReturnsCopies(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	managers, _ := store.ListManagers(ctx, "")
	managers[0].Name = "Mutated"
	again, _ := store.ListManagers(ctx, "")
	if again[0].Name == "Mutated" {
		t.Fatal("list exposed internal storage")
	}
}

func TestOperationsRecordSpans(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	store := NewSeeded(Options{Tracer: provider.Tracer("test")})
	ctx := context.Background()
	_, _ = store.ListManagers(ctx, "")
	_ = store.DeleteManager(ctx, "missing")

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}
	if spans[0].Name() != "memory.ListManagers" || spans[1].Name() != "memory.DeleteManager" {
		t.Fatalf("span names = %q, %q", spans[0].Name(), spans[1].Name())
	}
	if len(spans[1].Events()) == 0 {
		t.Fatal("expected recorded error event on failed delete")
	}
}

func TestConcurrentMutations(t *testing.T) {
	t.Parallel()

	store := New(Options{NewID: sequentialIDs()})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = store.AddDriver(ctx, fleet.DriverInput{Name: fmt.Sprintf("D%d", i), Email: "d@x.y", Phone: "1", Vehicle: "Van"})
			_, _ = store.ListDrivers(ctx, "")
		}(i)
	}
	wg.Wait()

	drivers, _ := store.ListDrivers(ctx, "")
	if len(drivers) != 20 {
		t.Fatalf("drivers = %d, want 20", len(drivers))
	}
}
