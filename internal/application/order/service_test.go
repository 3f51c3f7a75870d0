package order

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/domain/order"
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func timeNowMinusDay() time.Time {
	return time.Now().Add(-24 * time.Hour)
}

type fakeOrderRepo struct {
	orders map[uint]*order.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*order.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.SetID(r.nextID)
	r.orders[r.nextID] = o
	r.nextID++
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	r.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uint) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	var out []*order.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListByKeySystem(ctx context.Context, keySystemID uint) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range r.orders {
		if o.KeySystemID() == keySystemID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeKeySystemRepo struct {
	systems map[uint]*keysystem.KeySystem
}

func (r *fakeKeySystemRepo) Create(ctx context.Context, ks *keysystem.KeySystem) error { return nil }
func (r *fakeKeySystemRepo) GetByID(ctx context.Context, id uint) (*keysystem.KeySystem, error) {
	return r.systems[id], nil
}
func (r *fakeKeySystemRepo) Update(ctx context.Context, ks *keysystem.KeySystem) error { return nil }
func (r *fakeKeySystemRepo) Delete(ctx context.Context, id uint) error                 { return nil }
func (r *fakeKeySystemRepo) List(ctx context.Context, filter keysystem.ListFilter) ([]*keysystem.KeySystem, int64, error) {
	return nil, 0, nil
}
func (r *fakeKeySystemRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*keysystem.KeySystem, error) {
	return nil, nil
}
func (r *fakeKeySystemRepo) UpdateSequenceNumber(ctx context.Context, id uint, sequenceEnd int) error {
	if ks, ok := r.systems[id]; ok {
		ks.AdvanceSequence(sequenceEnd)
	}
	return nil
}

type fakeLogRepo struct {
	entries []*userlog.UserLog
}

func (r *fakeLogRepo) Create(ctx context.Context, entry *userlog.UserLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeLogRepo) List(ctx context.Context, filter userlog.ListFilter) ([]*userlog.UserLog, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func newTestService(t *testing.T, lastSequence int) (*Service, *fakeOrderRepo, *fakeKeySystemRepo, *fakeLogRepo) {
	t.Helper()

	ks, err := keysystem.ReconstructKeySystem(2, 1, "ABC123",
		keysystem.Attributes{KeyProfile: "P5"},
		keysystem.State{LastSequenceNumber: lastSequence},
		timeNowMinusDay(), timeNowMinusDay())
	if err != nil {
		t.Fatalf("ReconstructKeySystem() error = %v", err)
	}

	orderRepo := newFakeOrderRepo()
	ksRepo := &fakeKeySystemRepo{systems: map[uint]*keysystem.KeySystem{2: ks}}
	logRepo := &fakeLogRepo{}
	svc := NewService(orderRepo, ksRepo, logRepo, testLogger())
	return svc, orderRepo, ksRepo, logRepo
}

func TestService_Create_ContinuesSequence(t *testing.T) {
	svc, _, ksRepo, _ := newTestService(t, 9)

	resp, err := svc.Create(context.Background(), OrderRequest{
		CustomerID:  1,
		KeySystemID: 2,
		KeyCode:     "ABC123",
		KeyProfile:  "P5",
		Quantity:    5,
	}, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if resp.SequenceStart != 10 {
		t.Errorf("SequenceStart = %d, want 10", resp.SequenceStart)
	}
	if resp.SequenceEnd != 14 {
		t.Errorf("SequenceEnd = %d, want 14", resp.SequenceEnd)
	}
	if got := ksRepo.systems[2].LastSequenceNumber(); got != 14 {
		t.Errorf("key system sequence = %d, want 14", got)
	}
}

func TestService_Create_ExplicitStart(t *testing.T) {
	svc, _, ksRepo, _ := newTestService(t, 9)

	resp, err := svc.Create(context.Background(), OrderRequest{
		CustomerID:    1,
		KeySystemID:   2,
		KeyCode:       "ABC123",
		Quantity:      3,
		SequenceStart: 100,
	}, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if resp.SequenceStart != 100 || resp.SequenceEnd != 102 {
		t.Errorf("sequence = %d..%d, want 100..102", resp.SequenceStart, resp.SequenceEnd)
	}
	if got := ksRepo.systems[2].LastSequenceNumber(); got != 102 {
		t.Errorf("key system sequence = %d, want 102", got)
	}
}

func TestService_Create_WrongCustomer(t *testing.T) {
	svc, _, _, _ := newTestService(t, 0)

	_, err := svc.Create(context.Background(), OrderRequest{
		CustomerID:  42,
		KeySystemID: 2,
		KeyCode:     "ABC123",
		Quantity:    1,
	}, 7)
	if err == nil {
		t.Error("Create() should reject a key system owned by another customer")
	}
}

func TestService_Create_UnknownKeySystem(t *testing.T) {
	svc, _, _, _ := newTestService(t, 0)

	_, err := svc.Create(context.Background(), OrderRequest{
		CustomerID:  1,
		KeySystemID: 99,
		KeyCode:     "ABC123",
		Quantity:    1,
	}, 7)
	if err == nil {
		t.Error("Create() for a missing key system should fail")
	}
}

func TestService_Create_RecordsActivity(t *testing.T) {
	svc, _, _, logRepo := newTestService(t, 0)

	_, err := svc.Create(context.Background(), OrderRequest{
		CustomerID:  1,
		KeySystemID: 2,
		KeyCode:     "ABC123",
		Quantity:    1,
		IPAddress:   "192.168.1.10",
	}, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(logRepo.entries) != 1 {
		t.Fatalf("activity log entries = %d, want 1", len(logRepo.entries))
	}
	if logRepo.entries[0].ActivityType() != constants.ActivityOrderCreated {
		t.Errorf("activity type = %q", logRepo.entries[0].ActivityType())
	}
}

func TestService_Delete_BurnsSequenceRange(t *testing.T) {
	svc, orderRepo, ksRepo, logRepo := newTestService(t, 0)

	resp, err := svc.Create(context.Background(), OrderRequest{
		CustomerID:  1,
		KeySystemID: 2,
		KeyCode:     "ABC123",
		Quantity:    5,
	}, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), resp.ID, 7, "192.168.1.10"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, ok := orderRepo.orders[resp.ID]; ok {
		t.Error("order should be deleted")
	}
	if got := ksRepo.systems[2].LastSequenceNumber(); got != 5 {
		t.Errorf("sequence = %d after delete, want 5 (never rolled back)", got)
	}

	var deleted bool
	for _, e := range logRepo.entries {
		if e.ActivityType() == constants.ActivityOrderDeleted {
			deleted = true
		}
	}
	if !deleted {
		t.Error("deletion should be recorded in the activity log")
	}
}

func TestService_MarkExported(t *testing.T) {
	svc, orderRepo, _, _ := newTestService(t, 0)

	resp, err := svc.Create(context.Background(), OrderRequest{
		CustomerID:  1,
		KeySystemID: 2,
		KeyCode:     "ABC123",
		Quantity:    1,
	}, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.MarkExported(context.Background(), resp.ID); err != nil {
		t.Fatalf("MarkExported() error = %v", err)
	}
	if !orderRepo.orders[resp.ID].ExportedPDF() {
		t.Error("order should be marked exported")
	}
}
