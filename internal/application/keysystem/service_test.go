package keysystem

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"keybuddy/internal/domain/customer"
	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeKeySystemRepo struct {
	systems map[uint]*keysystem.KeySystem
	nextID  uint
	updates int
}

func newFakeKeySystemRepo() *fakeKeySystemRepo {
	return &fakeKeySystemRepo{systems: map[uint]*keysystem.KeySystem{}, nextID: 1}
}

func (r *fakeKeySystemRepo) Create(ctx context.Context, ks *keysystem.KeySystem) error {
	ks.SetID(r.nextID)
	r.systems[r.nextID] = ks
	r.nextID++
	return nil
}

func (r *fakeKeySystemRepo) GetByID(ctx context.Context, id uint) (*keysystem.KeySystem, error) {
	return r.systems[id], nil
}

func (r *fakeKeySystemRepo) Update(ctx context.Context, ks *keysystem.KeySystem) error {
	r.updates++
	r.systems[ks.ID()] = ks
	return nil
}

func (r *fakeKeySystemRepo) Delete(ctx context.Context, id uint) error {
	delete(r.systems, id)
	return nil
}

func (r *fakeKeySystemRepo) List(ctx context.Context, filter keysystem.ListFilter) ([]*keysystem.KeySystem, int64, error) {
	if filter.Page > 1 {
		return nil, int64(len(r.systems)), nil
	}
	var out []*keysystem.KeySystem
	for _, ks := range r.systems {
		out = append(out, ks)
	}
	return out, int64(len(out)), nil
}

func (r *fakeKeySystemRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*keysystem.KeySystem, error) {
	var out []*keysystem.KeySystem
	for _, ks := range r.systems {
		if ks.CustomerID() == customerID {
			out = append(out, ks)
		}
	}
	return out, nil
}

func (r *fakeKeySystemRepo) UpdateSequenceNumber(ctx context.Context, id uint, sequenceEnd int) error {
	if ks, ok := r.systems[id]; ok {
		ks.AdvanceSequence(sequenceEnd)
	}
	return nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) List(ctx context.Context) ([]keysystem.CatalogEntry, error) {
	return []keysystem.CatalogEntry{{Fabrikat: "ASSA", Koncept: "Twin"}}, nil
}

func (fakeCatalogRepo) ListSecondary(ctx context.Context) ([]keysystem.CatalogEntry, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customers map[uint]*customer.Customer
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(ctx context.Context, id uint) error              { return nil }
func (r *fakeCustomerRepo) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}
func (r *fakeCustomerRepo) ExistsByCustomerNumber(ctx context.Context, customerNumber string) (bool, error) {
	return false, nil
}

func newTestService(t *testing.T) (*Service, *fakeKeySystemRepo) {
	t.Helper()

	owner, err := customer.NewCustomer("Låsservice AB", customer.Attributes{}, 1)
	if err != nil {
		t.Fatalf("NewCustomer() error = %v", err)
	}
	owner.SetID(1)

	repo := newFakeKeySystemRepo()
	svc := NewService(repo, fakeCatalogRepo{}, &fakeCustomerRepo{customers: map[uint]*customer.Customer{1: owner}}, testLogger())
	return svc, repo
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), KeySystemRequest{
		CustomerID:  1,
		KeyCode:     "ABC123",
		BillingPlan: "Månadskostnad",
		Price:       500,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.ID == 0 {
		t.Error("response should carry the assigned ID")
	}
	if resp.BillingPlan != keysystem.PlanMonthly.String() {
		t.Errorf("BillingPlan = %q", resp.BillingPlan)
	}
}

func TestService_Create_UnknownCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(context.Background(), KeySystemRequest{CustomerID: 99, KeyCode: "ABC"}); err == nil {
		t.Error("Create() for a missing customer should fail")
	}
}

func TestService_Get_RevertsExpiredPayment(t *testing.T) {
	svc, repo := newTestService(t)

	resp, err := svc.Create(context.Background(), KeySystemRequest{
		CustomerID:  1,
		KeyCode:     "ABC123",
		BillingPlan: "Månadskostnad",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Paid 31 days ago, one day past the monthly period.
	repo.systems[resp.ID].MarkPaid(time.Now().Add(-31 * 24 * time.Hour))

	got, err := svc.Get(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.IsPaid {
		t.Error("Get() should revert a lapsed recurring payment")
	}
	if repo.updates == 0 {
		t.Error("the reverted state should be persisted")
	}
}

func TestService_Get_KeepsCurrentPayment(t *testing.T) {
	svc, repo := newTestService(t)

	resp, err := svc.Create(context.Background(), KeySystemRequest{
		CustomerID:  1,
		KeyCode:     "ABC123",
		BillingPlan: "Månadskostnad",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	repo.systems[resp.ID].MarkPaid(time.Now().Add(-10 * 24 * time.Hour))

	got, err := svc.Get(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.IsPaid {
		t.Error("a payment inside its period should stay paid")
	}
}

func TestService_SetPaid(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Create(context.Background(), KeySystemRequest{
		CustomerID:  1,
		KeyCode:     "ABC123",
		BillingPlan: "Helårskostnad",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	paid, err := svc.SetPaid(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("SetPaid() error = %v", err)
	}
	if !paid.IsPaid || paid.PaidAt == nil {
		t.Errorf("SetPaid() response = %+v", paid)
	}
	if paid.NextDueDate == nil {
		t.Error("a paid recurring system should report its next due date")
	}
}

func TestRevertExpiredJob_Execute(t *testing.T) {
	svc, repo := newTestService(t)

	expired, err := svc.Create(context.Background(), KeySystemRequest{
		CustomerID: 1, KeyCode: "EXP1", BillingPlan: "Månadskostnad",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	current, err := svc.Create(context.Background(), KeySystemRequest{
		CustomerID: 1, KeyCode: "CUR1", BillingPlan: "Månadskostnad",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	oneTime, err := svc.Create(context.Background(), KeySystemRequest{
		CustomerID: 1, KeyCode: "ONE1", BillingPlan: "Engångskostnad",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	repo.systems[expired.ID].MarkPaid(time.Now().Add(-40 * 24 * time.Hour))
	repo.systems[current.ID].MarkPaid(time.Now().Add(-5 * 24 * time.Hour))
	repo.systems[oneTime.ID].MarkPaid(time.Now().Add(-400 * 24 * time.Hour))

	job := NewRevertExpiredJob(repo, testLogger())
	reverted, err := job.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if reverted != 1 {
		t.Errorf("Execute() reverted %d systems, want 1", reverted)
	}

	if repo.systems[expired.ID].IsPaid() {
		t.Error("expired system should be unpaid")
	}
	if !repo.systems[current.ID].IsPaid() {
		t.Error("current system should stay paid")
	}
	if !repo.systems[oneTime.ID].IsPaid() {
		t.Error("one-time system should stay paid")
	}
}
