package permission

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/domain/user"
	vo "keybuddy/internal/domain/user/value_objects"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/logger"
)

type fakeGrantRepo struct {
	grants map[uint]map[permission.Permission]*permission.Grant
}

func newFakeGrantRepo() *fakeGrantRepo {
	return &fakeGrantRepo{grants: make(map[uint]map[permission.Permission]*permission.Grant)}
}

func (r *fakeGrantRepo) Save(ctx context.Context, grant *permission.Grant) error {
	byUser, ok := r.grants[grant.UserID()]
	if !ok {
		byUser = make(map[permission.Permission]*permission.Grant)
		r.grants[grant.UserID()] = byUser
	}
	byUser[grant.Permission()] = grant
	return nil
}

func (r *fakeGrantRepo) Delete(ctx context.Context, userID uint, perm permission.Permission) error {
	delete(r.grants[userID], perm)
	return nil
}

func (r *fakeGrantRepo) ListByUser(ctx context.Context, userID uint) ([]*permission.Grant, error) {
	var out []*permission.Grant
	for _, g := range r.grants[userID] {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGrantRepo) DeleteByUser(ctx context.Context, userID uint) error {
	delete(r.grants, userID)
	return nil
}

type fakeEnforcer struct {
	policies  map[uint]map[permission.Permission]struct{}
	syncCalls int
}

func newFakeEnforcer() *fakeEnforcer {
	return &fakeEnforcer{policies: make(map[uint]map[permission.Permission]struct{})}
}

func (e *fakeEnforcer) Enforce(ctx context.Context, userID uint, perm permission.Permission) (bool, error) {
	_, ok := e.policies[userID][perm]
	return ok, nil
}

func (e *fakeEnforcer) SyncUser(ctx context.Context, userID uint, role authorization.UserRole, grants []*permission.Grant) error {
	e.syncCalls++
	policy := make(map[permission.Permission]struct{})
	for _, p := range permission.RoleDefaults(role) {
		policy[p] = struct{}{}
	}
	for _, g := range grants {
		policy[g.Permission()] = struct{}{}
	}
	e.policies[userID] = policy
	return nil
}

func (e *fakeEnforcer) RemoveUser(ctx context.Context, userID uint) error {
	delete(e.policies, userID)
	return nil
}

type fakeUserRepo struct {
	users map[uint]*user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}
func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (r *fakeUserRepo) GetByVerificationToken(ctx context.Context, tokenHash string) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByPasswordResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) CountAdmins(ctx context.Context) (int64, error) { return 0, nil }

func newTestUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()

	username, err := vo.NewUsername("stina")
	if err != nil {
		t.Fatalf("NewUsername() error = %v", err)
	}
	email, err := vo.NewEmail("stina@example.com")
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}
	u, err := user.NewUser(username, email, "Stina Karlsson", role)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	u.SetID(id)
	return u
}

func newTestService(t *testing.T, users ...*user.User) (*Service, *fakeGrantRepo, *fakeEnforcer) {
	t.Helper()

	userRepo := &fakeUserRepo{users: make(map[uint]*user.User)}
	enforcer := newFakeEnforcer()
	grantRepo := newFakeGrantRepo()
	ctx := context.Background()
	for _, u := range users {
		userRepo.users[u.ID()] = u
		if err := enforcer.SyncUser(ctx, u.ID(), u.Role(), nil); err != nil {
			t.Fatalf("SyncUser() error = %v", err)
		}
	}
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(grantRepo, userRepo, enforcer, log), grantRepo, enforcer
}

func TestService_GrantExtendsRoleDefaults(t *testing.T) {
	u := newTestUser(t, 1, authorization.RoleViewer)
	svc, _, _ := newTestService(t, u)
	ctx := context.Background()

	allowed, err := svc.Check(ctx, 1, permission.CreateOrder.String())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if allowed {
		t.Fatal("viewer should not create orders by default")
	}

	if err := svc.Grant(ctx, 1, permission.CreateOrder.String(), 99); err != nil {
		t.Fatalf("Grant() error = %v", err)
	}

	allowed, err = svc.Check(ctx, 1, permission.CreateOrder.String())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !allowed {
		t.Error("granted permission not effective")
	}
}

func TestService_GrantValidation(t *testing.T) {
	u := newTestUser(t, 1, authorization.RoleUser)
	svc, _, _ := newTestService(t, u)
	ctx := context.Background()

	if err := svc.Grant(ctx, 1, "fly_to_the_moon", 99); err == nil {
		t.Error("expected error for unknown permission")
	}
	if err := svc.Grant(ctx, 42, permission.CreateOrder.String(), 99); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestService_RevokeLeavesRoleFloor(t *testing.T) {
	u := newTestUser(t, 1, authorization.RoleUser)
	svc, _, enforcer := newTestService(t, u)
	ctx := context.Background()

	if err := svc.Grant(ctx, 1, permission.CreateKeySystem.String(), 99); err != nil {
		t.Fatalf("Grant() error = %v", err)
	}
	if err := svc.Revoke(ctx, 1, permission.CreateKeySystem.String()); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	allowed, _ := svc.Check(ctx, 1, permission.CreateKeySystem.String())
	if allowed {
		t.Error("revoked grant still effective")
	}

	// The role default survives a revoke of the same permission.
	if err := svc.Revoke(ctx, 1, permission.CreateOrder.String()); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	allowed, _ = svc.Check(ctx, 1, permission.CreateOrder.String())
	if !allowed {
		t.Error("role default lost after revoke")
	}

	if enforcer.syncCalls == 0 {
		t.Error("expected enforcer policy rebuilds")
	}
}

func TestService_ListForUser(t *testing.T) {
	u := newTestUser(t, 1, authorization.RoleViewer)
	svc, _, _ := newTestService(t, u)
	ctx := context.Background()

	if err := svc.Grant(ctx, 1, permission.ExportOrder.String(), 99); err != nil {
		t.Fatalf("Grant() error = %v", err)
	}

	perms, err := svc.ListForUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if perms.Role != authorization.RoleViewer.String() {
		t.Errorf("Role = %s", perms.Role)
	}
	if len(perms.RoleDefaults) != len(permission.RoleDefaults(authorization.RoleViewer)) {
		t.Errorf("RoleDefaults length = %d", len(perms.RoleDefaults))
	}
	if len(perms.Grants) != 1 || perms.Grants[0] != permission.ExportOrder.String() {
		t.Errorf("Grants = %v", perms.Grants)
	}
	if len(perms.Effective) != len(perms.RoleDefaults)+1 {
		t.Errorf("Effective = %v", perms.Effective)
	}

	if _, err := svc.ListForUser(ctx, 42); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestService_ListAll(t *testing.T) {
	u := newTestUser(t, 1, authorization.RoleAdmin)
	svc, _, _ := newTestService(t, u)

	all := svc.ListAll()
	if len(all) != len(permission.All()) {
		t.Errorf("ListAll() length = %d, want %d", len(all), len(permission.All()))
	}
}
