package permission

import (
	"context"
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/logger"
)

var _ permission.Enforcer = (*Enforcer)(nil)

// rbacModel maps users onto role subjects. A user passes a check when
// their role carries the permission or an individual grant does.
const rbacModel = `
[request_definition]
r = sub, perm

[policy_definition]
p = sub, perm

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && r.perm == p.perm
`

// Enforcer implements permission checks on top of casbin with policy
// rows persisted through the gorm adapter.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}

	if err := e.ensureRolePolicies(); err != nil {
		return nil, err
	}

	return e, nil
}

// ensureRolePolicies installs the default permission set for each role.
// Role defaults act as a floor; grants only ever add on top of them.
func (e *Enforcer) ensureRolePolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, role := range authorization.AllRoles() {
		for _, perm := range permission.RoleDefaults(role) {
			if _, err := e.enforcer.AddPolicy(roleSubject(role), perm.String()); err != nil {
				return fmt.Errorf("failed to add role policy: %w", err)
			}
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save role policies: %w", err)
	}

	return nil
}

// Enforce reports whether the user may perform the permission
func (e *Enforcer) Enforce(ctx context.Context, userID uint, perm permission.Permission) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(userSubject(userID), perm.String())
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "user_id", userID, "permission", perm.String())
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// SyncUser rebuilds the policy rows for one user: their role link and
// every individual grant they hold.
func (e *Enforcer) SyncUser(ctx context.Context, userID uint, role authorization.UserRole, grants []*permission.Grant) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sub := userSubject(userID)

	if _, err := e.enforcer.DeleteRolesForUser(sub); err != nil {
		return fmt.Errorf("failed to clear roles for user: %w", err)
	}
	if _, err := e.enforcer.RemoveFilteredPolicy(0, sub); err != nil {
		return fmt.Errorf("failed to clear policies for user: %w", err)
	}

	if _, err := e.enforcer.AddRoleForUser(sub, roleSubject(role)); err != nil {
		return fmt.Errorf("failed to add role for user: %w", err)
	}
	for _, grant := range grants {
		if _, err := e.enforcer.AddPolicy(sub, grant.Permission().String()); err != nil {
			return fmt.Errorf("failed to add grant policy: %w", err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save user policies: %w", err)
	}

	e.logger.Infow("user policy synced", "user_id", userID, "role", role.String(), "grants", len(grants))
	return nil
}

// RemoveUser drops all policy rows for a deleted user
func (e *Enforcer) RemoveUser(ctx context.Context, userID uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sub := userSubject(userID)

	if _, err := e.enforcer.DeleteUser(sub); err != nil {
		return fmt.Errorf("failed to delete user policies: %w", err)
	}
	if _, err := e.enforcer.RemoveFilteredPolicy(0, sub); err != nil {
		return fmt.Errorf("failed to clear policies for user: %w", err)
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policy: %w", err)
	}

	return nil
}

// LoadPolicy reloads the policy from storage. Used after a database
// restore replaces the policy tables underneath a running instance.
func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

func userSubject(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func roleSubject(role authorization.UserRole) string {
	return "role:" + role.String()
}
