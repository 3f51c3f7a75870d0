package permission

import (
	"context"

	"keybuddy/internal/shared/authorization"
)

// Enforcer answers permission checks against the combined role and
// grant policy.
type Enforcer interface {
	// Enforce reports whether the user may perform the permission.
	Enforce(ctx context.Context, userID uint, perm Permission) (bool, error)

	// SyncUser rebuilds the policy for one user after a role change or
	// grant update.
	SyncUser(ctx context.Context, userID uint, role authorization.UserRole, grants []*Grant) error

	// RemoveUser drops all policy rows for a deleted user.
	RemoveUser(ctx context.Context, userID uint) error
}
