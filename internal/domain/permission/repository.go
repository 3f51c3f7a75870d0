package permission

import "context"

// Repository persists individual permission grants.
type Repository interface {
	// Save stores a new grant. Saving an existing (user, permission)
	// pair is a no-op.
	Save(ctx context.Context, grant *Grant) error

	// Delete removes a grant by user and permission.
	Delete(ctx context.Context, userID uint, perm Permission) error

	// ListByUser returns all grants for a user.
	ListByUser(ctx context.Context, userID uint) ([]*Grant, error)

	// DeleteByUser removes all grants for a user.
	DeleteByUser(ctx context.Context, userID uint) error
}
