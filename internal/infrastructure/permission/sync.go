package permission

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/logger"
)

// Sync rebuilds the casbin policy from the users and permissions
// tables. Run at startup so the policy matches the database even when
// policy rows were lost, and after a backup restore.
type Sync struct {
	users    user.Repository
	grants   permission.Repository
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewSync(users user.Repository, grants permission.Repository, enforcer permission.Enforcer, logger logger.Interface) *Sync {
	return &Sync{
		users:    users,
		grants:   grants,
		enforcer: enforcer,
		logger:   logger,
	}
}

func (s *Sync) Run(ctx context.Context) error {
	s.logger.Info("syncing permission policy...")

	page := 1
	const pageSize = 200
	synced := 0

	for {
		users, total, err := s.users.List(ctx, user.ListFilter{Page: page, PageSize: pageSize})
		if err != nil {
			return fmt.Errorf("failed to list users for policy sync: %w", err)
		}
		if len(users) == 0 {
			break
		}

		for _, u := range users {
			grants, err := s.grants.ListByUser(ctx, u.ID())
			if err != nil {
				return fmt.Errorf("failed to list grants for user %d: %w", u.ID(), err)
			}

			role := u.Role()
			if !role.IsValid() {
				role = authorization.RoleUser
			}

			if err := s.enforcer.SyncUser(ctx, u.ID(), role, grants); err != nil {
				return fmt.Errorf("failed to sync policy for user %d: %w", u.ID(), err)
			}
			synced++
		}

		if int64(page*pageSize) >= total {
			break
		}
		page++
	}

	s.logger.Infow("permission policy synced", "users", synced)
	return nil
}
