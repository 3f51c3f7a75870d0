package permission

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// Service manages individual permission grants on top of role
// defaults. Every mutation rebuilds the user's enforcer policy.
type Service struct {
	grantRepo permission.Repository
	userRepo  user.Repository
	enforcer  permission.Enforcer
	logger    logger.Interface
}

// NewService creates a permission service.
func NewService(
	grantRepo permission.Repository,
	userRepo user.Repository,
	enforcer permission.Enforcer,
	logger logger.Interface,
) *Service {
	return &Service{
		grantRepo: grantRepo,
		userRepo:  userRepo,
		enforcer:  enforcer,
		logger:    logger,
	}
}

// UserPermissions describes a user's effective permission set.
type UserPermissions struct {
	UserID       uint     `json:"user_id"`
	Role         string   `json:"role"`
	RoleDefaults []string `json:"role_defaults"`
	Grants       []string `json:"grants"`
	Effective    []string `json:"effective"`
}

// Grant adds an individual permission to a user.
func (s *Service) Grant(ctx context.Context, userID uint, perm string, grantedBy uint) error {
	p, err := permission.Parse(perm)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	grant, err := permission.NewGrant(userID, p, grantedBy)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := s.grantRepo.Save(ctx, grant); err != nil {
		return err
	}

	if err := s.syncUser(ctx, u); err != nil {
		return err
	}

	s.logger.Infow("permission granted", "user_id", userID, "permission", p, "granted_by", grantedBy)
	return nil
}

// Revoke removes an individual grant. Permissions provided by the
// user's role are unaffected; the role acts as a floor.
func (s *Service) Revoke(ctx context.Context, userID uint, perm string) error {
	p, err := permission.Parse(perm)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := s.grantRepo.Delete(ctx, userID, p); err != nil {
		return err
	}

	if err := s.syncUser(ctx, u); err != nil {
		return err
	}

	s.logger.Infow("permission revoked", "user_id", userID, "permission", p)
	return nil
}

// Check reports whether the user may perform the permission.
func (s *Service) Check(ctx context.Context, userID uint, perm string) (bool, error) {
	p, err := permission.Parse(perm)
	if err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	return s.enforcer.Enforce(ctx, userID, p)
}

// ListForUser returns a user's role defaults, individual grants and
// the resulting effective set.
func (s *Service) ListForUser(ctx context.Context, userID uint) (*UserPermissions, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	role := u.Role()
	defaults := permission.RoleDefaults(role)

	grants, err := s.grantRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	effective := make(map[permission.Permission]struct{}, len(defaults)+len(grants))
	defaultStrings := make([]string, 0, len(defaults))
	for _, p := range defaults {
		effective[p] = struct{}{}
		defaultStrings = append(defaultStrings, p.String())
	}
	grantStrings := make([]string, 0, len(grants))
	for _, g := range grants {
		effective[g.Permission()] = struct{}{}
		grantStrings = append(grantStrings, g.Permission().String())
	}

	// Preserve catalog order for the effective list.
	effectiveStrings := make([]string, 0, len(effective))
	for _, p := range permission.All() {
		if _, ok := effective[p]; ok {
			effectiveStrings = append(effectiveStrings, p.String())
		}
	}

	return &UserPermissions{
		UserID:       userID,
		Role:         u.Role().String(),
		RoleDefaults: defaultStrings,
		Grants:       grantStrings,
		Effective:    effectiveStrings,
	}, nil
}

// ListAll returns the full permission catalog.
func (s *Service) ListAll() []string {
	all := permission.All()
	out := make([]string, 0, len(all))
	for _, p := range all {
		out = append(out, p.String())
	}
	return out
}

func (s *Service) syncUser(ctx context.Context, u *user.User) error {
	grants, err := s.grantRepo.ListByUser(ctx, u.ID())
	if err != nil {
		return err
	}
	role := u.Role()
	if err := s.enforcer.SyncUser(ctx, u.ID(), role, grants); err != nil {
		return fmt.Errorf("failed to sync permission policy: %w", err)
	}
	return nil
}
