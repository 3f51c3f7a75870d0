package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/domain/user"
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

type ChangeRoleCommand struct {
	UserID    uint
	Role      string
	ChangedBy uint
	IPAddress string
}

// ChangeRoleUseCase changes a user's role, keeps the permission policy
// in sync and refuses to demote the last remaining admin.
type ChangeRoleUseCase struct {
	userRepo  user.Repository
	grantRepo permission.Repository
	logRepo   userlog.Repository
	enforcer  permission.Enforcer
	logger    logger.Interface
}

func NewChangeRoleUseCase(
	userRepo user.Repository,
	grantRepo permission.Repository,
	logRepo userlog.Repository,
	enforcer permission.Enforcer,
	logger logger.Interface,
) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo:  userRepo,
		grantRepo: grantRepo,
		logRepo:   logRepo,
		enforcer:  enforcer,
		logger:    logger,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*user.User, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	newRole := authorization.ParseUserRole(cmd.Role)

	if existingUser.IsAdmin() && newRole != authorization.RoleAdmin {
		admins, err := uc.userRepo.CountAdmins(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return nil, errors.NewConflictError("at least one administrator must remain")
		}
	}

	if err := existingUser.ChangeRole(newRole); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	grants, err := uc.grantRepo.ListByUser(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Warnw("failed to list grants for policy sync", "user_id", cmd.UserID, "error", err)
	}
	if err := uc.enforcer.SyncUser(ctx, cmd.UserID, newRole, grants); err != nil {
		uc.logger.Errorw("failed to sync policy after role change", "user_id", cmd.UserID, "error", err)
	}

	details := "role_change_" + newRole.String()
	if entry, err := userlog.NewUserLog(cmd.ChangedBy, constants.ActivityRoleChanged, details, cmd.IPAddress); err == nil {
		if err := uc.logRepo.Create(ctx, entry); err != nil {
			uc.logger.Warnw("failed to write role change activity", "error", err)
		}
	}

	uc.logger.Infow("user role changed",
		"user_id", cmd.UserID, "role", newRole.String(), "changed_by", cmd.ChangedBy)
	return existingUser, nil
}
