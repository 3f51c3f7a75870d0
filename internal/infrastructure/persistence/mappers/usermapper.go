package mappers

import (
	"fmt"

	"keybuddy/internal/domain/user"
	vo "keybuddy/internal/domain/user/value_objects"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) (*models.UserModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create username value object: %w", err)
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	role := authorization.ParseUserRole(model.Role)

	authData := &user.AuthData{
		PasswordHash:               model.PasswordHash,
		EmailVerified:              model.EmailVerified,
		EmailVerificationToken:     model.EmailVerificationToken,
		EmailVerificationExpiresAt: model.EmailVerificationExpiresAt,
		PasswordResetToken:         model.PasswordResetToken,
		PasswordResetExpiresAt:     model.PasswordResetExpiresAt,
		LastPasswordChangeAt:       model.LastPasswordChangeAt,
		LastLoginAt:                model.LastLoginAt,
		TOTPSecret:                 model.TOTPSecret,
		TOTPEnabled:                model.TOTPEnabled,
	}

	return user.ReconstructUser(
		model.ID,
		username,
		email,
		model.FullName,
		model.OrgNumber,
		role,
		*status,
		model.CreatedAt,
		model.UpdatedAt,
		authData,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:                         entity.ID(),
		Username:                   entity.Username().String(),
		Email:                      entity.Email().String(),
		FullName:                   entity.FullName(),
		OrgNumber:                  entity.OrganizationNumber(),
		Role:                       entity.Role().String(),
		Status:                     entity.Status().String(),
		PasswordHash:               entity.PasswordHash(),
		EmailVerified:              entity.EmailVerified(),
		EmailVerificationToken:     entity.EmailVerificationToken(),
		EmailVerificationExpiresAt: entity.EmailVerificationExpiresAt(),
		PasswordResetToken:         entity.PasswordResetToken(),
		PasswordResetExpiresAt:     entity.PasswordResetExpiresAt(),
		LastPasswordChangeAt:       entity.LastPasswordChangeAt(),
		LastLoginAt:                entity.LastLoginAt(),
		TOTPSecret:                 entity.TOTPSecret(),
		TOTPEnabled:                entity.TOTPEnabled(),
		CreatedAt:                  entity.CreatedAt(),
		UpdatedAt:                  entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
