package mappers

import (
	"keybuddy/internal/domain/permission"
	"keybuddy/internal/infrastructure/persistence/models"
)

// PermissionMapper handles the conversion between grant entities and models
type PermissionMapper struct{}

func NewPermissionMapper() *PermissionMapper {
	return &PermissionMapper{}
}

func (m *PermissionMapper) ToEntity(model *models.PermissionModel) *permission.Grant {
	if model == nil {
		return nil
	}
	return permission.ReconstructGrant(
		model.ID,
		model.UserID,
		permission.Permission(model.PermissionType),
		model.GrantedBy,
		model.GrantedAt,
	)
}

func (m *PermissionMapper) ToModel(entity *permission.Grant) *models.PermissionModel {
	if entity == nil {
		return nil
	}
	return &models.PermissionModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		PermissionType: entity.Permission().String(),
		GrantedBy:      entity.GrantedBy(),
		GrantedAt:      entity.GrantedAt(),
	}
}

func (m *PermissionMapper) ToEntities(grantModels []*models.PermissionModel) []*permission.Grant {
	entities := make([]*permission.Grant, 0, len(grantModels))
	for _, model := range grantModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
