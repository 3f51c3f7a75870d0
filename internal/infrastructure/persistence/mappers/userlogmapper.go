package mappers

import (
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/infrastructure/persistence/models"
)

// UserLogMapper handles the conversion between log entities and models
type UserLogMapper struct{}

func NewUserLogMapper() *UserLogMapper {
	return &UserLogMapper{}
}

func (m *UserLogMapper) ToEntity(model *models.UserLogModel) *userlog.UserLog {
	if model == nil {
		return nil
	}
	return userlog.ReconstructUserLog(
		model.ID,
		model.UserID,
		model.ActivityType,
		model.Details,
		model.IPAddress,
		model.Timestamp,
	)
}

func (m *UserLogMapper) ToModel(entity *userlog.UserLog) *models.UserLogModel {
	if entity == nil {
		return nil
	}
	return &models.UserLogModel{
		ID:           entity.ID(),
		UserID:       entity.UserID(),
		ActivityType: entity.ActivityType(),
		Details:      entity.Details(),
		IPAddress:    entity.IPAddress(),
		Timestamp:    entity.Timestamp(),
	}
}

func (m *UserLogMapper) ToEntities(logModels []*models.UserLogModel) []*userlog.UserLog {
	entities := make([]*userlog.UserLog, 0, len(logModels))
	for _, model := range logModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
