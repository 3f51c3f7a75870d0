package mappers

import (
	"keybuddy/internal/domain/order"
	"keybuddy/internal/infrastructure/persistence/models"
)

// OrderMapper handles the conversion between order entities and models
type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	return order.ReconstructOrder(
		model.ID,
		model.CustomerID,
		model.KeySystemID,
		model.KeyCode,
		model.KeyProfile,
		model.Quantity,
		model.SequenceStart,
		model.SequenceEnd,
		model.KeyResponsible,
		model.OrderDate,
		model.CreatedBy,
		model.ExportedPDF,
	)
}

func (m *OrderMapper) ToModel(entity *order.Order) *models.OrderModel {
	if entity == nil {
		return nil
	}

	return &models.OrderModel{
		ID:             entity.ID(),
		CustomerID:     entity.CustomerID(),
		KeySystemID:    entity.KeySystemID(),
		KeyCode:        entity.KeyCode(),
		KeyProfile:     entity.KeyProfile(),
		Quantity:       entity.Quantity(),
		SequenceStart:  entity.SequenceStart(),
		SequenceEnd:    entity.SequenceEnd(),
		KeyResponsible: entity.KeyResponsible(),
		OrderDate:      entity.OrderDate(),
		CreatedBy:      entity.CreatedBy(),
		ExportedPDF:    entity.ExportedPDF(),
	}
}

func (m *OrderMapper) ToEntities(orderModels []*models.OrderModel) ([]*order.Order, error) {
	entities := make([]*order.Order, 0, len(orderModels))
	for _, model := range orderModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
