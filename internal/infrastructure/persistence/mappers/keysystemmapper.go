package mappers

import (
	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/infrastructure/persistence/models"
)

// KeySystemMapper handles the conversion between key system entities and models
type KeySystemMapper struct{}

func NewKeySystemMapper() *KeySystemMapper {
	return &KeySystemMapper{}
}

func (m *KeySystemMapper) ToEntity(model *models.KeySystemModel) (*keysystem.KeySystem, error) {
	if model == nil {
		return nil, nil
	}

	attrs := keysystem.Attributes{
		SeriesID:     model.SeriesID,
		KeyProfile:   model.KeyProfile,
		Fabrikat:     model.Fabrikat,
		Koncept:      model.Koncept,
		KeyCode2:     model.KeyCode2,
		SystemNumber: model.SystemNumber,
		Profile2:     model.Profile2,
		Delning:      model.Delning,
		KeyLocation2: model.KeyLocation2,
		Fabrikat2:    model.Fabrikat2,
		Koncept2:     model.Koncept2,
		Flex1:        model.Flex1,
		Flex2:        model.Flex2,
		Flex3:        model.Flex3,
		Notes:        model.Notes,
		BillingPlan:  keysystem.ParseBillingPlan(model.BillingPlan),
		Price:        model.Price,
	}

	state := keysystem.State{
		IsPaid:             model.IsPaid,
		PaidAt:             model.PaidAt,
		InvoiceCount:       model.InvoiceCount,
		LastInvoiceDate:    model.LastInvoiceDate,
		LastSequenceNumber: model.LastSequenceNumber,
	}

	return keysystem.ReconstructKeySystem(model.ID, model.CustomerID, model.KeyCode, attrs, state, model.CreatedAt, model.UpdatedAt)
}

func (m *KeySystemMapper) ToModel(entity *keysystem.KeySystem) *models.KeySystemModel {
	if entity == nil {
		return nil
	}

	return &models.KeySystemModel{
		ID:                 entity.ID(),
		CustomerID:         entity.CustomerID(),
		KeyCode:            entity.KeyCode(),
		SeriesID:           entity.SeriesID(),
		KeyProfile:         entity.KeyProfile(),
		Fabrikat:           entity.Fabrikat(),
		Koncept:            entity.Koncept(),
		KeyCode2:           entity.KeyCode2(),
		SystemNumber:       entity.SystemNumber(),
		Profile2:           entity.Profile2(),
		Delning:            entity.Delning(),
		KeyLocation2:       entity.KeyLocation2(),
		Fabrikat2:          entity.Fabrikat2(),
		Koncept2:           entity.Koncept2(),
		Flex1:              entity.Flex1(),
		Flex2:              entity.Flex2(),
		Flex3:              entity.Flex3(),
		Notes:              entity.Notes(),
		BillingPlan:        entity.BillingPlan().String(),
		Price:              entity.Price(),
		IsPaid:             entity.IsPaid(),
		PaidAt:             entity.PaidAt(),
		InvoiceCount:       entity.InvoiceCount(),
		LastInvoiceDate:    entity.LastInvoiceDate(),
		LastSequenceNumber: entity.LastSequenceNumber(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *KeySystemMapper) ToEntities(ksModels []*models.KeySystemModel) ([]*keysystem.KeySystem, error) {
	entities := make([]*keysystem.KeySystem, 0, len(ksModels))
	for _, model := range ksModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
