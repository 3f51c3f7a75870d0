package mappers

import (
	"keybuddy/internal/domain/customer"
	"keybuddy/internal/infrastructure/persistence/models"
)

// CustomerMapper handles the conversion between customer entities and models
type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(model *models.CustomerModel) (*customer.Customer, error) {
	if model == nil {
		return nil, nil
	}

	attrs := customer.Attributes{
		Project:         model.Project,
		CustomerNumber:  model.CustomerNumber,
		OrgNumber:       model.OrgNumber,
		Address:         model.Address,
		PostalCode:      model.PostalCode,
		PostalAddress:   model.PostalAddress,
		Phone:           model.Phone,
		MobilePhone:     model.MobilePhone,
		Email:           model.Email,
		Website:         model.Website,
		KeyResponsible1: model.KeyResponsible1,
		KeyResponsible2: model.KeyResponsible2,
		KeyResponsible3: model.KeyResponsible3,
		KeyLocation:     model.KeyLocation,
	}

	return customer.ReconstructCustomer(model.ID, model.Company, attrs, model.CreatedBy, model.CreatedAt, model.UpdatedAt)
}

func (m *CustomerMapper) ToModel(entity *customer.Customer) *models.CustomerModel {
	if entity == nil {
		return nil
	}

	return &models.CustomerModel{
		ID:              entity.ID(),
		Company:         entity.Company(),
		Project:         entity.Project(),
		CustomerNumber:  entity.CustomerNumber(),
		OrgNumber:       entity.OrgNumber(),
		Address:         entity.Address(),
		PostalCode:      entity.PostalCode(),
		PostalAddress:   entity.PostalAddress(),
		Phone:           entity.Phone(),
		MobilePhone:     entity.MobilePhone(),
		Email:           entity.Email(),
		Website:         entity.Website(),
		KeyResponsible1: entity.KeyResponsible1(),
		KeyResponsible2: entity.KeyResponsible2(),
		KeyResponsible3: entity.KeyResponsible3(),
		KeyLocation:     entity.KeyLocation(),
		CreatedBy:       entity.CreatedBy(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *CustomerMapper) ToEntities(customerModels []*models.CustomerModel) ([]*customer.Customer, error) {
	entities := make([]*customer.Customer, 0, len(customerModels))
	for _, model := range customerModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
