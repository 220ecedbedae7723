package mappers

import (
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/infrastructure/persistence/models"
)

// CatalogMapper handles the conversion between catalog reference entities
// and persistence models.
type CatalogMapper interface {
	DepartmentToModel(d *catalog.Department) *models.DepartmentModel
	DepartmentToDomain(model *models.DepartmentModel) (*catalog.Department, error)
	ServiceTypeToModel(s *catalog.ServiceType) *models.ServiceTypeModel
	ServiceTypeToDomain(model *models.ServiceTypeModel) (*catalog.ServiceType, error)
	RequestTypeToModel(r *catalog.RequestType) *models.RequestTypeModel
	RequestTypeToDomain(model *models.RequestTypeModel) (*catalog.RequestType, error)
	StatusToModel(s *catalog.StatusRef) *models.StatusModel
	StatusToDomain(model *models.StatusModel) (*catalog.StatusRef, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) DepartmentToModel(d *catalog.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func (m *CatalogMapperImpl) DepartmentToDomain(model *models.DepartmentModel) (*catalog.Department, error) {
	return catalog.ReconstructDepartment(model.ID, model.Name, model.Description, model.CreatedAt, model.UpdatedAt)
}

func (m *CatalogMapperImpl) ServiceTypeToModel(s *catalog.ServiceType) *models.ServiceTypeModel {
	return &models.ServiceTypeModel{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (m *CatalogMapperImpl) ServiceTypeToDomain(model *models.ServiceTypeModel) (*catalog.ServiceType, error) {
	return catalog.ReconstructServiceType(model.ID, model.Name, model.Description, model.CreatedAt, model.UpdatedAt)
}

func (m *CatalogMapperImpl) RequestTypeToModel(r *catalog.RequestType) *models.RequestTypeModel {
	return &models.RequestTypeModel{
		ID:              r.ID(),
		Name:            r.Name(),
		Description:     r.Description(),
		ServiceTypeID:   r.ServiceTypeID(),
		DepartmentID:    r.DepartmentID(),
		DefaultPriority: r.DefaultPriority().String(),
		ReminderDays:    r.ReminderDays(),
		IsMandatory:     r.IsMandatory(),
		IsVisible:       r.IsVisible(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func (m *CatalogMapperImpl) RequestTypeToDomain(model *models.RequestTypeModel) (*catalog.RequestType, error) {
	priority, err := request.NewPriority(model.DefaultPriority)
	if err != nil {
		return nil, err
	}

	return catalog.ReconstructRequestType(
		model.ID,
		catalog.RequestTypeAttrs{
			Name:            model.Name,
			Description:     model.Description,
			ServiceTypeID:   model.ServiceTypeID,
			DepartmentID:    model.DepartmentID,
			DefaultPriority: priority,
			ReminderDays:    model.ReminderDays,
			IsMandatory:     model.IsMandatory,
			IsVisible:       model.IsVisible,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CatalogMapperImpl) StatusToModel(s *catalog.StatusRef) *models.StatusModel {
	return &models.StatusModel{
		ID:          s.ID(),
		Name:        s.Name().String(),
		Description: s.Description(),
		IsActive:    s.IsActive(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (m *CatalogMapperImpl) StatusToDomain(model *models.StatusModel) (*catalog.StatusRef, error) {
	return catalog.ReconstructStatusRef(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
