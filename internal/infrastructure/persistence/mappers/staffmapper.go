package mappers

import (
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/infrastructure/persistence/models"
)

type StaffMapper interface {
	ToModel(staff *identity.Staff) *models.StaffModel
	ToDomain(model *models.StaffModel) (*identity.Staff, error)
}

type StaffMapperImpl struct{}

func NewStaffMapper() StaffMapper {
	return &StaffMapperImpl{}
}

func (m *StaffMapperImpl) ToModel(staff *identity.Staff) *models.StaffModel {
	return &models.StaffModel{
		ID:        staff.ID(),
		Code:      staff.Code(),
		Name:      staff.Name(),
		Email:     staff.Email(),
		Mobile:    staff.Mobile(),
		IsActive:  staff.IsActive(),
		CreatedAt: staff.CreatedAt(),
		UpdatedAt: staff.UpdatedAt(),
	}
}

func (m *StaffMapperImpl) ToDomain(model *models.StaffModel) (*identity.Staff, error) {
	return identity.ReconstructStaff(
		model.ID,
		model.Code,
		model.Name,
		model.Email,
		model.Mobile,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
