package mappers

import (
	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/infrastructure/persistence/models"
)

type AssignmentMapper interface {
	ToModel(a *assignment.Assignment) *models.AssignmentModel
	ToDomain(model *models.AssignmentModel) (*assignment.Assignment, error)
}

type AssignmentMapperImpl struct{}

func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

func (m *AssignmentMapperImpl) ToModel(a *assignment.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:            a.ID(),
		StaffID:       a.StaffID(),
		DepartmentID:  a.DepartmentID(),
		RequestTypeID: a.RequestTypeID(),
		FromDate:      a.FromDate(),
		ToDate:        a.ToDate(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func (m *AssignmentMapperImpl) ToDomain(model *models.AssignmentModel) (*assignment.Assignment, error) {
	return assignment.ReconstructAssignment(
		model.ID,
		model.StaffID,
		model.DepartmentID,
		model.RequestTypeID,
		model.FromDate,
		model.ToDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
