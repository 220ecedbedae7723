package migration

import (
	"servicedesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RoleModel{},
		&models.UserRoleModel{},
		&models.UserStaffModel{},
		&models.StaffModel{},
		&models.DepartmentModel{},
		&models.ServiceTypeModel{},
		&models.RequestTypeModel{},
		&models.StatusModel{},
		&models.AssignmentModel{},
		&models.ServiceRequestModel{},
		&models.RequestReplyModel{},
		&models.AttachmentModel{},
	}
}
