package migration

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"servicedesk/internal/domain/request"
	"servicedesk/internal/infrastructure/persistence/models"
	"servicedesk/internal/shared/authorization"
)

var statusDescriptions = map[request.Status]string{
	request.StatusPending:    "Awaiting assignment",
	request.StatusInProgress: "Assigned to a technician",
	request.StatusResolved:   "Work completed, awaiting closure",
	request.StatusRejected:   "Rejected by department head",
	request.StatusClosed:     "Closed by department head",
}

// Seed inserts the canonical status and role rows when missing. Existing
// rows are left untouched so admin edits survive re-runs.
func Seed(db *gorm.DB) error {
	now := time.Now()

	for _, status := range request.AllStatuses() {
		row := models.StatusModel{
			Name:        status.String(),
			Description: statusDescriptions[status],
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := db.Where("name = ?", row.Name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed status %s: %w", row.Name, err)
		}
	}

	for _, role := range authorization.AllRoles() {
		row := models.RoleModel{
			Name:      string(role),
			CreatedAt: now,
		}
		if err := db.Where("name = ?", row.Name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", row.Name, err)
		}
	}

	return nil
}
