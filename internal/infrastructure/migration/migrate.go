package migration

import (
	"fmt"

	"gorm.io/gorm"

	"servicedesk/internal/shared/logger"
)

// Run applies the schema via gorm automigrate and seeds the canonical
// reference rows. It is idempotent.
func Run(db *gorm.DB) error {
	models := AutoMigrateModels()

	logger.Info("starting database migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	if err := Seed(db); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
