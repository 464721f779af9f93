package database

import (
	"fmt"

	"ehr-vaccine-service/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists the tables this service owns, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entity.Role{},
		&entity.User{},
		&entity.Patient{},
		&entity.VaccineSchedule{},
		&entity.CVXCode{},
		&entity.AuditLog{},
	}
}

// AutoMigrate creates or extends the service's tables. It never drops columns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
