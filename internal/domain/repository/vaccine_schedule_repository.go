package repository

import (
	"context"

	"ehr-vaccine-service/internal/domain/entity"

	"gorm.io/gorm"
)

type VaccineScheduleRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, schedules []entity.VaccineSchedule) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.VaccineSchedule, error)
	FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.ScheduleFilter) ([]entity.VaccineSchedule, error)
}
