package repository

import (
	"context"

	"ehr-vaccine-service/internal/domain/entity"
	domainRepo "ehr-vaccine-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const scheduleOrder = "vaccine_name ASC, brand_name ASC, manufacturer ASC, dose_number ASC, priority ASC, id ASC"

type vaccineScheduleRepository struct{}

func NewVaccineScheduleRepository() domainRepo.VaccineScheduleRepository {
	return &vaccineScheduleRepository{}
}

// CreateBatch inserts reference rows, skipping rows whose schedule slot
// already exists so repeated seeding is harmless.
func (r *vaccineScheduleRepository) CreateBatch(ctx context.Context, db *gorm.DB, schedules []entity.VaccineSchedule) error {
	if len(schedules) == 0 {
		return nil
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&schedules).Error
}

func (r *vaccineScheduleRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.VaccineSchedule, error) {
	var schedules []entity.VaccineSchedule
	err := db.WithContext(ctx).Order(scheduleOrder).Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindByFilter returns schedules matching every non-empty filter field.
func (r *vaccineScheduleRepository) FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.ScheduleFilter) ([]entity.VaccineSchedule, error) {
	var schedules []entity.VaccineSchedule
	query := db.WithContext(ctx).Model(&entity.VaccineSchedule{})

	if filter != nil {
		if filter.VaccineName != "" {
			query = query.Where("vaccine_name = ?", filter.VaccineName)
		}
		if filter.BrandName != "" {
			query = query.Where("brand_name = ?", filter.BrandName)
		}
		if filter.Manufacturer != "" {
			query = query.Where("manufacturer = ?", filter.Manufacturer)
		}
		if filter.DoseNumber > 0 {
			query = query.Where("dose_number = ?", filter.DoseNumber)
		}
	}

	err := query.Order(scheduleOrder).Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
