package repository

import (
	"context"

	"ehr-vaccine-service/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.Patient, int64, error)
}
