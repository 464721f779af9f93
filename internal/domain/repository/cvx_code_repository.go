package repository

import (
	"context"

	"ehr-vaccine-service/internal/domain/entity"

	"gorm.io/gorm"
)

type CVXCodeRepository interface {
	Upsert(ctx context.Context, db *gorm.DB, codes []entity.CVXCode) error
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.CVXCode, error)
	FindByVaccineName(ctx context.Context, db *gorm.DB, vaccineName string) (*entity.CVXCode, error)
}
