package repository

import (
	"context"
	"errors"

	"ehr-vaccine-service/internal/domain/entity"
	domainRepo "ehr-vaccine-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cvxCodeRepository struct{}

func NewCVXCodeRepository() domainRepo.CVXCodeRepository {
	return &cvxCodeRepository{}
}

func (r *cvxCodeRepository) Upsert(ctx context.Context, db *gorm.DB, codes []entity.CVXCode) error {
	if len(codes) == 0 {
		return nil
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cvx_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"vaccine_name", "short_description", "full_name", "notes", "vaccine_status"}),
	}).Create(&codes).Error
}

func (r *cvxCodeRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.CVXCode, error) {
	var cvx entity.CVXCode
	err := db.WithContext(ctx).Where("cvx_code = ?", code).First(&cvx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cvx, nil
}

// FindByVaccineName tries a case-insensitive exact match first and falls
// back to a containment match in either direction.
func (r *cvxCodeRepository) FindByVaccineName(ctx context.Context, db *gorm.DB, vaccineName string) (*entity.CVXCode, error) {
	var cvx entity.CVXCode
	err := db.WithContext(ctx).
		Where("LOWER(vaccine_name) = LOWER(?)", vaccineName).
		Order("cvx_code ASC").
		First(&cvx).Error
	if err == nil {
		return &cvx, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.WithContext(ctx).
		Where("LOWER(?) LIKE '%' || LOWER(vaccine_name) || '%' OR LOWER(vaccine_name) LIKE '%' || LOWER(?) || '%'", vaccineName, vaccineName).
		Order("cvx_code ASC").
		First(&cvx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cvx, nil
}
