package repository

import (
	"context"
	"errors"

	"ehr-vaccine-service/internal/domain/entity"
	domainRepo "ehr-vaccine-service/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.Patient, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []entity.Patient
	err := db.WithContext(ctx).Order("last_name ASC, first_name ASC, patient_id ASC").Limit(limit).Offset(offset).Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}
