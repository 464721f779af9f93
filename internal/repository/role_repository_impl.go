package repository

import (
	"context"
	"errors"

	"ehr-vaccine-service/internal/domain/entity"
	domainRepo "ehr-vaccine-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) Upsert(ctx context.Context, db *gorm.DB, roles []entity.Role) error {
	if len(roles) == 0 {
		return nil
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role_name", "description"}),
	}).Create(&roles).Error
}

func (r *roleRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Role, error) {
	var role entity.Role
	err := db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}
