package repository

import (
	"context"

	"ehr-vaccine-service/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Upsert(ctx context.Context, db *gorm.DB, roles []entity.Role) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Role, error)
}
