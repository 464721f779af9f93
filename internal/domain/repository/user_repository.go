package repository

import (
	"context"

	"ehr-vaccine-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.User, error)
}
