package repository

import (
	"context"

	"ehr-vaccine-service/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error)
}
