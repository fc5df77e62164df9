package repository

import (
	"Parchment/internal/model"
	"context"

	"gorm.io/gorm"
)

type SecurityLogRepo interface {
	GetSecurityLogById(ctx context.Context, id uint64) (*model.SecurityLog, error)
	CreateSecurityLog(ctx context.Context, log *model.SecurityLog) error
	UpdateSecurityLog(ctx context.Context, id uint64, fields map[string]any) error
	DeleteSecurityLog(ctx context.Context, id uint64) error
}

type SecurityLogRepoImpl struct {
	db *gorm.DB
}

func NewSecurityLogRepo(db *gorm.DB) SecurityLogRepo {
	return &SecurityLogRepoImpl{db: db}
}

func (s *SecurityLogRepoImpl) GetSecurityLogById(ctx context.Context, id uint64) (*model.SecurityLog, error) {
	return getByID[model.SecurityLog](ctx, s.db, id, "User")
}

func (s *SecurityLogRepoImpl) CreateSecurityLog(ctx context.Context, log *model.SecurityLog) error {
	return s.db.WithContext(ctx).Omit("User").Create(log).Error
}

func (s *SecurityLogRepoImpl) UpdateSecurityLog(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.SecurityLog](ctx, s.db, id, fields)
}

func (s *SecurityLogRepoImpl) DeleteSecurityLog(ctx context.Context, id uint64) error {
	return deleteByID[model.SecurityLog](ctx, s.db, id)
}
