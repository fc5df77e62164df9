package repository

import (
	"Parchment/internal/model"
	"context"

	"gorm.io/gorm"
)

type IntegrationRepo interface {
	GetIntegrationById(ctx context.Context, id uint64) (*model.Integration, error)
	CreateIntegration(ctx context.Context, integration *model.Integration) error
	UpdateIntegration(ctx context.Context, id uint64, fields map[string]any) error
	DeleteIntegration(ctx context.Context, id uint64) error
}

type IntegrationRepoImpl struct {
	db *gorm.DB
}

func NewIntegrationRepo(db *gorm.DB) IntegrationRepo {
	return &IntegrationRepoImpl{db: db}
}

func (s *IntegrationRepoImpl) GetIntegrationById(ctx context.Context, id uint64) (*model.Integration, error) {
	return getByID[model.Integration](ctx, s.db, id)
}

func (s *IntegrationRepoImpl) CreateIntegration(ctx context.Context, integration *model.Integration) error {
	return s.db.WithContext(ctx).Create(integration).Error
}

func (s *IntegrationRepoImpl) UpdateIntegration(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.Integration](ctx, s.db, id, fields)
}

func (s *IntegrationRepoImpl) DeleteIntegration(ctx context.Context, id uint64) error {
	return deleteByID[model.Integration](ctx, s.db, id)
}
