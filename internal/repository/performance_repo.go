package repository

import (
	"Parchment/internal/model"
	"context"

	"gorm.io/gorm"
)

type PerformanceRepo interface {
	GetMetricsById(ctx context.Context, id uint64) (*model.PerformanceMetrics, error)
	CreateMetrics(ctx context.Context, metrics *model.PerformanceMetrics) error
	UpdateMetrics(ctx context.Context, id uint64, fields map[string]any) error
	DeleteMetrics(ctx context.Context, id uint64) error
}

type PerformanceRepoImpl struct {
	db *gorm.DB
}

func NewPerformanceRepo(db *gorm.DB) PerformanceRepo {
	return &PerformanceRepoImpl{db: db}
}

func (s *PerformanceRepoImpl) GetMetricsById(ctx context.Context, id uint64) (*model.PerformanceMetrics, error) {
	return getByID[model.PerformanceMetrics](ctx, s.db, id, "Content")
}

func (s *PerformanceRepoImpl) CreateMetrics(ctx context.Context, metrics *model.PerformanceMetrics) error {
	return s.db.WithContext(ctx).Omit("Content").Create(metrics).Error
}

func (s *PerformanceRepoImpl) UpdateMetrics(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.PerformanceMetrics](ctx, s.db, id, fields)
}

func (s *PerformanceRepoImpl) DeleteMetrics(ctx context.Context, id uint64) error {
	return deleteByID[model.PerformanceMetrics](ctx, s.db, id)
}
