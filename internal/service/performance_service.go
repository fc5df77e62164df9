package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type PerformanceService interface {
	CreateMetrics(ctx context.Context, dto *dto.CreatePerformanceDTO) (*model.PerformanceMetrics, error)
	GetMetrics(ctx context.Context, id uint64) (*model.PerformanceMetrics, error)
	UpdateMetrics(ctx context.Context, id uint64, dto *dto.UpdatePerformanceDTO) (*model.PerformanceMetrics, error)
	DeleteMetrics(ctx context.Context, id uint64) (*model.PerformanceMetrics, error)
}

type PerformanceServiceImpl struct {
	performanceRepo repository.PerformanceRepo
	contentRepo     repository.ContentRepo
	metrics         MetricsRecorder
}

func NewPerformanceService(performanceRepo repository.PerformanceRepo, contentRepo repository.ContentRepo, metrics MetricsRecorder) PerformanceService {
	return &PerformanceServiceImpl{
		performanceRepo: performanceRepo,
		contentRepo:     contentRepo,
		metrics:         metrics,
	}
}

// CreateMetrics 记录一次加载耗时并导出到 Prometheus
func (s *PerformanceServiceImpl) CreateMetrics(ctx context.Context, createDTO *dto.CreatePerformanceDTO) (*model.PerformanceMetrics, error) {
	if err := requireContent(ctx, s.contentRepo, createDTO.ContentID); err != nil {
		return nil, err
	}

	metrics := &model.PerformanceMetrics{}
	if err := copier.Copy(metrics, createDTO); err != nil {
		return nil, err
	}
	if err := s.performanceRepo.CreateMetrics(ctx, metrics); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}

	s.metrics.ObservePerformance(metrics.LoadTime, metrics.CacheStatus)
	return s.GetMetrics(ctx, metrics.ID)
}

func (s *PerformanceServiceImpl) GetMetrics(ctx context.Context, id uint64) (*model.PerformanceMetrics, error) {
	metrics, err := s.performanceRepo.GetMetricsById(ctx, id)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		return nil, ErrMetricsNotFound
	}
	return metrics, nil
}

func (s *PerformanceServiceImpl) UpdateMetrics(ctx context.Context, id uint64, updateDTO *dto.UpdatePerformanceDTO) (*model.PerformanceMetrics, error) {
	if _, err := s.GetMetrics(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if updateDTO.ContentID != nil {
		if err := requireContent(ctx, s.contentRepo, *updateDTO.ContentID); err != nil {
			return nil, err
		}
		fields["content_id"] = *updateDTO.ContentID
	}
	setField(fields, "load_time", updateDTO.LoadTime)
	setField(fields, "cache_status", updateDTO.CacheStatus)
	setField(fields, "optimized", updateDTO.Optimized)

	if err := s.performanceRepo.UpdateMetrics(ctx, id, fields); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetMetrics(ctx, id)
}

func (s *PerformanceServiceImpl) DeleteMetrics(ctx context.Context, id uint64) (*model.PerformanceMetrics, error) {
	metrics, err := s.GetMetrics(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.performanceRepo.DeleteMetrics(ctx, id); err != nil {
		return nil, err
	}
	return metrics, nil
}
