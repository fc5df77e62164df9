package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// 计数类型，对应 /hits/:kind
const (
	HitView  = "view"
	HitLike  = "like"
	HitShare = "share"
)

var hitFields = map[string]string{
	HitView:  "views",
	HitLike:  "likes",
	HitShare: "shares",
}

var ErrHitKindInvalid = newKindError(ErrValidation, "计数类型仅支持 view、like、share")

type AnalyticsService interface {
	CreateAnalytics(ctx context.Context, dto *dto.CreateAnalyticsDTO) (*model.ContentAnalytics, error)
	GetAnalytics(ctx context.Context, id uint64) (*model.ContentAnalytics, error)
	UpdateAnalytics(ctx context.Context, id uint64, dto *dto.UpdateAnalyticsDTO) (*model.ContentAnalytics, error)
	DeleteAnalytics(ctx context.Context, id uint64) (*model.ContentAnalytics, error)
	RecordHit(ctx context.Context, contentID uint64, kind string) error
	FlushHits(ctx context.Context) (int, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepo
	contentRepo   repository.ContentRepo
	buffer        HitBuffer
	metrics       MetricsRecorder
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepo, contentRepo repository.ContentRepo, buffer HitBuffer, metrics MetricsRecorder) AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		contentRepo:   contentRepo,
		buffer:        buffer,
		metrics:       metrics,
	}
}

func (s *AnalyticsServiceImpl) CreateAnalytics(ctx context.Context, createDTO *dto.CreateAnalyticsDTO) (*model.ContentAnalytics, error) {
	if err := requireContent(ctx, s.contentRepo, createDTO.ContentID); err != nil {
		return nil, err
	}

	analytics := &model.ContentAnalytics{}
	if err := copier.Copy(analytics, createDTO); err != nil {
		return nil, err
	}
	if err := s.analyticsRepo.CreateAnalytics(ctx, analytics); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetAnalytics(ctx, analytics.ID)
}

func (s *AnalyticsServiceImpl) GetAnalytics(ctx context.Context, id uint64) (*model.ContentAnalytics, error) {
	analytics, err := s.analyticsRepo.GetAnalyticsById(ctx, id)
	if err != nil {
		return nil, err
	}
	if analytics == nil {
		return nil, ErrAnalyticsNotFound
	}
	return analytics, nil
}

func (s *AnalyticsServiceImpl) UpdateAnalytics(ctx context.Context, id uint64, updateDTO *dto.UpdateAnalyticsDTO) (*model.ContentAnalytics, error) {
	if _, err := s.GetAnalytics(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	setField(fields, "views", updateDTO.Views)
	setField(fields, "likes", updateDTO.Likes)
	setField(fields, "shares", updateDTO.Shares)

	if err := s.analyticsRepo.UpdateAnalytics(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetAnalytics(ctx, id)
}

func (s *AnalyticsServiceImpl) DeleteAnalytics(ctx context.Context, id uint64) (*model.ContentAnalytics, error) {
	analytics, err := s.GetAnalytics(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.analyticsRepo.DeleteAnalytics(ctx, id); err != nil {
		return nil, err
	}
	return analytics, nil
}

// RecordHit 计数先写入缓冲，由 FlushHits 定期落库
func (s *AnalyticsServiceImpl) RecordHit(ctx context.Context, contentID uint64, kind string) error {
	field, ok := hitFields[kind]
	if !ok {
		return ErrHitKindInvalid
	}
	if err := requireContent(ctx, s.contentRepo, contentID); err != nil {
		return err
	}
	return s.buffer.Incr(ctx, contentID, field, 1)
}

// FlushHits 将缓冲计数累加到各内容最新的统计记录，返回成功落库的内容数。
// 落库失败的计数加回缓冲，已删除内容的计数直接丢弃
func (s *AnalyticsServiceImpl) FlushHits(ctx context.Context) (int, error) {
	counts, drainErr := s.buffer.Drain(ctx)
	if drainErr != nil && len(counts) == 0 {
		return 0, drainErr
	}

	errs := []error{drainErr}
	flushed := 0
	for contentID, c := range counts {
		if c.Views == 0 && c.Likes == 0 && c.Shares == 0 {
			continue
		}
		err := s.analyticsRepo.IncrementCounters(ctx, contentID, c.Views, c.Likes, c.Shares)
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			log.WarnContext(ctx, "drop hits of deleted content", "content_id", contentID)
			continue
		}
		if err != nil {
			errs = append(errs, err)
			if restoreErr := s.buffer.Restore(ctx, contentID, c); restoreErr != nil {
				log.ErrorContext(ctx, "restore hits failed", "content_id", contentID, "counts", c, "err", restoreErr)
				errs = append(errs, restoreErr)
			}
			continue
		}
		s.metrics.AddFlushedHits(c.Views, c.Likes, c.Shares)
		flushed++
	}
	return flushed, errors.Join(errs...)
}
