package repository

import (
	"Parchment/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AnalyticsRepo interface {
	GetAnalyticsById(ctx context.Context, id uint64) (*model.ContentAnalytics, error)
	CreateAnalytics(ctx context.Context, analytics *model.ContentAnalytics) error
	UpdateAnalytics(ctx context.Context, id uint64, fields map[string]any) error
	DeleteAnalytics(ctx context.Context, id uint64) error
	IncrementCounters(ctx context.Context, contentID uint64, views, likes, shares uint64) error
}

type AnalyticsRepoImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepo {
	return &AnalyticsRepoImpl{db: db}
}

func (s *AnalyticsRepoImpl) GetAnalyticsById(ctx context.Context, id uint64) (*model.ContentAnalytics, error) {
	return getByID[model.ContentAnalytics](ctx, s.db, id, "Content")
}

func (s *AnalyticsRepoImpl) CreateAnalytics(ctx context.Context, analytics *model.ContentAnalytics) error {
	return s.db.WithContext(ctx).Omit("Content").Create(analytics).Error
}

func (s *AnalyticsRepoImpl) UpdateAnalytics(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.ContentAnalytics](ctx, s.db, id, fields)
}

func (s *AnalyticsRepoImpl) DeleteAnalytics(ctx context.Context, id uint64) error {
	return deleteByID[model.ContentAnalytics](ctx, s.db, id)
}

// IncrementCounters 将增量累加到该内容最新的统计记录上，没有记录时新建一条
func (s *AnalyticsRepoImpl) IncrementCounters(ctx context.Context, contentID uint64, views, likes, shares uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		latest := &model.ContentAnalytics{}
		result := tx.Where("content_id = ?", contentID).Order("id DESC").Limit(1).Take(latest)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			return tx.Omit("Content").Create(&model.ContentAnalytics{
				ContentID: contentID,
				Views:     views,
				Likes:     likes,
				Shares:    shares,
			}).Error
		}

		return tx.Model(&model.ContentAnalytics{}).Where("id = ?", latest.ID).Updates(map[string]any{
			"views":  gorm.Expr("views + ?", views),
			"likes":  gorm.Expr("likes + ?", likes),
			"shares": gorm.Expr("shares + ?", shares),
		}).Error
	})
}
