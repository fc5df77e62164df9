package repository

import (
	"Parchment/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SEODataRepo interface {
	GetSEODataById(ctx context.Context, id uint64) (*model.SEOData, error)
	GetSEODataByContentId(ctx context.Context, contentID uint64) (*model.SEOData, error)
	CreateSEOData(ctx context.Context, seo *model.SEOData) error
	UpdateSEOData(ctx context.Context, id uint64, fields map[string]any) error
	DeleteSEOData(ctx context.Context, id uint64) error
}

type SEODataRepoImpl struct {
	db *gorm.DB
}

func NewSEODataRepo(db *gorm.DB) SEODataRepo {
	return &SEODataRepoImpl{db: db}
}

func (s *SEODataRepoImpl) GetSEODataById(ctx context.Context, id uint64) (*model.SEOData, error) {
	return getByID[model.SEOData](ctx, s.db, id, "Content")
}

func (s *SEODataRepoImpl) GetSEODataByContentId(ctx context.Context, contentID uint64) (*model.SEOData, error) {
	seo := &model.SEOData{}
	result := s.db.WithContext(ctx).Where("content_id = ?", contentID).First(seo)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return seo, nil
}

func (s *SEODataRepoImpl) CreateSEOData(ctx context.Context, seo *model.SEOData) error {
	return s.db.WithContext(ctx).Omit("Content").Create(seo).Error
}

func (s *SEODataRepoImpl) UpdateSEOData(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.SEOData](ctx, s.db, id, fields)
}

func (s *SEODataRepoImpl) DeleteSEOData(ctx context.Context, id uint64) error {
	return deleteByID[model.SEOData](ctx, s.db, id)
}
