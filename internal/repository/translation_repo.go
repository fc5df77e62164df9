package repository

import (
	"Parchment/internal/model"
	"context"

	"gorm.io/gorm"
)

type TranslationRepo interface {
	GetTranslationById(ctx context.Context, id uint64) (*model.ContentTranslation, error)
	GetTranslationsByContentId(ctx context.Context, contentID uint64) ([]*model.ContentTranslation, error)
	CreateTranslation(ctx context.Context, translation *model.ContentTranslation) error
	UpdateTranslation(ctx context.Context, id uint64, fields map[string]any) error
	DeleteTranslation(ctx context.Context, id uint64) error
}

type TranslationRepoImpl struct {
	db *gorm.DB
}

func NewTranslationRepo(db *gorm.DB) TranslationRepo {
	return &TranslationRepoImpl{db: db}
}

func (s *TranslationRepoImpl) GetTranslationById(ctx context.Context, id uint64) (*model.ContentTranslation, error) {
	return getByID[model.ContentTranslation](ctx, s.db, id, "Content")
}

func (s *TranslationRepoImpl) GetTranslationsByContentId(ctx context.Context, contentID uint64) ([]*model.ContentTranslation, error) {
	translations := make([]*model.ContentTranslation, 0)
	result := s.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("language ASC, id ASC").
		Find(&translations)
	if result.Error != nil {
		return nil, result.Error
	}
	return translations, nil
}

func (s *TranslationRepoImpl) CreateTranslation(ctx context.Context, translation *model.ContentTranslation) error {
	return s.db.WithContext(ctx).Omit("Content").Create(translation).Error
}

func (s *TranslationRepoImpl) UpdateTranslation(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.ContentTranslation](ctx, s.db, id, fields)
}

func (s *TranslationRepoImpl) DeleteTranslation(ctx context.Context, id uint64) error {
	return deleteByID[model.ContentTranslation](ctx, s.db, id)
}
