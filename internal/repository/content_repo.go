package repository

import (
	"Parchment/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ContentRepo interface {
	GetContentById(ctx context.Context, id uint64) (*model.Content, error)
	GetContentBySlug(ctx context.Context, slug string) (*model.Content, error)
	CreateContent(ctx context.Context, content *model.Content) error
	UpdateContent(ctx context.Context, id uint64, fields map[string]any) error
	DeleteContent(ctx context.Context, id uint64) (*Removed, error)
}

type ContentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepo {
	return &ContentRepoImpl{db: db}
}

func (s *ContentRepoImpl) GetContentById(ctx context.Context, id uint64) (*model.Content, error) {
	return getByID[model.Content](ctx, s.db, id, "Author")
}

func (s *ContentRepoImpl) GetContentBySlug(ctx context.Context, slug string) (*model.Content, error) {
	content := &model.Content{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ?", slug).
		First(content)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return content, nil
}

func (s *ContentRepoImpl) CreateContent(ctx context.Context, content *model.Content) error {
	return s.db.WithContext(ctx).Omit("Author").Create(content).Error
}

func (s *ContentRepoImpl) UpdateContent(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.Content](ctx, s.db, id, fields)
}

// DeleteContent 删除内容及其审核、SEO、媒体、翻译、统计与性能记录
func (s *ContentRepoImpl) DeleteContent(ctx context.Context, id uint64) (*Removed, error) {
	var removed *Removed
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = deleteContents(tx, []uint64{id})
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
