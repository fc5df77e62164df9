package repository

import (
	"Parchment/internal/model"
	"context"

	"gorm.io/gorm"
)

type MediaFileRepo interface {
	GetMediaFileById(ctx context.Context, id uint64) (*model.MediaFile, error)
	CreateMediaFile(ctx context.Context, media *model.MediaFile) error
	UpdateMediaFile(ctx context.Context, id uint64, fields map[string]any) error
	DeleteMediaFile(ctx context.Context, id uint64) error
	CountMediaFilesByFile(ctx context.Context, file string) (int64, error)
}

type MediaFileRepoImpl struct {
	db *gorm.DB
}

func NewMediaFileRepo(db *gorm.DB) MediaFileRepo {
	return &MediaFileRepoImpl{db: db}
}

func (s *MediaFileRepoImpl) GetMediaFileById(ctx context.Context, id uint64) (*model.MediaFile, error) {
	return getByID[model.MediaFile](ctx, s.db, id, "Content")
}

func (s *MediaFileRepoImpl) CreateMediaFile(ctx context.Context, media *model.MediaFile) error {
	return s.db.WithContext(ctx).Omit("Content").Create(media).Error
}

func (s *MediaFileRepoImpl) UpdateMediaFile(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.MediaFile](ctx, s.db, id, fields)
}

func (s *MediaFileRepoImpl) DeleteMediaFile(ctx context.Context, id uint64) error {
	return deleteByID[model.MediaFile](ctx, s.db, id)
}

// CountMediaFilesByFile 统计仍引用该对象 key 的记录数
func (s *MediaFileRepoImpl) CountMediaFilesByFile(ctx context.Context, file string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.MediaFile{}).Where("file = ?", file).Count(&count).Error
	return count, err
}
