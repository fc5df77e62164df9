package repository

import (
	"context"
	"errors"

	"Parchment/internal/model"

	"gorm.io/gorm"
)

// getByID 按主键查询，不存在时返回 (nil, nil)
func getByID[T any](ctx context.Context, db *gorm.DB, id uint64, preloads ...string) (*T, error) {
	var item T
	tx := db.WithContext(ctx)
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	result := tx.First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &item, nil
}

// updateByID 按主键更新指定列，autoUpdateTime 字段由 gorm 自动追加
func updateByID[T any](ctx context.Context, db *gorm.DB, id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	var item T
	return db.WithContext(ctx).Model(&item).Where("id = ?", id).Updates(fields).Error
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint64) error {
	var item T
	return db.WithContext(ctx).Delete(&item, id).Error
}

// Removed 级联删除后调用方需要善后的数据：失效的 slug 缓存与待清理的媒体对象
type Removed struct {
	Slugs     []string
	MediaKeys []string
}

// deleteContents 在事务内删除内容及其全部从属记录
func deleteContents(tx *gorm.DB, contentIDs []uint64) (*Removed, error) {
	removed := &Removed{}
	if len(contentIDs) == 0 {
		return removed, nil
	}

	if err := tx.Model(&model.Content{}).Where("id IN ?", contentIDs).Pluck("slug", &removed.Slugs).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&model.MediaFile{}).Where("content_id IN ?", contentIDs).Pluck("file", &removed.MediaKeys).Error; err != nil {
		return nil, err
	}

	dependents := []any{
		&model.ContentApproval{},
		&model.SEOData{},
		&model.MediaFile{},
		&model.ContentTranslation{},
		&model.ContentAnalytics{},
		&model.PerformanceMetrics{},
	}
	for _, dep := range dependents {
		if err := tx.Where("content_id IN ?", contentIDs).Delete(dep).Error; err != nil {
			return nil, err
		}
	}

	if err := tx.Where("id IN ?", contentIDs).Delete(&model.Content{}).Error; err != nil {
		return nil, err
	}
	return removed, nil
}
