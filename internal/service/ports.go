package service

import (
	"Parchment/internal/model"
	"Parchment/internal/pkg/redis"
	"context"
	"io"
)

// ContentCache 按 slug 缓存内容详情
type ContentCache interface {
	Get(ctx context.Context, slug string) (*model.Content, error)
	Version(ctx context.Context, slug string) (int64, error)
	Set(ctx context.Context, content *model.Content, version int64) error
	Invalidate(ctx context.Context, slugs ...string) error
}

// MediaQueue 待删除的媒体对象 key
type MediaQueue interface {
	Push(ctx context.Context, keys ...string) error
	Pop(ctx context.Context, count int) ([]string, error)
}

// BlobStorage 媒体对象存储
type BlobStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

// HitBuffer 浏览、点赞、分享计数缓冲
type HitBuffer interface {
	Incr(ctx context.Context, contentID uint64, field string, n int64) error
	Drain(ctx context.Context) (map[uint64]redis.HitCounts, error)
	Restore(ctx context.Context, contentID uint64, c redis.HitCounts) error
}

// PasswordHasher 用户口令摘要
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// MetricsRecorder 指标导出
type MetricsRecorder interface {
	ObservePerformance(loadTime float64, cacheStatus model.CacheStatus)
	AddFlushedHits(views, likes, shares uint64)
}
