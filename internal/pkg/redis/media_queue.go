package redis

import (
	"Parchment/internal/pkg/consts"
	"context"
)

// MediaQueue 待从对象存储中删除的媒体 key
type MediaQueue struct{}

func NewMediaQueue() *MediaQueue {
	return &MediaQueue{}
}

func (s *MediaQueue) Push(ctx context.Context, keys ...string) error {
	return PushList(ctx, consts.MediaDeleteQueueKey, keys...)
}

func (s *MediaQueue) Pop(ctx context.Context, count int) ([]string, error) {
	return PopList(ctx, consts.MediaDeleteQueueKey, count)
}
