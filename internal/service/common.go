package service

import (
	"Parchment/internal/repository"
	"context"
	log "log/slog"
)

// setField 指针非空时写入更新列
func setField[T any](fields map[string]any, column string, v *T) {
	if v != nil {
		fields[column] = *v
	}
}

// cleanupRemoved 级联删除提交后失效 slug 缓存并登记待删除的媒体对象，失败只记录日志
func cleanupRemoved(ctx context.Context, removed *repository.Removed, cache ContentCache, queue MediaQueue) {
	if removed == nil {
		return
	}
	if len(removed.Slugs) > 0 {
		if err := cache.Invalidate(ctx, removed.Slugs...); err != nil {
			log.WarnContext(ctx, "invalidate content cache failed", "slugs", removed.Slugs, "err", err)
		}
	}
	if len(removed.MediaKeys) > 0 {
		if err := queue.Push(ctx, removed.MediaKeys...); err != nil {
			log.ErrorContext(ctx, "enqueue media cleanup failed", "keys", removed.MediaKeys, "err", err)
		}
	}
}

// requireContent 校验内容存在
func requireContent(ctx context.Context, repo repository.ContentRepo, id uint64) error {
	content, err := repo.GetContentById(ctx, id)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrContentNotFound
	}
	return nil
}

// requireUser 校验用户存在
func requireUser(ctx context.Context, repo repository.UserRepo, id uint64, notFound error) error {
	user, err := repo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return notFound
	}
	return nil
}
