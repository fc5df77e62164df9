package job

import (
	"Parchment/internal/pkg/consts"
	"Parchment/internal/service"
	"context"
	log "log/slog"
)

// MediaCleanupJob 删除已无记录引用的媒体对象
type MediaCleanupJob struct {
	mediaSvc service.MediaService
	batch    int
}

func NewMediaCleanupJob(mediaSvc service.MediaService) *MediaCleanupJob {
	return &MediaCleanupJob{
		mediaSvc: mediaSvc,
		batch:    consts.MediaCleanupBatch,
	}
}

func (s *MediaCleanupJob) Run() {
	runLocked(jobContext("media"), consts.MediaCleanupLock, func(ctx context.Context) {
		total := 0
		for {
			count, err := s.mediaSvc.CleanupMedia(ctx, s.batch)
			total += count
			if err != nil {
				log.ErrorContext(ctx, "media cleanup error", "err", err)
				break
			}
			// 本轮有失败或队列已空时结束，失败的 key 留待下次
			if count < s.batch {
				break
			}
		}
		if total > 0 {
			log.InfoContext(ctx, "media cleanup job finished", "cleaned_count", total)
		}
	})
}
