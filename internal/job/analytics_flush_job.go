package job

import (
	"Parchment/internal/pkg/consts"
	"Parchment/internal/service"
	"context"
	log "log/slog"
)

// AnalyticsFlushJob 将 Redis 中缓冲的计数累加到统计记录
type AnalyticsFlushJob struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsFlushJob(analyticsSvc service.AnalyticsService) *AnalyticsFlushJob {
	return &AnalyticsFlushJob{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsFlushJob) Run() {
	runLocked(jobContext("analytics"), consts.AnalyticsFlushLock, func(ctx context.Context) {
		flushed, err := s.analyticsSvc.FlushHits(ctx)
		if err != nil {
			log.ErrorContext(ctx, "flush analytics hits error", "flushed", flushed, "err", err)
			return
		}
		if flushed > 0 {
			log.InfoContext(ctx, "analytics hits flushed", "content_count", flushed)
		}
	})
}
