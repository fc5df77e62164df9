package job

import (
	"Parchment/internal/pkg/consts"
	"Parchment/internal/pkg/logger"
	"Parchment/internal/pkg/redis"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// 测试中替换
var (
	tryLock = redis.TryLock
	unLock  = redis.UnLock
)

// jobContext 为一次任务执行生成带 trace_id 的 ctx
func jobContext(name string) context.Context {
	return logger.WithTraceID(context.Background(), "job-"+name+"-"+uuid.NewString())
}

// runLocked 多实例部署时同一时刻只有一个实例执行 fn
func runLocked(ctx context.Context, lockKey string, fn func(ctx context.Context)) {
	owner := logger.TraceID(ctx)
	ok, err := tryLock(ctx, lockKey, owner, consts.JobLockTTL, 0)
	if err != nil {
		log.ErrorContext(ctx, "acquire job lock failed", "lock", lockKey, "err", err)
		return
	}
	if !ok {
		log.DebugContext(ctx, "job lock held by another instance", "lock", lockKey)
		return
	}
	defer unLock(ctx, lockKey, owner)
	fn(ctx)
}
