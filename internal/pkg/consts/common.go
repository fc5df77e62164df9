package consts

import "time"

const (
	ContentSlugCacheTTL = 10 * time.Minute
	JobLockTTL          = 5 * time.Minute
)

// AdminUserHeader 后台操作者标识，由上游网关写入
const AdminUserHeader = "X-Admin-User"

// MediaCleanupBatch 每轮最多清理的媒体对象数
const MediaCleanupBatch = 200
