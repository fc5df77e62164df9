package consts

const (
	ContentSlugCacheKey      = "content:slug:"
	ContentSlugVersionKey    = "content:slug:ver:"
	ContentHitsKey           = "content:hits:"
	ContentHitsDirtyKey      = "content:hits:dirty"
	ContentHitsProcessingKey = "content:hits:dirty:processing"
	MediaDeleteQueueKey      = "media:delete:queue"
)

const (
	AnalyticsFlushLock = "lock:analytics:flush"
	MediaCleanupLock   = "lock:media:cleanup"
)
