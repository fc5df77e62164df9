package redis

import (
	"Parchment/internal/model"
	"Parchment/internal/pkg/consts"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// setIfVersionScript 版本号未变时才写入缓存
var setIfVersionScript = redis.NewScript(`
if (redis.call('get', KEYS[2]) or '0') ~= ARGV[2] then
	return 0
end
redis.call('set', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// ContentCache 按 slug 缓存内容详情，不含作者。
// 每个 slug 带一个失效版本号，回源期间发生失效时放弃回填
type ContentCache struct {
	ttl time.Duration
}

func NewContentCache(ttl time.Duration) *ContentCache {
	return &ContentCache{ttl: ttl}
}

// Get 未命中时返回 (nil, nil)
func (s *ContentCache) Get(ctx context.Context, slug string) (*model.Content, error) {
	raw, err := GetValue(ctx, consts.ContentSlugCacheKey+slug)
	if err != nil || raw == "" {
		return nil, err
	}
	content := &model.Content{}
	if err = json.Unmarshal([]byte(raw), content); err != nil {
		return nil, err
	}
	return content, nil
}

// Version 回源前读取，键不存在时为 0
func (s *ContentCache) Version(ctx context.Context, slug string) (int64, error) {
	raw, err := GetValue(ctx, consts.ContentSlugVersionKey+slug)
	if err != nil || raw == "" {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Set 仅当版本号仍为 version 时写入
func (s *ContentCache) Set(ctx context.Context, content *model.Content, version int64) error {
	cached := *content
	cached.Author = nil
	raw, err := json.Marshal(&cached)
	if err != nil {
		return err
	}
	keys := []string{consts.ContentSlugCacheKey + content.Slug, consts.ContentSlugVersionKey + content.Slug}
	return setIfVersionScript.Run(ctx, Rdb, keys, raw, version, s.ttl.Milliseconds()).Err()
}

// Invalidate 删除缓存并递增版本号
func (s *ContentCache) Invalidate(ctx context.Context, slugs ...string) error {
	if len(slugs) == 0 {
		return nil
	}
	pipe := Rdb.TxPipeline()
	for _, slug := range slugs {
		verKey := consts.ContentSlugVersionKey + slug
		pipe.Incr(ctx, verKey)
		pipe.Expire(ctx, verKey, s.ttl)
		pipe.Del(ctx, consts.ContentSlugCacheKey+slug)
	}
	_, err := pipe.Exec(ctx)
	return err
}
