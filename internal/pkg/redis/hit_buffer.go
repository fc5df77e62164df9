package redis

import (
	"Parchment/internal/pkg/consts"
	"context"
	log "log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// HitCounts 单个内容在一个刷新周期内累积的计数
type HitCounts struct {
	Views  uint64
	Likes  uint64
	Shares uint64
}

// HitBuffer 在 Redis 中累积浏览、点赞、分享计数，由定时任务批量落库
type HitBuffer struct{}

func NewHitBuffer() *HitBuffer {
	return &HitBuffer{}
}

// Incr field 取值 views、likes、shares
func (s *HitBuffer) Incr(ctx context.Context, contentID uint64, field string, n int64) error {
	id := strconv.FormatUint(contentID, 10)
	pipe := Rdb.TxPipeline()
	pipe.HIncrBy(ctx, consts.ContentHitsKey+id, field, n)
	pipe.SAdd(ctx, consts.ContentHitsDirtyKey, id)
	_, err := pipe.Exec(ctx)
	return err
}

// Restore 将落库失败的计数加回缓冲，等待下一次刷新
func (s *HitBuffer) Restore(ctx context.Context, contentID uint64, c HitCounts) error {
	id := strconv.FormatUint(contentID, 10)
	key := consts.ContentHitsKey + id
	pipe := Rdb.TxPipeline()
	for field, n := range map[string]uint64{"views": c.Views, "likes": c.Likes, "shares": c.Shares} {
		if n > 0 {
			pipe.HIncrBy(ctx, key, field, int64(n))
		}
	}
	pipe.SAdd(ctx, consts.ContentHitsDirtyKey, id)
	_, err := pipe.Exec(ctx)
	return err
}

// Drain 取出自上次刷新以来的全部计数并清空缓冲。
// 每个内容的读取、删除与出队在同一事务内完成，出错时返回已取出的部分，其余留待下次
func (s *HitBuffer) Drain(ctx context.Context) (map[uint64]HitCounts, error) {
	if err := MergeSet(ctx, consts.ContentHitsProcessingKey, consts.ContentHitsDirtyKey); err != nil {
		return nil, err
	}

	ids, err := GetSet(ctx, consts.ContentHitsProcessingKey)
	if err != nil {
		return nil, err
	}

	out := make(map[uint64]HitCounts, len(ids))
	for _, raw := range ids {
		contentID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.WarnContext(ctx, "invalid content id in hit buffer", "id", raw)
			Rdb.SRem(ctx, consts.ContentHitsProcessingKey, raw)
			continue
		}

		key := consts.ContentHitsKey + raw
		pipe := Rdb.TxPipeline()
		getCmd := pipe.HGetAll(ctx, key)
		pipe.Del(ctx, key)
		pipe.SRem(ctx, consts.ContentHitsProcessingKey, raw)
		if _, err = pipe.Exec(ctx); err != nil && err != redis.Nil {
			return out, err
		}

		fields := getCmd.Val()
		out[contentID] = HitCounts{
			Views:  parseCount(fields["views"]),
			Likes:  parseCount(fields["likes"]),
			Shares: parseCount(fields["shares"]),
		}
	}
	return out, nil
}

func parseCount(raw string) uint64 {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
