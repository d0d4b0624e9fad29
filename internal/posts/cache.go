package posts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListCache is a best-effort cache for the public post listing.
// Misses and backend failures fall through to storage.
type ListCache interface {
	GetList(ctx context.Context) ([]Post, bool)
	SetList(ctx context.Context, posts []Post)
	Invalidate(ctx context.Context)
}

const listCacheKey = "posts:list"

// RedisListCache stores the serialized post listing under a short TTL.
// Writers invalidate the key, so the TTL only bounds staleness across
// processes that miss an invalidation.
type RedisListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisListCache(rdb *redis.Client, ttl time.Duration) *RedisListCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisListCache{rdb: rdb, ttl: ttl}
}

func (c *RedisListCache) GetList(ctx context.Context) ([]Post, bool) {
	raw, err := c.rdb.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var out []Post
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *RedisListCache) SetList(ctx context.Context, posts []Post) {
	raw, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, listCacheKey, raw, c.ttl).Err()
}

func (c *RedisListCache) Invalidate(ctx context.Context) {
	_ = c.rdb.Del(ctx, listCacheKey).Err()
}
