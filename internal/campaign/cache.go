package campaign

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProvider wraps another Provider with a Redis read-through cache.
// Campaign records change rarely, so a short TTL keeps the hot intake
// path off DynamoDB without a separate invalidation channel.
//
// Redis is never a hard dependency: any cache error falls through to the
// inner provider. Not-found results are not cached, so a newly created
// campaign becomes resolvable immediately.
type CachedProvider struct {
	inner Provider
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedProvider wraps inner with a Redis cache. A non-positive ttl
// defaults to 5 minutes.
func NewCachedProvider(inner Provider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProvider{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(token string) string {
	return fmt.Sprintf("campaign:token:%s", token)
}

// Resolve returns the cached campaign when present, otherwise resolves
// through the inner provider and populates the cache.
func (p *CachedProvider) Resolve(ctx context.Context, token string) (Campaign, error) {
	key := cacheKey(token)

	cached, err := p.rdb.Get(ctx, key).Result()
	if err == nil {
		var c Campaign
		if jsonErr := json.Unmarshal([]byte(cached), &c); jsonErr == nil {
			return c, nil
		}
		// Unreadable cache entry: drop it and fall through.
		p.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[campaign] cache read for token failed, falling back: %v", err)
	}

	c, err := p.inner.Resolve(ctx, token)
	if err != nil {
		return Campaign{}, err
	}

	if data, jsonErr := json.Marshal(c); jsonErr == nil {
		if setErr := p.rdb.Set(ctx, key, data, p.ttl).Err(); setErr != nil {
			log.Printf("[campaign] cache write failed: %v", setErr)
		}
	}
	return c, nil
}
