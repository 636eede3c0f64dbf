package campaign

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider wraps MemoryProvider and counts Resolve calls.
type countingProvider struct {
	*MemoryProvider
	mu    sync.Mutex
	calls int
}

func (p *countingProvider) Resolve(ctx context.Context, token string) (Campaign, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.MemoryProvider.Resolve(ctx, token)
}

func (p *countingProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func testCampaign() Campaign {
	return Campaign{
		Token:          "tok-summer",
		ShortName:      "summer2017",
		DecimalCode:    42,
		RequiredFields: []string{"email", "firstname"},
	}
}

func TestCachedProvider_ReadThrough(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	inner := &countingProvider{MemoryProvider: NewMemoryProvider()}
	inner.Put(testCampaign())

	cached := NewCachedProvider(inner, rdb, time.Minute)
	ctx := context.Background()

	// First resolve goes to the inner provider and fills the cache.
	c, err := cached.Resolve(ctx, "tok-summer")
	require.NoError(t, err)
	assert.Equal(t, "summer2017", c.ShortName)
	assert.Equal(t, 1, inner.callCount())

	// Second resolve is served from Redis.
	c, err = cached.Resolve(ctx, "tok-summer")
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.DecimalCode)
	assert.Equal(t, []string{"email", "firstname"}, c.RequiredFields)
	assert.Equal(t, 1, inner.callCount())
}

func TestCachedProvider_NotFoundNotCached(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	inner := &countingProvider{MemoryProvider: NewMemoryProvider()}
	cached := NewCachedProvider(inner, rdb, time.Minute)
	ctx := context.Background()

	_, err = cached.Resolve(ctx, "tok-unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	// The campaign shows up; the miss must not have been cached.
	inner.Put(Campaign{Token: "tok-unknown", ShortName: "late", RequiredFields: []string{"email"}})
	c, err := cached.Resolve(ctx, "tok-unknown")
	require.NoError(t, err)
	assert.Equal(t, "late", c.ShortName)
}

func TestCachedProvider_RedisDownFallsBack(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	inner := &countingProvider{MemoryProvider: NewMemoryProvider()}
	inner.Put(testCampaign())
	cached := NewCachedProvider(inner, rdb, time.Minute)

	mr.Close() // Redis goes away

	c, err := cached.Resolve(context.Background(), "tok-summer")
	require.NoError(t, err, "resolution must survive a dead cache")
	assert.Equal(t, "summer2017", c.ShortName)
}
