package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test, needs a running redis. Uses DB 15 to stay clear of
// development data.
func TestRateLimiterBasic(t *testing.T) {
	opts, err := redis.ParseURL("redis://localhost:6379/15")
	require.NoError(t, err)

	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("redis not available for testing")
	}
	client.FlushDB(ctx)

	limiter := NewRateLimiter(client)

	t.Run("allows requests within limit", func(t *testing.T) {
		key := "test:ip1"
		limit := 3
		window := 10 * time.Second

		for i := 0; i < limit; i++ {
			allowed, _ := limiter.CheckLimit(ctx, key, limit, window)
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}

		allowed, resetAt := limiter.CheckLimit(ctx, key, limit, window)
		assert.False(t, allowed, "request over the limit should be denied")
		assert.True(t, resetAt.After(time.Now()))
	})

	t.Run("window slides", func(t *testing.T) {
		key := "test:ip2"
		limit := 2
		window := 2 * time.Second

		allowed, _ := limiter.CheckLimit(ctx, key, limit, window)
		assert.True(t, allowed)
		allowed, _ = limiter.CheckLimit(ctx, key, limit, window)
		assert.True(t, allowed)

		allowed, _ = limiter.CheckLimit(ctx, key, limit, window)
		assert.False(t, allowed)

		time.Sleep(window + 500*time.Millisecond)

		allowed, _ = limiter.CheckLimit(ctx, key, limit, window)
		assert.True(t, allowed, "should be allowed after the window passes")
	})

	t.Run("keys are independent", func(t *testing.T) {
		window := 10 * time.Second

		allowed, _ := limiter.CheckLimit(ctx, "test:ip3", 1, window)
		assert.True(t, allowed)
		allowed, _ = limiter.CheckLimit(ctx, "test:ip3", 1, window)
		assert.False(t, allowed)

		allowed, _ = limiter.CheckLimit(ctx, "test:ip4", 1, window)
		assert.True(t, allowed)
	})
}
