package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketAllow(t *testing.T) {
	bucket := newTokenBucket(3, 1.0)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow(), "bucket should be empty after burst")
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := newTokenBucket(1, 100.0)

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.allow(), "bucket should refill over time")
}

func TestLimiterPerClientIsolation(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  120,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/jobs", Method: "POST", Limit: 1, Window: time.Minute, Burst: 1},
		},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a", "/jobs", "POST")
	assert.True(t, allowed)

	allowed, info := limiter.Allow("client-a", "/jobs", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 1, info.Limit)
	assert.Positive(t, info.RetryAfter)

	allowed, _ = limiter.Allow("client-b", "/jobs", "POST")
	assert.True(t, allowed, "other clients should not be affected")
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", "/jobs", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiterUnlimitedEndpoint(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("client", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/jobs", Method: "POST", Limit: 10},
		{Path: "/jobs/refine", Method: "POST", Limit: 20},
		{Path: "/jobs/", Method: "GET", Limit: 240},
		{Path: "/health", Limit: 0},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{name: "exact match", path: "/jobs", method: "POST", wantLimit: 10},
		{name: "exact beats prefix", path: "/jobs/refine", method: "POST", wantLimit: 20},
		{name: "prefix match", path: "/jobs/current", method: "GET", wantLimit: 240},
		{name: "any method", path: "/health", method: "GET", wantLimit: 0},
		{name: "method mismatch", path: "/jobs", method: "DELETE", wantNil: true},
		{name: "no match", path: "/unknown", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantLimit, cfg.Limit)
		})
	}
}
