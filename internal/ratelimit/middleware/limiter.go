package middleware

import (
	"context"
	"time"

	"personnummer/internal/ratelimit/models"
)

// BucketStore counts requests per key in a sliding window.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

// Limiter implements RateLimiter by applying one policy to per-IP buckets.
type Limiter struct {
	store  BucketStore
	policy models.Policy
}

// NewLimiter creates a Limiter backed by store.
func NewLimiter(store BucketStore, policy models.Policy) *Limiter {
	return &Limiter{store: store, policy: policy}
}

func (l *Limiter) CheckIPRateLimit(ctx context.Context, ip string) (*models.RateLimitResult, error) {
	return l.store.Allow(ctx, models.IPKey(ip), l.policy.Limit, l.policy.Window)
}
