package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck reports whether the idempotency and rate-limit store answers.
// Transfers still work without it, falling back to in-memory deduplication.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

// Name is the key this check reports under in /health.
func (h *HealthCheck) Name() string {
	return "cache"
}
