package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dashmachine/dashmachine-api/internal/logger"
)

// CooldownRepository throttles repeated actions per key using Redis SET NX.
type CooldownRepository struct {
	client *redis.Client
	prefix string
	window time.Duration
}

func NewCooldownRepository(client *redis.Client, prefix string, window time.Duration) *CooldownRepository {
	return &CooldownRepository{
		client: client,
		prefix: prefix,
		window: window,
	}
}

// Acquire reports whether the action for key is allowed now. A successful
// acquire blocks further ones for the configured window.
func (r *CooldownRepository) Acquire(ctx context.Context, key string) (bool, error) {
	if r.window <= 0 {
		return true, nil
	}

	k := fmt.Sprintf("%s:%s", r.prefix, key)
	ok, err := r.client.SetNX(ctx, k, time.Now().Unix(), r.window).Result()

	logger.Log.Infow(
		"redis cooldown",
		"key", k,
		"window", r.window,
		"acquired", ok,
		"error", err,
	)

	return ok, err
}
