package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
)

var ErrCacheMiss = errors.New("cache miss")

// PlaceCacheRepository caches reverse-geocoding results in Redis
type PlaceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached places
}

func NewPlaceCacheRepository(client *redis.Client, expiration time.Duration) *PlaceCacheRepository {
	return &PlaceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// placeKey rounds coordinates to 4 decimals (about 11 m).
func placeKey(lat, lng float64) string {
	return fmt.Sprintf("place:%.4f:%.4f", lat, lng)
}

// GetPlace returns the cached place for the coordinates, or ErrCacheMiss.
func (r *PlaceCacheRepository) GetPlace(ctx context.Context, lat, lng float64) (models.Place, error) {
	key := placeKey(lat, lng)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow(
		"redis place cache",
		"key", key,
		"found", err == nil,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return models.Place{}, ErrCacheMiss
	}
	if err != nil {
		return models.Place{}, err
	}

	var place models.Place
	if err := json.Unmarshal(val, &place); err != nil {
		return models.Place{}, fmt.Errorf("decode cached place: %w", err)
	}
	return place, nil
}

// SetPlace caches place for the coordinates with expiration
func (r *PlaceCacheRepository) SetPlace(ctx context.Context, lat, lng float64, place models.Place) error {
	key := placeKey(lat, lng)

	data, err := json.Marshal(place)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"redis place cache",
		"key", key,
		"place", place,
		"error", err,
	)

	return err
}
