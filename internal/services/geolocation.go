package services

//go:generate mockgen -source=geolocation.go -destination=geolocation_mock.go -package=services

import (
	"context"

	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/models"
)

// PlaceResolver finds the place nearest to a coordinate.
type PlaceResolver interface {
	Resolve(ctx context.Context, lat, lng float64) (models.Place, error)
}

// PlaceCache caches resolved places.
type PlaceCache interface {
	GetPlace(ctx context.Context, lat, lng float64) (models.Place, error)
	SetPlace(ctx context.Context, lat, lng float64, place models.Place) error
}

// GeolocationService resolves coordinates to a city and state, consulting
// the cache first.
type GeolocationService struct {
	resolver PlaceResolver
	cache    PlaceCache
}

func NewGeolocationService(resolver PlaceResolver, cache PlaceCache) *GeolocationService {
	return &GeolocationService{
		resolver: resolver,
		cache:    cache,
	}
}

// Resolve returns the place for (lat, lng). Cache failures are logged and
// never fail the lookup.
func (s *GeolocationService) Resolve(ctx context.Context, lat, lng float64) (models.Place, error) {
	place, err := s.cache.GetPlace(ctx, lat, lng)
	if err == nil {
		return place, nil
	}

	place, err = s.resolver.Resolve(ctx, lat, lng)
	if err != nil {
		logger.Log.Errorw("failed to resolve location", "lat", lat, "lng", lng, "error", err)
		return models.Place{}, err
	}

	if err := s.cache.SetPlace(ctx, lat, lng, place); err != nil {
		logger.Log.Error(err)
	}

	return place, nil
}
