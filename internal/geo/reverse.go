package geo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sams96/rgeo"
	"github.com/twpayne/go-geom"

	"github.com/dashmachine/dashmachine-api/internal/models"
)

// Resolver reverse geocodes coordinates against the bundled Natural Earth
// province and urban-area polygons.
type Resolver struct {
	r *rgeo.Rgeo
}

// NewResolver loads the province and city datasets and builds the spatial
// index.
func NewResolver() (*Resolver, error) {
	r, err := rgeo.New(rgeo.Provinces10, rgeo.Cities10)
	if err != nil {
		return nil, fmt.Errorf("load geo datasets: %w", err)
	}
	r.Build()
	return &Resolver{r: r}, nil
}

// Resolve returns the city and state containing (lat, lng). City is empty
// outside urban areas and the whole place is empty over open water.
func (r *Resolver) Resolve(ctx context.Context, lat, lng float64) (models.Place, error) {
	if err := ctx.Err(); err != nil {
		return models.Place{}, err
	}

	loc, err := r.r.ReverseGeocode(geom.Coord{lng, lat})
	if errors.Is(err, rgeo.ErrLocationNotFound) {
		return models.Place{}, nil
	}
	if err != nil {
		return models.Place{}, fmt.Errorf("reverse geocode: %w", err)
	}

	state := loc.Province
	if state == "" {
		state = loc.Country
	}
	return models.Place{City: loc.City, State: state}, nil
}
