package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		delta                  float64
	}{
		{"same point", 40.7128, -74.0060, 40.7128, -74.0060, 0, 1e-9},
		{"NYC to LA", 40.7128, -74.0060, 34.0522, -118.2437, 3936, 10},
		{"one degree of latitude", 0, 0, 1, 0, 111.19, 0.1},
		{"small hop", 40.7128, -74.0060, 40.7218, -74.0060, 1.0, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.lat1, tt.lng1, tt.lat2, tt.lng2), tt.delta)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Distance(51.5, -0.12, 48.85, 2.35)
	b := Distance(48.85, 2.35, 51.5, -0.12)
	assert.InDelta(t, a, b, 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
	assert.False(t, ValidCoordinates(0, math.Inf(1)))
}
