package geo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashmachine/dashmachine-api/internal/models"
)

var (
	sharedResolver    *Resolver
	sharedResolverErr error
	resolverOnce      sync.Once
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	resolverOnce.Do(func() {
		sharedResolver, sharedResolverErr = NewResolver()
	})
	require.NoError(t, sharedResolverErr)
	return sharedResolver
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		lat, lng float64
		want     models.Place
	}{
		{"London", 51.5045, 0, models.Place{City: "London", State: "Tower Hamlets"}},
		{"Anchorage", 61.199134, -149.901785, models.Place{City: "Anchorage", State: "Alaska"}},
		{"Antananarivo", -18.905691, 47.523836, models.Place{City: "Antananarivo", State: "Analamanga"}},
		{"outside urban areas", -19.948725, 29.832875, models.Place{State: "Midlands"}},
		{"open ocean", 0, 0, models.Place{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.lat, tt.lng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_CanceledContext(t *testing.T) {
	r := newTestResolver(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, 51.5045, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
