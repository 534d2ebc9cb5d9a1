package facades

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dashmachine/dashmachine-api/internal/logger"
)

// Probe reports whether a backing dependency is reachable.
type Probe func(ctx context.Context) error

// HealthStatusSetter is the subset of the gRPC health server the facade drives.
type HealthStatusSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// HealthGRPCFacade publishes dependency readiness through the gRPC health
// service. Each probe is exposed under its own service name and the overall
// status ("") is SERVING only while every probe passes.
type HealthGRPCFacade struct {
	server  HealthStatusSetter
	probes  map[string]Probe
	timeout time.Duration
}

// NewHealthGRPCFacade creates a facade over server.
func NewHealthGRPCFacade(server HealthStatusSetter, probes map[string]Probe, timeout time.Duration) *HealthGRPCFacade {
	return &HealthGRPCFacade{server: server, probes: probes, timeout: timeout}
}

// NewHealthServer returns a gRPC health server with every service NOT_SERVING
// until the first check completes.
func NewHealthServer() *health.Server {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return srv
}

// Check runs every probe once and updates the served statuses. It returns
// true when all probes passed.
func (f *HealthGRPCFacade) Check(ctx context.Context) bool {
	healthy := true
	for name, probe := range f.probes {
		probeCtx, cancel := context.WithTimeout(ctx, f.timeout)
		err := probe(probeCtx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			healthy = false
			status = healthpb.HealthCheckResponse_NOT_SERVING
			logger.Log.Warnw("dependency health check failed", "dependency", name, "error", err)
		}
		f.server.SetServingStatus(name, status)
	}

	overall := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		overall = healthpb.HealthCheckResponse_NOT_SERVING
	}
	f.server.SetServingStatus("", overall)
	return healthy
}

// Run checks immediately and then every interval until ctx is done.
func (f *HealthGRPCFacade) Run(ctx context.Context, interval time.Duration) {
	f.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Check(ctx)
		}
	}
}
