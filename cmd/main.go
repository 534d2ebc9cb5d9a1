package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/dashmachine/dashmachine-api/internal/config"
	"github.com/dashmachine/dashmachine-api/internal/facades"
	"github.com/dashmachine/dashmachine-api/internal/geo"
	"github.com/dashmachine/dashmachine-api/internal/handlers"
	"github.com/dashmachine/dashmachine-api/internal/hasher"
	"github.com/dashmachine/dashmachine-api/internal/jwt"
	"github.com/dashmachine/dashmachine-api/internal/logger"
	"github.com/dashmachine/dashmachine-api/internal/middlewares"
	"github.com/dashmachine/dashmachine-api/internal/repositories"
	"github.com/dashmachine/dashmachine-api/internal/services"

	_ "github.com/dashmachine/dashmachine-api/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const healthCheckInterval = 15 * time.Second

// @title dashmachine API
// @version 1.0.0
// @description Phone authentication and profile service
// @host localhost:8123
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// routes bundles the services the HTTP API is built on.
type routes struct {
	phoneChecker        handlers.PhoneChecker
	registerer          handlers.Registerer
	loginer             handlers.Loginer
	verificationCreator handlers.VerificationCreator
	verificationChecker handlers.VerificationChecker
	profileUpdater      handlers.ProfileUpdater
	recommender         handlers.Recommender
	auth                func(http.Handler) http.Handler
}

// newRouter mounts the user API under prefix. The socket and docs routes sit
// outside the request timeout.
func newRouter(prefix string, timeout time.Duration, rt routes) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Route(prefix+"/users", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(timeout))

		// Public routes
		r.Get("/check_phone", handlers.NewCheckPhoneHandler(rt.phoneChecker))
		r.Post("/create_sms_verification", handlers.NewCreateSMSVerificationHandler(rt.verificationCreator))
		r.Post("/verify_sms_verification", handlers.NewVerifySMSVerificationHandler(rt.verificationChecker))
		r.Post("/create", handlers.NewCreateAccountHandler(rt.registerer))
		r.Post("/token", handlers.NewTokenHandler(rt.loginer))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.auth)
			r.Get("/me", handlers.NewMeHandler())
			r.Post("/update", handlers.NewUpdateHandler(rt.profileUpdater))
			r.Get("/recommended", handlers.NewRecommendedHandler(rt.recommender))
		})
	})

	r.Get("/ws", handlers.NewHeartbeatHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// run initializes the logger, database, Redis, Kafka, and the HTTP and gRPC
// servers. It blocks until a shutdown signal or a server failure.
func run(ctx context.Context, cfg config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.Env); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for SMS dispatch
	var smsWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.SMSTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		smsWriter = w
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, SMS codes will not be dispatched")
	}

	// Reverse geocoding polygons
	resolver, err := geo.NewResolver()
	if err != nil {
		return fmt.Errorf("failed to load geo dataset: %w", err)
	}

	// Initialize token and password helpers
	tokens := jwt.New(jwt.WithSecretKey(cfg.Auth.JWTSecret), jwt.WithExpiration(cfg.Auth.JWTExpiration))
	passwords := hasher.New(cfg.Auth.BcryptCost)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db)
	transactor := repositories.NewTransactor(db)
	codeRepo := repositories.NewVerificationCodeRepository(rdb, cfg.Verification.CodeTTL)
	cooldownRepo := repositories.NewCooldownRepository(rdb, "sms_cooldown", cfg.Verification.Cooldown)
	placeCacheRepo := repositories.NewPlaceCacheRepository(rdb, cfg.Geo.CacheTTL)

	// Initialize services
	authService := services.NewAuthService(accountReadRepo, accountWriteRepo, passwords, tokens)
	verificationService := services.NewVerificationService(codeRepo, cooldownRepo, smsWriter, cfg.Verification.SingleUse)
	geolocationService := services.NewGeolocationService(resolver, placeCacheRepo)
	profileService := services.NewProfileService(transactor, accountReadRepo, accountWriteRepo, passwords, geolocationService)
	recommendationService := services.NewRecommendationService(accountReadRepo)

	r := newRouter(cfg.App.APIPrefix, cfg.App.RequestTimeout, routes{
		phoneChecker:        authService,
		registerer:          authService,
		loginer:             authService,
		verificationCreator: verificationService,
		verificationChecker: verificationService,
		profileUpdater:      profileService,
		recommender:         recommendationService,
		auth:                middlewares.AuthMiddleware(tokens, authService),
	})

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler: r,
	}

	// gRPC health service
	healthServer := facades.NewHealthServer()
	healthFacade := facades.NewHealthGRPCFacade(healthServer, map[string]facades.Probe{
		"postgres": db.PingContext,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}, 3*time.Second)

	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	grpcListener, err := net.Listen("tcp", net.JoinHostPort(cfg.App.Host, cfg.App.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go healthFacade.Run(ctxShutdown, healthCheckInterval)

	return serve(ctxShutdown, srv, grpcServer, grpcListener, healthServer)
}

// serve runs both servers until ctx is done or either of them fails, then
// stops both. A server failure is returned after shutdown completes.
func serve(ctx context.Context, srv *http.Server, grpcServer *grpc.Server, grpcListener net.Listener, healthServer *health.Server) error {
	errChan := make(chan error, 2)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcListener.Addr())
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("server failed, stopping servers", "error", serveErr)
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	if serveErr != nil {
		return serveErr
	}
	logger.Log.Info("Servers stopped gracefully")
	return nil
}
