package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process-wide configuration. It is loaded once at startup and
// passed by value into constructors; nothing reads the environment afterwards.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Auth         AuthConfig
	Verification VerificationConfig
	Geo          GeoConfig
}

// AppConfig holds HTTP/gRPC listener and logging settings.
type AppConfig struct {
	Env            string
	Host           string
	Port           string
	GRPCPort       string
	LogLevel       string
	RequestTimeout time.Duration
	APIPrefix      string
}

// PostgresConfig holds the account store connection settings.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// RedisConfig holds the Redis client settings.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds the SMS dispatch topic settings. An empty Brokers list
// disables publishing.
type KafkaConfig struct {
	Brokers  []string
	SMSTopic string
}

// AuthConfig holds token and hashing settings.
type AuthConfig struct {
	JWTSecret     string
	JWTExpiration time.Duration
	BcryptCost    int
}

// VerificationConfig holds SMS verification code settings.
type VerificationConfig struct {
	CodeTTL   time.Duration
	Cooldown  time.Duration
	SingleUse bool
}

// GeoConfig holds reverse-geocoding settings.
type GeoConfig struct {
	CacheTTL time.Duration
}

// Load reads the optional env file at path, then the process environment,
// and returns a fully parsed Config.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8123")
	cfg.App.GRPCPort = getEnv("GRPC_PORT", "50051")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.APIPrefix = getEnv("API_V1_STR", "/api/v1")
	if cfg.App.RequestTimeout, err = parseDuration("HTTP_REQUEST_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "dashmachine")
	if cfg.Postgres.Port, err = parseInt("POSTGRES_PORT", "5432"); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxOpenConns, err = parseInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxIdleConns, err = parseInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return Config{}, err
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = parseInt("REDIS_PORT", "6379"); err != nil {
		return Config{}, err
	}
	if cfg.Redis.DB, err = parseInt("REDIS_DB", "0"); err != nil {
		return Config{}, err
	}
	if cfg.Redis.PoolSize, err = parseInt("REDIS_POOL_SIZE", "10"); err != nil {
		return Config{}, err
	}
	if cfg.Redis.MinIdleConns, err = parseInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return Config{}, err
	}

	// Kafka config
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.SMSTopic = getEnv("KAFKA_SMS_TOPIC", "sms-verification")

	// Auth config
	cfg.Auth.JWTSecret = getEnv("SECRET_KEY", "")
	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("SECRET_KEY must be set")
	}
	if alg := getEnv("HASH_ALGORITHM", "HS256"); alg != "HS256" {
		return Config{}, fmt.Errorf("unsupported HASH_ALGORITHM %q: only HS256 is supported", alg)
	}
	if cfg.Auth.JWTExpiration, err = parseDuration("JWT_EXPIRATION", "720h"); err != nil {
		return Config{}, err
	}
	if cfg.Auth.BcryptCost, err = parseInt("BCRYPT_COST", "10"); err != nil {
		return Config{}, err
	}

	// Verification config
	if cfg.Verification.CodeTTL, err = parseDuration("VERIFICATION_CODE_TTL", "10m"); err != nil {
		return Config{}, err
	}
	if cfg.Verification.Cooldown, err = parseDuration("VERIFICATION_COOLDOWN", "30s"); err != nil {
		return Config{}, err
	}
	if cfg.Verification.SingleUse, err = strconv.ParseBool(getEnv("VERIFICATION_SINGLE_USE", "true")); err != nil {
		return Config{}, fmt.Errorf("VERIFICATION_SINGLE_USE: %w", err)
	}

	// Geolocation config
	if cfg.Geo.CacheTTL, err = parseDuration("GEO_CACHE_TTL", "24h"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func parseInt(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
