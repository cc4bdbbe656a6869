package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend    BackendConfig
	Storefront StorefrontConfig

	Mongo MongoConfig
	Redis RedisConfig
}

// BackendConfig locates the catalog and authentication API.
type BackendConfig struct {
	URL string `env:"BACKEND_URL, default=http://localhost:8082"`
	// Timeout bounds each backend request; zero leaves hung requests loading.
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=0s"`
}

type StorefrontConfig struct {
	SessionBackend string        `env:"SESSION_BACKEND, default=memory"`
	QueryStore     string        `env:"QUERY_STORE,     default=memory"`
	QueryWorkers   int           `env:"QUERY_WORKERS,   default=8"`
	DisplayWindow  int           `env:"DISPLAY_WINDOW,  default=12"`
	TabIdleTTL     time.Duration `env:"TAB_IDLE_TTL,    default=30m"`
	// SessionTTL is an absolute session lifetime counted from login, applied
	// in redis and mongo; zero keeps sessions until sign-out.
	SessionTTL time.Duration `env:"SESSION_TTL, default=0s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Storefront.SessionBackend) {
	case BackendMemory, BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("SESSION_BACKEND must be memory, redis or mongo, got %q", c.Storefront.SessionBackend)
	}
	switch strings.ToLower(c.Storefront.QueryStore) {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("QUERY_STORE must be memory or redis, got %q", c.Storefront.QueryStore)
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.Storefront.DisplayWindow < 0 {
		return fmt.Errorf("DISPLAY_WINDOW must not be negative")
	}
	return nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
