package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	ServiceName string
	Version     string
	LogLevel    string
	LogFormat   string
	// OTLP/HTTP trace collector URL; tracing is off when empty
	OTelEndpoint string

	// HTTP
	APIKey          string
	TrustedProxies  []string
	RateLimit       int
	RateLimitWindow time.Duration

	// Storage
	Storage           string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdle     time.Duration
	DBMaxConnLife     time.Duration
	RunMigrations     bool
	SeedCatalog       bool
	CatalogPath       string
	AchievementsPath  string
	DemoUsers         []string
	DemoStartingCoins int

	// Distributed user locks; in-process locks when RedisAddr is empty
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LockTTL       time.Duration

	// Engine tuning
	DefaultBoxID       string
	MaxConflictRetries int
	CatalogCacheSize   int
	CatalogCacheTTL    time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnvAsInt("PORT", DefaultPort),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		ServiceName:  getEnv("SERVICE_NAME", "gachabox"),
		Version:      getEnv("VERSION", "dev"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "")),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "")),
		OTelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),

		APIKey:          getEnv("API_KEY", ""),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:       getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateLimitWindow: time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", DefaultRateLimitWindowSec)) * time.Second,

		Storage:           strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "gachabox"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle:     time.Duration(getEnvAsInt("DB_MAX_CONN_IDLE_MINUTES", DefaultDBMaxConnIdleMin)) * time.Minute,
		DBMaxConnLife:     time.Duration(getEnvAsInt("DB_MAX_CONN_LIFE_MINUTES", DefaultDBMaxConnLifeMin)) * time.Minute,
		RunMigrations:     getEnvAsBool("RUN_MIGRATIONS", true),
		SeedCatalog:       getEnvAsBool("SEED_CATALOG", false),
		CatalogPath:       getEnv("CATALOG_PATH", ConfigPathCatalog),
		AchievementsPath:  getEnv("ACHIEVEMENTS_PATH", ""),
		DemoUsers:         getEnvAsList("DEMO_USERS"),
		DemoStartingCoins: getEnvAsInt("DEMO_STARTING_COINS", DefaultDemoStartingCoins),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		LockTTL:       time.Duration(getEnvAsInt("LOCK_TTL_SECONDS", DefaultLockTTLSec)) * time.Second,

		DefaultBoxID:       getEnv("DEFAULT_BOX_ID", "box-starter"),
		MaxConflictRetries: getEnvAsInt("MAX_CONFLICT_RETRIES", DefaultMaxConflictRetries),
		CatalogCacheSize:   getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),
		CatalogCacheTTL:    time.Duration(getEnvAsInt("CATALOG_CACHE_TTL_SECONDS", DefaultCatalogCacheTTLSec)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT value: %d", c.Port))
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		errs = append(errs, fmt.Errorf("invalid STORAGE value %q (expected %s or %s)", c.Storage, StoragePostgres, StorageMemory))
	}
	if c.Storage == StoragePostgres && c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT and RATE_LIMIT_WINDOW_SECONDS must be positive, got %d per %s", c.RateLimit, c.RateLimitWindow))
	}
	if c.Environment == EnvironmentProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}
	if c.RedisAddr != "" && c.LockTTL <= 0 {
		errs = append(errs, fmt.Errorf("LOCK_TTL_SECONDS must be positive when REDIS_ADDR is set, got %s", c.LockTTL))
	}
	if c.MaxConflictRetries < 0 {
		errs = append(errs, fmt.Errorf("MAX_CONFLICT_RETRIES must not be negative, got %d", c.MaxConflictRetries))
	}
	if c.CatalogCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("CATALOG_CACHE_SIZE must be positive, got %d", c.CatalogCacheSize))
	}
	if c.DemoStartingCoins < 0 {
		errs = append(errs, fmt.Errorf("DEMO_STARTING_COINS must not be negative, got %d", c.DemoStartingCoins))
	}
	if c.SeedCatalog && c.CatalogPath == "" {
		errs = append(errs, errors.New("SEED_CATALOG requires CATALOG_PATH"))
	}

	return errors.Join(errs...)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty parts
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsInt retrieves an integer environment variable, falling back on parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsBool retrieves a boolean environment variable, falling back on parse errors
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
