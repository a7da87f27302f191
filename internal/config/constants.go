package config

const (
	// Configuration file paths
	ConfigPathCatalog      = "configs/catalog.json"
	ConfigPathAchievements = "configs/achievements.json"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultDBMaxConns         = 20
	DefaultDBMaxConnIdleMin   = 30
	DefaultDBMaxConnLifeMin   = 60
	DefaultMaxConflictRetries = 5
	DefaultCatalogCacheSize   = 256
	DefaultCatalogCacheTTLSec = 300
	DefaultRateLimit          = 1000
	DefaultRateLimitWindowSec = 300
	DefaultDemoStartingCoins  = 1000
	DefaultLockTTLSec         = 10
)

// EnvironmentProduction requires an API key
const EnvironmentProduction = "prod"
