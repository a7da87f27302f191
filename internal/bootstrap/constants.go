package bootstrap

import "time"

// Demo users
const (
	DemoUsernamePrefix = "demo-"
)

// Log messages for storage initialization
const (
	LogMsgUsingMemoryStorage   = "Using in-memory storage"
	LogMsgUsingPostgresStorage = "Using postgres storage"
	LogMsgMigrationsSkipped    = "Migrations disabled, skipping"
	LogMsgSeedingCatalog       = "Seeding catalog from JSON config..."
	LogMsgDemoUsersSeeded      = "Demo users seeded"
	LogMsgAchievementsLoaded   = "Achievement rules loaded"
	LogMsgUsingLocalLocks      = "Using in-process user locks"
	LogMsgUsingRedisLocks      = "Using redis user locks"
)

// Error messages for storage initialization
const (
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedRunMigrations   = "failed to run migrations"
	ErrMsgFailedLoadCatalog     = "failed to load catalog config"
	ErrMsgFailedSeedCatalog     = "failed to seed catalog"
	ErrMsgFailedSeedDemoUser    = "failed to seed demo user"
	ErrMsgFailedLoadAchievement = "failed to load achievement rules"
	ErrMsgUnknownStorage        = "unknown storage backend"
	ErrMsgFailedConnectRedis    = "failed to connect to redis"
)

// Shutdown
const (
	DefaultShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingStorage       = "Closing storage"
	LogMsgClosingLocks         = "Closing lock backend"
	LogMsgLocksCloseFailed     = "Lock backend close failed"
)
