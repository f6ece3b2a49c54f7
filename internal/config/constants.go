package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
	EnvEnvironment       = "ENVIRONMENT"
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBSSLMode         = "DB_SSLMODE"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvStorageWorkers    = "STORAGE_WORKERS"
	EnvStorageQueueSize  = "STORAGE_QUEUE_SIZE"
	EnvBonusCacheSize    = "BONUS_CACHE_SIZE"
	EnvBonusCacheTTL     = "BONUS_CACHE_TTL"
	EnvShieldPriceRow    = "SHIELD_PRICE_ROW"
	EnvCatalogDir        = "CATALOG_DIR"
	EnvMigrateOnStart    = "MIGRATE_ON_START"
)

// Defaults
const (
	DefaultEnvironment       = "dev"
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "itemforge"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultStorageWorkers    = 1
	DefaultStorageQueueSize  = 256
	DefaultBonusCacheSize    = 4096
	DefaultBonusCacheTTL     = 10 * time.Minute
	// The source data never settled which shield row is authoritative; row 2
	// matches the live behaviour.
	DefaultShieldPriceRow = 2
	DefaultCatalogDir     = "configs/catalog"
)

// Error messages
const (
	ErrMsgInvalidPort    = "invalid PORT value"
	ErrMsgInvalidConfig  = "invalid configuration"
	ErrMsgSchemaNotSet   = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatch = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingEnvVars = "missing required environment variables: %s"
)
