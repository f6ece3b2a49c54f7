package bootstrap

import "time"

// ServiceName tags every log line of the item daemon
const ServiceName = "itemforge"

// Log messages for startup
const (
	LogMsgStarting            = "Starting ItemForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgCatalogLoaded       = "Item catalog loaded"
	LogMsgMigrationsSkipped   = "Migrations skipped on start"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStorageDrainFailed   = "Storage worker did not drain"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgLoadCatalog     = "failed to load item catalog"
	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgMigrateDatabase = "failed to migrate database"
)

// ShutdownTimeout bounds the graceful shutdown sequence
const ShutdownTimeout = 30 * time.Second
