package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Migration settings
const (
	MigrationsDir = "migrations"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToOpenMigrations   = "failed to open embedded migrations"
	ErrMsgFailedToCreateMigrator   = "failed to create migration provider"
	ErrMsgFailedToApplyMigrations  = "failed to apply migrations"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationsUpToDate              = "Database schema up to date"
)
