package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Storage Worker
// ============================================================================

// Log messages for storage worker operations
const (
	LogMsgStorageWorkerStarted  = "Storage worker started"
	LogMsgStorageWorkerStopping = "Storage worker stopping, draining queue"
	LogMsgStorageWorkerStopped  = "Storage worker stopped"
	LogMsgStorageDrainTimeout   = "Storage worker shutdown timeout, transactions may be lost"
	LogMsgTransactionEnqueued   = "Transaction enqueued"
	LogMsgTransactionSkipped    = "Empty transaction skipped"
	LogMsgOwnerFlushed          = "Owner save queue flushed"
	LogMsgFlushRestored         = "Flush not accepted, save queue restored"
)

// ErrFmtCommitFailed wraps a failed commit with its transaction id
const ErrFmtCommitFailed = "transaction %s (%d statements): %w"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in tests
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
