package postgres

// Error Messages
const (
	ErrMsgSelectItem          = "failed to select item"
	ErrMsgSelectGems          = "failed to select item gems"
	ErrMsgScanGem             = "failed to scan item gem"
	ErrMsgUpdateOnLoad        = "failed to write load corrections"
	ErrMsgSelectArtifact      = "failed to select artifact data"
	ErrMsgScanArtifactPower   = "failed to scan artifact power"
	ErrMsgSelectRefund        = "failed to select refund data"
	ErrMsgBeginTransaction    = "failed to begin transaction"
	ErrMsgCommitTransaction   = "failed to commit transaction"
	ErrMsgSaveContainerLoot   = "failed to save container loot"
	ErrMsgLoadContainerLoot   = "failed to load container loot"
	ErrMsgDeleteContainerLoot = "failed to delete container loot"
)

// Error format strings used with fmt.Errorf
const (
	ErrFmtItemNotFound = "%w: %d"
	ErrFmtStatement    = "failed to execute statement %d of transaction %s: %w"
)

// Log Messages
const (
	LogMsgItemSaved            = "Item saved"
	LogMsgItemDeleted          = "Item deleted, releasing"
	LogMsgLoadCorrections      = "Item loaded with corrections, writing back"
	LogMsgQueueFlushed         = "Save queue flushed"
	LogMsgTransactionCommitted = "Transaction committed"
	LogMsgRollbackFailed       = "Failed to rollback transaction"
	LogMsgContainerLootSaved   = "Container loot saved"
	LogMsgRefundMissing        = "Refundable item has no refund record, flag removed"
)
