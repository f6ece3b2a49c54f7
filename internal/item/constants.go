package item

import "time"

// ==================== Container Positions ====================

// Equipment and container slot bounds
const (
	// EquipmentSlotEnd is the first slot index that is not an equipment slot
	EquipmentSlotEnd uint8 = 19
	// NullSlot marks an item that is not placed in any slot
	NullSlot uint8 = 255
)

// ==================== Timers ====================

// RefundWindow is how long after purchase an item may still be refunded,
// measured in owner played time.
const RefundWindow = 2 * time.Hour

// ==================== Variants ====================

// MaxAzeriteEmpoweredTier is the number of selectable power tiers on an
// empowered item.
const MaxAzeriteEmpoweredTier = 5

// NoSelectedPower marks an unselected empowered tier.
const NoSelectedPower int32 = 0

// ==================== Error Messages ====================

// Error format strings used with fmt.Errorf
const (
	ErrFmtTemplateNotFound = "%w: template %d for item %d"
	ErrFmtInvalidCount     = "%w: count %d"
	ErrFmtInvalidTier      = "%w: tier %d"
	ErrFmtBagSlot          = "%w: bag slot %d of %d"
	ErrFmtModifierSnapshot = "%w: %d modifier values for mask %#x"
	ErrMsgEncodeDiff       = "failed to encode item diff"
	ErrMsgDecodeSnapshot   = "failed to decode modifier snapshot"
)

// ==================== Log Messages ====================

// Save queue log messages
const (
	LogMsgQueueOwnerMismatch  = "Item owner does not match save queue owner, not queued"
	LogMsgDequeueMismatch     = "Item owner does not match save queue owner, not dequeued"
	LogMsgQueueBlocked        = "Save queue blocked, item not queued"
	LogMsgQueuePositionStale  = "Save queue position does not hold this item"
	LogMsgDiscardedBeforeSave = "New item removed before its first save, discarded"
)

// Load and integrity log messages
const (
	LogMsgUnknownTemplate     = "Unknown item template"
	LogMsgMalformedTokens     = "Malformed token string, field ignored"
	LogMsgExpirationCorrected = "Stored expiration differs from template duration, reset"
	LogMsgDurabilityClamped   = "Stored durability exceeds maximum, clamped"
	LogMsgSoulboundCleared    = "Soulbound flag set on item without bonding, cleared"
	LogMsgUnknownAppearance   = "Unknown artifact appearance"
)
