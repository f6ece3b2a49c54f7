package artifact

// XP rounding thresholds. Amounts at or above a threshold are rounded down to
// a multiple of its step.
const (
	xpLargeThreshold  = 5000
	xpLargeStep       = 50
	xpMediumThreshold = 1000
	xpMediumStep      = 25
	xpSmallThreshold  = 50
	xpSmallStep       = 5
)

// Log messages
const (
	LogMsgUnknownPower      = "Unknown artifact power, skipping socket bonuses"
	LogMsgUnknownEnchant    = "Unknown enchantment, no artifact bonuses applied"
	LogMsgRankForwardFailed = "No rank record for artifact power, nothing forwarded"
)
