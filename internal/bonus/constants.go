package bonus

import (
	"math"
	"time"
)

// Priority gated fields start unclaimed; any explicit priority wins over this.
const initialPriority = math.MaxInt32

// Cache defaults
const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgUnknownBonusList   = "Unknown bonus list, ignoring"
	LogMsgUnknownGemTemplate = "Unknown gem template, ignoring"
	LogMsgUnknownEnchantment = "Unknown enchantment on gem, ignoring"
)
