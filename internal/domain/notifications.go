package domain

// GUID is the global identity of a persisted object (item or character).
type GUID uint64

// IsEmpty reports whether the GUID is unset.
func (g GUID) IsEmpty() bool { return g == 0 }

// Outbound notifications sent to the owning client. Each is a small fixed
// payload keyed by the item it concerns.

// SocketGemsResult confirms a socketing operation.
type SocketGemsResult struct {
	Item GUID `json:"item"`
}

// ItemTimeUpdate reports the remaining duration of a timed item.
type ItemTimeUpdate struct {
	Item     GUID   `json:"item"`
	Duration uint32 `json:"duration"`
}

// ArtifactXpGain reports xp granted to an artifact.
type ArtifactXpGain struct {
	Artifact GUID   `json:"artifact"`
	Amount   uint64 `json:"amount"`
}

// EnchantmentLog announces an enchantment applied to or removed from an item.
type EnchantmentLog struct {
	Owner       GUID   `json:"owner"`
	Caster      GUID   `json:"caster"`
	Item        GUID   `json:"item"`
	ItemID      uint32 `json:"item_id"`
	Enchantment uint32 `json:"enchantment"`
	EnchantSlot uint32 `json:"enchant_slot"`
}

// ItemExpirePurchaseRefund tells the client a refund window has closed.
type ItemExpirePurchaseRefund struct {
	Item GUID `json:"item"`
}
