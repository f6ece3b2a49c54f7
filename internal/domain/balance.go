package domain

// ItemBonusEntry is one patch of a bonus list. The meaning of Values depends on Type.
type ItemBonusEntry struct {
	Type   BonusType `json:"type" validate:"required"`
	Values [4]int32  `json:"values"`
}

// ItemBonusList is an ordered set of patches.
type ItemBonusList struct {
	ID      uint32           `json:"id" validate:"required"`
	Entries []ItemBonusEntry `json:"entries" validate:"dive"`
}

// CurvePoint is one (x, y) sample of a piecewise linear curve.
type CurvePoint struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Curve maps an input (player level, item level) to an output value.
type Curve struct {
	ID     uint32       `json:"id" validate:"required"`
	Points []CurvePoint `json:"points" validate:"required,min=1"`
}

// ScalingStatDistribution ties scaling items to a level band and curve.
type ScalingStatDistribution struct {
	ID                            uint32 `json:"id" validate:"required"`
	MinLevel                      uint32 `json:"min_level"`
	MaxLevel                      uint32 `json:"max_level" validate:"gtefield=MinLevel"`
	PlayerLevelToItemLevelCurveID uint32 `json:"curve_id"`
}

// ContentTuning optionally narrows the level band of a scaling item.
type ContentTuning struct {
	ID       uint32 `json:"id" validate:"required"`
	Flags    uint32 `json:"flags"`
	MinLevel uint32 `json:"min_level"`
	MaxLevel uint32 `json:"max_level"`
}

// Applies reports whether the tuning band restricts the level.
func (c ContentTuning) Applies() bool {
	return (c.Flags&2 != 0 || c.MinLevel != 0 || c.MaxLevel != 0) && c.Flags&4 == 0
}

// AzeriteLevelInfo maps a progression level to an item level.
type AzeriteLevelInfo struct {
	Level     uint32 `json:"level" validate:"required"`
	ItemLevel uint32 `json:"item_level"`
}

// AzeriteEmpoweredItem links a template to its tier unlock set.
type AzeriteEmpoweredItem struct {
	ItemID                 uint32 `json:"item_id" validate:"required"`
	AzeriteTierUnlockSetID uint32 `json:"tier_unlock_set_id"`
}

// ItemPriceBase holds the per-item-level base factors.
type ItemPriceBase struct {
	ItemLevel uint32  `json:"item_level" validate:"required"`
	Armor     float32 `json:"armor"`
	Weapon    float32 `json:"weapon"`
}

// ImportPriceArmor holds subclass modifiers for one armor inventory type.
type ImportPriceArmor struct {
	InventoryType   InventoryType `json:"inventory_type" validate:"required"`
	ClothModifier   float32       `json:"cloth"`
	LeatherModifier float32       `json:"leather"`
	ChainModifier   float32       `json:"chain"`
	PlateModifier   float32       `json:"plate"`
}

// PriceRow is a single factor keyed by row id (quality, shield and weapon tables).
type PriceRow struct {
	ID   uint32  `json:"id" validate:"required"`
	Data float32 `json:"data"`
}

// ItemClassRecord carries class wide sell modifiers.
type ItemClassRecord struct {
	ClassID       ItemClass `json:"class_id"`
	PriceModifier float32   `json:"price_modifier"`
}

// ArtifactPower is a catalog power definition.
type ArtifactPower struct {
	ID                 uint32 `json:"id" validate:"required"`
	ArtifactID         uint8  `json:"artifact_id" validate:"required"`
	Tier               uint8  `json:"tier"`
	Label              int32  `json:"label"`
	Flags              uint8  `json:"flags"`
	MaxPurchasableRank uint8  `json:"max_purchasable_rank"`
}

// HasFlag reports whether all bits of f are set.
func (p ArtifactPower) HasFlag(f uint8) bool { return p.Flags&f == f }

// ArtifactPowerRank is the effect of a power at one rank.
type ArtifactPowerRank struct {
	ID                 uint32  `json:"id" validate:"required"`
	ArtifactPowerID    uint32  `json:"artifact_power_id" validate:"required"`
	RankIndex          uint8   `json:"rank_index"`
	SpellID            uint32  `json:"spell_id"`
	AuraPointsOverride float32 `json:"aura_points_override,omitempty"`
}

// ArtifactPowerPicker gates picker bonuses behind a player condition.
type ArtifactPowerPicker struct {
	ID                uint32 `json:"id" validate:"required"`
	PlayerConditionID uint32 `json:"player_condition_id"`
}

// ArtifactAppearance is an unlockable artifact look.
type ArtifactAppearance struct {
	ID                       uint32 `json:"id" validate:"required"`
	ArtifactID               uint8  `json:"artifact_id" validate:"required"`
	DisplayIndex             uint8  `json:"display_index"`
	UnlockPlayerConditionID  uint32 `json:"unlock_player_condition_id"`
	ItemAppearanceModifierID uint32 `json:"item_appearance_modifier_id"`
}

// ArtifactUnlock grants a bonus list once its player condition is met.
type ArtifactUnlock struct {
	ID                uint32 `json:"id" validate:"required"`
	ArtifactID        uint8  `json:"artifact_id" validate:"required"`
	PlayerConditionID uint32 `json:"player_condition_id"`
	ItemBonusListID   uint32 `json:"item_bonus_list_id"`
}

// KnowledgeMultiplier scales artifact xp by knowledge level.
type KnowledgeMultiplier struct {
	Level      uint32  `json:"level" validate:"required"`
	Multiplier float32 `json:"multiplier"`
}

// SpellItemEnchantment is an enchantment with up to three effects.
type SpellItemEnchantment struct {
	ID              uint32                                     `json:"id" validate:"required"`
	Effect          [MaxItemEnchantmentEffects]EnchantmentType `json:"effect"`
	EffectArg       [MaxItemEnchantmentEffects]uint32          `json:"effect_arg"`
	EffectPointsMin [MaxItemEnchantmentEffects]int16           `json:"effect_points_min"`
}

// GemProperties links a gem template to its enchantment.
type GemProperties struct {
	ID        uint32      `json:"id" validate:"required"`
	EnchantID uint32      `json:"enchant_id"`
	Type      SocketColor `json:"type"`
}

// ItemLevelDeltaBonus maps an item level delta to the bonus list granting it.
type ItemLevelDeltaBonus struct {
	Delta       int16  `json:"delta"`
	BonusListID uint32 `json:"bonus_list_id" validate:"required"`
}
