package domain

// TemplateStat is one base stat slot of a template. Type -1 marks an unused slot.
type TemplateStat struct {
	Type                 int32   `json:"type"`
	Allocation           int32   `json:"allocation"`
	SocketCostMultiplier float32 `json:"socket_cost_multiplier,omitempty"`
}

// ItemTemplate is an immutable catalog entry shared by every instance of an item.
type ItemTemplate struct {
	ID                        uint32         `json:"id" validate:"required"`
	Name                      string         `json:"name" validate:"required"`
	Class                     ItemClass      `json:"class"`
	SubClass                  uint32         `json:"subclass"`
	InventoryType             InventoryType  `json:"inventory_type" validate:"lte=28"`
	Quality                   ItemQuality    `json:"quality" validate:"lte=8"`
	BaseItemLevel             uint32         `json:"base_item_level"`
	RequiredLevel             int32          `json:"required_level"`
	MaxStackSize              uint32         `json:"max_stack_size" validate:"required,min=1"`
	MaxDurability             uint32         `json:"max_durability"`
	Duration                  uint32         `json:"duration,omitempty"`
	Bonding                   BondingType    `json:"bonding" validate:"lte=4"`
	Stats                     []TemplateStat `json:"stats,omitempty" validate:"max=10"`
	SocketColors              []SocketColor  `json:"socket_colors,omitempty" validate:"max=16"`
	Flags                     uint32         `json:"flags,omitempty"`
	Flags2                    uint32         `json:"flags2,omitempty"`
	Flags3                    uint32         `json:"flags3,omitempty"`
	Flags4                    uint32         `json:"flags4,omitempty"`
	BuyPrice                  uint32         `json:"buy_price"`
	SellPrice                 uint32         `json:"sell_price"`
	BuyCount                  uint32         `json:"buy_count,omitempty"`
	PriceVariance             float32        `json:"price_variance,omitempty"`
	PriceRandomValue          float32        `json:"price_random_value,omitempty"`
	ArtifactID                uint8          `json:"artifact_id,omitempty"`
	GemPropertiesID           uint32         `json:"gem_properties_id,omitempty"`
	ScalingStatDistributionID uint32         `json:"scaling_stat_distribution_id,omitempty"`
	SpellCharges              []int32        `json:"spell_charges,omitempty" validate:"max=5"`
	ContainerSlots            uint8          `json:"container_slots,omitempty"`
	IsAzeriteItem             bool           `json:"azerite_item,omitempty"`
}

// StatType returns the base stat type of slot i, or -1 when the slot is unused.
func (t *ItemTemplate) StatType(i int) int32 {
	if i < 0 || i >= len(t.Stats) {
		return -1
	}
	return t.Stats[i].Type
}

// StatAllocation returns the base allocation of slot i.
func (t *ItemTemplate) StatAllocation(i int) int32 {
	if i < 0 || i >= len(t.Stats) {
		return 0
	}
	return t.Stats[i].Allocation
}

// SocketColor returns the base color of socket i.
func (t *ItemTemplate) SocketColor(i int) SocketColor {
	if i < 0 || i >= len(t.SocketColors) {
		return SocketColorNone
	}
	return t.SocketColors[i]
}

// SpellCharge returns the default charges of spell slot i.
func (t *ItemTemplate) SpellCharge(i int) int32 {
	if i < 0 || i >= len(t.SpellCharges) {
		return 0
	}
	return t.SpellCharges[i]
}

func (t *ItemTemplate) HasFlag(f uint32) bool  { return t.Flags&f != 0 }
func (t *ItemTemplate) HasFlag2(f uint32) bool { return t.Flags2&f != 0 }
func (t *ItemTemplate) HasFlag3(f uint32) bool { return t.Flags3&f != 0 }
func (t *ItemTemplate) HasFlag4(f uint32) bool { return t.Flags4&f != 0 }

// IsWeaponInventoryType reports whether the template prices off the weapon base factor.
func (t *ItemTemplate) IsWeaponInventoryType() bool {
	switch t.InventoryType {
	case InventoryTypeWeapon, InventoryType2HWeapon, InventoryTypeWeaponMainhand,
		InventoryTypeWeaponOffhand, InventoryTypeRanged, InventoryTypeThrown, InventoryTypeRangedRight:
		return true
	}
	return false
}

// IsArtifactRelic reports whether the template is a relic gem.
func (t *ItemTemplate) IsArtifactRelic() bool {
	return t.Class == ItemClassGem && t.SubClass == ItemSubClassGemArtifactRelic
}

// IsEquippable reports whether the template occupies an equipment slot.
func (t *ItemTemplate) IsEquippable() bool {
	return t.InventoryType != InventoryTypeNonEquip
}
