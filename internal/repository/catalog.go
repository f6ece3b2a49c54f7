package repository

import "github.com/osse101/ItemForge_Go/internal/domain"

// Read-only registries. Implementations are loaded once at process start and
// are immutable afterwards, so they may be shared between shards without locking.

// TemplateCatalog looks up item templates by id.
type TemplateCatalog interface {
	Template(id uint32) (*domain.ItemTemplate, bool)
}

// BonusTables serves bonus list definitions.
type BonusTables interface {
	BonusList(id uint32) ([]domain.ItemBonusEntry, bool)
	// ItemLevelDeltaBonusList returns the bonus list granting exactly delta
	// item levels, or 0 when none exists.
	ItemLevelDeltaBonusList(delta int16) uint32
}

// ScalingTables serves the item level scaling data.
type ScalingTables interface {
	// CurveValue evaluates a curve at x. Unknown curves evaluate to 0.
	CurveValue(curveID uint32, x float32) float32
	ScalingStatDistribution(id uint32) (domain.ScalingStatDistribution, bool)
	ContentTuning(id uint32) (domain.ContentTuning, bool)
	AzeriteLevelInfo(level uint32) (domain.AzeriteLevelInfo, bool)
	AzeriteEmpoweredItem(templateID uint32) (domain.AzeriteEmpoweredItem, bool)
	PvpItemLevelBonus(templateID uint32) uint32
}

// PriceTables serves the vendor price import tables.
type PriceTables interface {
	PriceQuality(row uint32) (float32, bool)
	PriceBase(itemLevel uint32) (domain.ItemPriceBase, bool)
	PriceArmor(inv domain.InventoryType) (domain.ImportPriceArmor, bool)
	PriceShield(row uint32) (float32, bool)
	PriceWeapon(row uint32) (float32, bool)
	ItemClass(class domain.ItemClass) (domain.ItemClassRecord, bool)
}

// ArtifactTables serves artifact progression data.
type ArtifactTables interface {
	ArtifactPowers(artifactID uint8) []domain.ArtifactPower
	ArtifactPower(id uint32) (domain.ArtifactPower, bool)
	ArtifactPowerRank(powerID uint32, rank uint8) (domain.ArtifactPowerRank, bool)
	ArtifactPowerPicker(id uint32) (domain.ArtifactPowerPicker, bool)
	ArtifactAppearances(artifactID uint8) []domain.ArtifactAppearance
	ArtifactUnlocks(artifactID uint8) []domain.ArtifactUnlock
	KnowledgeMultiplier(level uint32) (float32, bool)
}

// EnchantmentTables serves enchantment and gem definitions.
type EnchantmentTables interface {
	Enchantment(id uint32) (domain.SpellItemEnchantment, bool)
	GemProperties(id uint32) (domain.GemProperties, bool)
}

// BalanceTables is the full set of balance data consumed by the item engine.
type BalanceTables interface {
	BonusTables
	ScalingTables
	PriceTables
	ArtifactTables
	EnchantmentTables
}
