package economy

import (
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

// PricingEngine derives vendor prices from templates and the price import
// tables. It holds no mutable state.
type PricingEngine struct {
	tables         repository.PriceTables
	shieldPriceRow uint32
}

// Option configures a PricingEngine.
type Option func(*PricingEngine)

// WithShieldPriceRow selects the shield price table row.
func WithShieldPriceRow(row uint32) Option {
	return func(e *PricingEngine) {
		if row != 0 {
			e.shieldPriceRow = row
		}
	}
}

// NewPricingEngine creates a pricing engine over the given tables.
func NewPricingEngine(tables repository.PriceTables, opts ...Option) *PricingEngine {
	e := &PricingEngine{
		tables:         tables,
		shieldPriceRow: DefaultShieldPriceRow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ShieldPriceRow returns the configured shield row.
func (e *PricingEngine) ShieldPriceRow() uint32 { return e.shieldPriceRow }

// BuyPrice returns the vendor buy price. standard is true when the price came
// from the template (flat override or unpriced inventory type) or a lookup
// failed, and false when it was computed from the import tables.
//
// The item level argument is unused: the base factor is keyed by the
// template base item level.
func (e *PricingEngine) BuyPrice(tmpl *domain.ItemTemplate, quality domain.ItemQuality, _ uint32) (price uint32, standard bool) {
	if tmpl.HasFlag2(domain.ItemFlag2OverrideGold) {
		return tmpl.BuyPrice, true
	}

	qualityFactor, ok := e.tables.PriceQuality(uint32(quality) + 1)
	if !ok {
		return 0, true
	}
	base, ok := e.tables.PriceBase(tmpl.BaseItemLevel)
	if !ok {
		return 0, true
	}

	baseFactor := base.Armor
	if tmpl.IsWeaponInventoryType() {
		baseFactor = base.Weapon
	}

	inventoryType := tmpl.InventoryType
	if inventoryType == domain.InventoryTypeRobe {
		inventoryType = domain.InventoryTypeChest
	}
	if tmpl.IsArtifactRelic() {
		inventoryType = domain.InventoryTypeWeapon
		baseFactor = base.Weapon / relicWeaponDivisor
	}

	typeFactor, ok, priced := e.typeFactor(tmpl, inventoryType)
	if !priced {
		return tmpl.BuyPrice, true
	}
	if !ok {
		return 0, true
	}

	return uint32(tmpl.PriceVariance * typeFactor * baseFactor * qualityFactor * tmpl.PriceRandomValue), false
}

// typeFactor resolves the per inventory type multiplier. priced is false for
// inventory types the import tables do not cover; ok is false when a covered
// type is missing its table row.
func (e *PricingEngine) typeFactor(tmpl *domain.ItemTemplate, inventoryType domain.InventoryType) (factor float32, ok, priced bool) {
	weaponType := -1

	switch inventoryType {
	case domain.InventoryTypeHead, domain.InventoryTypeNeck, domain.InventoryTypeShoulders,
		domain.InventoryTypeChest, domain.InventoryTypeWaist, domain.InventoryTypeLegs,
		domain.InventoryTypeFeet, domain.InventoryTypeWrists, domain.InventoryTypeHands,
		domain.InventoryTypeFinger, domain.InventoryTypeTrinket, domain.InventoryTypeCloak,
		domain.InventoryTypeHoldable:
		armor, found := e.tables.PriceArmor(inventoryType)
		if !found {
			return 0, false, true
		}
		return armorModifier(armor, tmpl.SubClass), true, true
	case domain.InventoryTypeShield:
		shield, found := e.tables.PriceShield(e.shieldPriceRow)
		return shield, found, true
	case domain.InventoryTypeWeaponMainhand:
		weaponType = weaponTypeMainhand
	case domain.InventoryTypeWeaponOffhand:
		weaponType = weaponTypeOffhand
	case domain.InventoryTypeWeapon:
		weaponType = weaponTypeOneHand
	case domain.InventoryType2HWeapon:
		weaponType = weaponTypeTwoHand
	case domain.InventoryTypeRanged, domain.InventoryTypeRangedRight, domain.InventoryTypeRelic:
		weaponType = weaponTypeRanged
	default:
		return 0, false, false
	}

	weapon, found := e.tables.PriceWeapon(uint32(weaponType) + 1)
	return weapon, found, true
}

func armorModifier(row domain.ImportPriceArmor, subClass uint32) float32 {
	switch subClass {
	case domain.ItemSubClassArmorMiscellaneous, domain.ItemSubClassArmorCloth:
		return row.ClothModifier
	case domain.ItemSubClassArmorLeather:
		return row.LeatherModifier
	case domain.ItemSubClassArmorMail:
		return row.ChainModifier
	case domain.ItemSubClassArmorPlate:
		return row.PlateModifier
	default:
		return 1.0
	}
}

// SellPrice returns the vendor sell price. A flat gold override always wins.
// Standard buy prices are scaled by the item class price modifier and divided
// by the buy count; computed ones fall back to the template sell price.
func (e *PricingEngine) SellPrice(tmpl *domain.ItemTemplate, quality domain.ItemQuality, itemLevel uint32) uint32 {
	if tmpl.HasFlag2(domain.ItemFlag2OverrideGold) {
		return tmpl.SellPrice
	}

	cost, standard := e.BuyPrice(tmpl, quality, itemLevel)
	if !standard {
		return tmpl.SellPrice
	}

	class, ok := e.tables.ItemClass(tmpl.Class)
	if !ok {
		return 0
	}
	buyCount := max(tmpl.BuyCount, 1)
	return uint32(float32(cost) * class.PriceModifier / float32(buyCount))
}

// Priceable is a live item whose resolved quality feeds the price formulas.
type Priceable interface {
	Template() *domain.ItemTemplate
	Quality() domain.ItemQuality
}

// ItemBuyPrice prices a live item at the given effective item level.
func (e *PricingEngine) ItemBuyPrice(it Priceable, itemLevel uint32) (uint32, bool) {
	return e.BuyPrice(it.Template(), it.Quality(), itemLevel)
}

// ItemSellPrice prices a live item at the given effective item level.
func (e *PricingEngine) ItemSellPrice(it Priceable, itemLevel uint32) uint32 {
	return e.SellPrice(it.Template(), it.Quality(), itemLevel)
}
