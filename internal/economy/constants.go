package economy

// DefaultShieldPriceRow is the shield price table row used when no override
// is configured. The source tables carry two rows and which one is
// authoritative is unresolved; see DESIGN.md.
const DefaultShieldPriceRow uint32 = 2

// relicWeaponDivisor scales the weapon base factor for artifact relic gems
const relicWeaponDivisor = 3.0

// Weapon price table rows are weapon type + 1.
const (
	weaponTypeMainhand = iota
	weaponTypeOffhand
	weaponTypeOneHand
	weaponTypeTwoHand
	weaponTypeRanged
)
