package domain

// ItemUpdateState is an item's position in the persistence lifecycle.
type ItemUpdateState uint8

const (
	ItemUnchanged ItemUpdateState = iota
	ItemChanged
	ItemNew
	ItemRemoved
)

func (s ItemUpdateState) String() string {
	switch s {
	case ItemUnchanged:
		return "unchanged"
	case ItemChanged:
		return "changed"
	case ItemNew:
		return "new"
	case ItemRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ItemClass is the top level item category.
type ItemClass uint8

const (
	ItemClassConsumable      ItemClass = 0
	ItemClassContainer       ItemClass = 1
	ItemClassWeapon          ItemClass = 2
	ItemClassGem             ItemClass = 3
	ItemClassArmor           ItemClass = 4
	ItemClassReagent         ItemClass = 5
	ItemClassProjectile      ItemClass = 6
	ItemClassTradeGoods      ItemClass = 7
	ItemClassItemEnhancement ItemClass = 8
	ItemClassRecipe          ItemClass = 9
	ItemClassQuiver          ItemClass = 11
	ItemClassQuest           ItemClass = 12
	ItemClassKey             ItemClass = 13
	ItemClassMiscellaneous   ItemClass = 15
	ItemClassGlyph           ItemClass = 16
	ItemClassBattlePets      ItemClass = 17
)

// Armor subclasses used by the price tables.
const (
	ItemSubClassArmorMiscellaneous uint32 = 0
	ItemSubClassArmorCloth         uint32 = 1
	ItemSubClassArmorLeather       uint32 = 2
	ItemSubClassArmorMail          uint32 = 3
	ItemSubClassArmorPlate         uint32 = 4
	ItemSubClassArmorCosmetic      uint32 = 5
	ItemSubClassArmorShield        uint32 = 6
)

// ItemSubClassGemArtifactRelic marks relic gems socketed into artifacts.
const ItemSubClassGemArtifactRelic uint32 = 11

// InventoryType is the equip slot category of a template.
type InventoryType uint8

const (
	InventoryTypeNonEquip       InventoryType = 0
	InventoryTypeHead           InventoryType = 1
	InventoryTypeNeck           InventoryType = 2
	InventoryTypeShoulders      InventoryType = 3
	InventoryTypeBody           InventoryType = 4
	InventoryTypeChest          InventoryType = 5
	InventoryTypeWaist          InventoryType = 6
	InventoryTypeLegs           InventoryType = 7
	InventoryTypeFeet           InventoryType = 8
	InventoryTypeWrists         InventoryType = 9
	InventoryTypeHands          InventoryType = 10
	InventoryTypeFinger         InventoryType = 11
	InventoryTypeTrinket        InventoryType = 12
	InventoryTypeWeapon         InventoryType = 13
	InventoryTypeShield         InventoryType = 14
	InventoryTypeRanged         InventoryType = 15
	InventoryTypeCloak          InventoryType = 16
	InventoryType2HWeapon       InventoryType = 17
	InventoryTypeBag            InventoryType = 18
	InventoryTypeTabard         InventoryType = 19
	InventoryTypeRobe           InventoryType = 20
	InventoryTypeWeaponMainhand InventoryType = 21
	InventoryTypeWeaponOffhand  InventoryType = 22
	InventoryTypeHoldable       InventoryType = 23
	InventoryTypeAmmo           InventoryType = 24
	InventoryTypeThrown         InventoryType = 25
	InventoryTypeRangedRight    InventoryType = 26
	InventoryTypeQuiver         InventoryType = 27
	InventoryTypeRelic          InventoryType = 28
)

// ItemQuality is the rarity tier of an item.
type ItemQuality uint8

const (
	QualityPoor ItemQuality = iota
	QualityNormal
	QualityUncommon
	QualityRare
	QualityEpic
	QualityLegendary
	QualityArtifact
	QualityHeirloom
	QualityWowToken
)

// BondingType controls when an item becomes soulbound.
type BondingType uint8

const (
	BondingNone BondingType = iota
	BondingOnAcquire
	BondingOnEquip
	BondingOnUse
	BondingQuest
)

// SocketColor is a bit set of gem colors a socket accepts.
type SocketColor uint32

const (
	SocketColorNone      SocketColor = 0
	SocketColorMeta      SocketColor = 0x00001
	SocketColorRed       SocketColor = 0x00002
	SocketColorYellow    SocketColor = 0x00004
	SocketColorBlue      SocketColor = 0x00008
	SocketColorHydraulic SocketColor = 0x00010
	SocketColorCogwheel  SocketColor = 0x00020
	SocketColorPrismatic SocketColor = 0x0000E
	SocketColorRelicIron SocketColor = 0x00040
)

// Accepts reports whether a gem of color gem fits this socket. Prismatic
// sockets take any of the basic colors.
func (c SocketColor) Accepts(gem SocketColor) bool {
	return c&gem != 0
}

// ItemContext records where an item instance was generated.
type ItemContext uint8

const (
	ItemContextNone          ItemContext = 0
	ItemContextDungeonNormal ItemContext = 1
	ItemContextRaidNormal    ItemContext = 3
	ItemContextPvpRanked     ItemContext = 6
	ItemContextQuestReward   ItemContext = 12
	ItemContextVendor        ItemContext = 13
	ItemContextTradeSkill    ItemContext = 14
)

// ItemModifier keys the sparse per-instance modifier set.
type ItemModifier uint8

const (
	ModifierTransmogAppearanceAllSpecs ItemModifier = iota
	ModifierTransmogAppearanceSpec1
	ModifierUpgradeID
	ModifierBattlePetSpeciesID
	ModifierBattlePetBreedData
	ModifierBattlePetLevel
	ModifierBattlePetDisplayID
	ModifierEnchantIllusionAllSpecs
	ModifierArtifactAppearanceID
	ModifierTimewalkerLevel
	ModifierEnchantIllusionSpec1
	ModifierTransmogAppearanceSpec2
	ModifierEnchantIllusionSpec2
	ModifierTransmogAppearanceSpec3
	ModifierEnchantIllusionSpec3
	ModifierTransmogAppearanceSpec4
	ModifierEnchantIllusionSpec4
	ModifierChallengeMapChallengeModeID
	ModifierChallengeKeystoneLevel
	ModifierChallengeKeystoneAffixID1
	ModifierChallengeKeystoneAffixID2
	ModifierChallengeKeystoneAffixID3
	ModifierChallengeKeystoneAffixID4
	ModifierArtifactKnowledgeLevel
	ModifierArtifactTier

	MaxItemModifiers
)

// TransmogModifiers are persisted in the transmog child table, in column order.
var TransmogModifiers = [...]ItemModifier{
	ModifierTransmogAppearanceAllSpecs,
	ModifierTransmogAppearanceSpec1,
	ModifierTransmogAppearanceSpec2,
	ModifierTransmogAppearanceSpec3,
	ModifierTransmogAppearanceSpec4,
	ModifierEnchantIllusionAllSpecs,
	ModifierEnchantIllusionSpec1,
	ModifierEnchantIllusionSpec2,
	ModifierEnchantIllusionSpec3,
	ModifierEnchantIllusionSpec4,
}

// GenericModifiers are persisted in the modifiers child table, in column order.
var GenericModifiers = [...]ItemModifier{
	ModifierTimewalkerLevel,
	ModifierArtifactKnowledgeLevel,
}

// BonusType identifies the patch kind of a bonus list entry.
type BonusType uint8

const (
	BonusItemLevel                    BonusType = 1
	BonusStat                         BonusType = 2
	BonusQuality                      BonusType = 3
	BonusNameSubtitle                 BonusType = 4
	BonusSuffix                       BonusType = 5
	BonusSocket                       BonusType = 6
	BonusAppearance                   BonusType = 7
	BonusRequiredLevel                BonusType = 8
	BonusDisplayToastMethod           BonusType = 9
	BonusRepairCostMultiplier         BonusType = 10
	BonusScalingStatDistribution      BonusType = 11
	BonusDisenchantLootID             BonusType = 12
	BonusScalingStatDistributionFixed BonusType = 13
	BonusItemLevelCanIncrease         BonusType = 14
	BonusRandomEnchantment            BonusType = 15
	BonusBonding                      BonusType = 16
	BonusRelicType                    BonusType = 17
	BonusOverrideRequiredLevel        BonusType = 18
	BonusAzeriteTierUnlockSet         BonusType = 19
	BonusOverrideCanDisenchant        BonusType = 21
	BonusOverrideCanScrap             BonusType = 22
)

// EnchantmentType is the effect kind of one enchantment effect slot.
type EnchantmentType uint8

const (
	EnchantmentNone                         EnchantmentType = 0
	EnchantmentCombatSpell                  EnchantmentType = 1
	EnchantmentDamage                       EnchantmentType = 2
	EnchantmentEquipSpell                   EnchantmentType = 3
	EnchantmentResistance                   EnchantmentType = 4
	EnchantmentStat                         EnchantmentType = 5
	EnchantmentTotem                        EnchantmentType = 6
	EnchantmentUseSpell                     EnchantmentType = 7
	EnchantmentPrismaticSocket              EnchantmentType = 8
	EnchantmentArtifactPowerBonusRankByType EnchantmentType = 9
	EnchantmentArtifactPowerBonusRankByID   EnchantmentType = 10
	EnchantmentBonusListID                  EnchantmentType = 11
	EnchantmentBonusListCurve               EnchantmentType = 12
	EnchantmentArtifactPowerBonusRankPicker EnchantmentType = 13
)

// EnchantmentSlot indexes the per-item enchantment array.
type EnchantmentSlot uint8

const (
	EnchantmentSlotPermanent EnchantmentSlot = iota
	EnchantmentSlotTemporary
	EnchantmentSlotSocket1
	EnchantmentSlotSocket2
	EnchantmentSlotSocket3
	EnchantmentSlotBonus
	EnchantmentSlotPrismatic
	EnchantmentSlotUse
	EnchantmentSlotProperty0
	EnchantmentSlotProperty1
	EnchantmentSlotProperty2
	EnchantmentSlotProperty3
	EnchantmentSlotProperty4

	MaxEnchantmentSlots
)

// MaxInspectedEnchantmentSlot bounds the slots visible to other players.
const MaxInspectedEnchantmentSlot = EnchantmentSlotProperty0

// IsSocket reports whether the slot belongs to a gem socket.
func (s EnchantmentSlot) IsSocket() bool {
	return s >= EnchantmentSlotSocket1 && s <= EnchantmentSlotSocket3
}

// Item instance flags.
const (
	ItemFieldFlagSoulbound    uint32 = 0x00001
	ItemFieldFlagTranslated   uint32 = 0x00002
	ItemFieldFlagUnlocked     uint32 = 0x00004
	ItemFieldFlagWrapped      uint32 = 0x00008
	ItemFieldFlagBopTradeable uint32 = 0x00100
	ItemFieldFlagReadable     uint32 = 0x00200
	ItemFieldFlagRefundable   uint32 = 0x01000
	ItemFieldFlagChild        uint32 = 0x80000
)

// Template flags consulted by the engine.
const (
	ItemFlagConjured      uint32 = 0x00000002
	ItemFlagNoDisenchant  uint32 = 0x00008000
	ItemFlag2OverrideGold uint32 = 0x00004000
	ItemFlag3IgnorePvpCap uint32 = 0x00200000
	ItemFlag4Scrapable    uint32 = 0x00010000
)

// Artifact power flags.
const (
	ArtifactPowerFlagGold                    uint8 = 0x01
	ArtifactPowerFlagNoLinkRequired          uint8 = 0x02
	ArtifactPowerFlagFinal                   uint8 = 0x04
	ArtifactPowerFlagScalesWithNumPowers     uint8 = 0x08
	ArtifactPowerFlagDontCountFirstBonusRank uint8 = 0x10
	ArtifactPowerFlagMaxRankWithTier         uint8 = 0x20

	ArtifactPowerFlagFirst = ArtifactPowerFlagNoLinkRequired | ArtifactPowerFlagDontCountFirstBonusRank
)

// ArtifactCategory selects the knowledge multiplier table for artifact xp.
type ArtifactCategory uint8

const (
	ArtifactCategoryNone    ArtifactCategory = 0
	ArtifactCategoryPrimary ArtifactCategory = 1
	ArtifactCategoryFishing ArtifactCategory = 2
)

// Fixed sizes of per-item arrays.
const (
	MaxItemStats              = 10
	MaxGemSockets             = 16
	MaxGemBonusLists          = 16
	MaxItemSpells             = 5
	MaxItemEnchantmentEffects = 3
	MaxRelicSockets           = 3
	EnchantmentTokenFields    = 3
)

// Item level bounds.
const (
	MinItemLevel = 1
	MaxItemLevel = 1300
)

// CurveArtifactRelicItemLevelBonus maps a relic's item level to its socket bonus.
const CurveArtifactRelicItemLevelBonus uint32 = 1718
