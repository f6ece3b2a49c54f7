package item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/catalog"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Template ids
const (
	tmplSword     = 1
	tmplPotion    = 2
	tmplArtifact  = 3
	tmplRedGem    = 4
	tmplBlueGem   = 5
	tmplBag       = 6
	tmplAzerite   = 7
	tmplRelic     = 8
	tmplEmpowered = 9
	tmplCloak     = 10
)

// Bonus list ids
const (
	listItemLevel10  = 20
	listEpic         = 21
	listFixedScaling = 22
	listLevelOver    = 23
	listUnbound      = 24
	listGemLevel     = 60
	listRelicType    = 61
	listRelicUnlock  = 900
	listGatedUnlock  = 901
)

// Artifact data
const (
	testArtifact = 1

	powerFirst = 100 // tier 0, label 1, starts at rank 1
	powerPlain = 101 // tier 0, label 2

	enchantRedGem  = 500
	enchantBlueGem = 501
	enchantPicker  = 502 // +1 to the socket relic type
	enchantByID    = 600 // +2 to powerFirst

	conditionAppearance = 77
	conditionUnlock     = 88
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	templates := catalog.TemplateFile{Templates: []domain.ItemTemplate{
		{
			ID: tmplSword, Name: "Longsword", Class: domain.ItemClassWeapon, InventoryType: domain.InventoryTypeWeapon,
			Quality: domain.QualityUncommon, BaseItemLevel: 100, RequiredLevel: 40, MaxStackSize: 1, MaxDurability: 50,
			Bonding: domain.BondingOnEquip, SpellCharges: []int32{-1, 3},
			SocketColors: []domain.SocketColor{domain.SocketColorRed, domain.SocketColorPrismatic},
		},
		{
			ID: tmplPotion, Name: "Healing Potion", Class: domain.ItemClassConsumable,
			BaseItemLevel: 10, MaxStackSize: 20, Duration: 3600,
		},
		{
			ID: tmplArtifact, Name: "Ashbringer", Class: domain.ItemClassWeapon, InventoryType: domain.InventoryTypeWeapon,
			Quality: domain.QualityArtifact, BaseItemLevel: 750, MaxStackSize: 1, MaxDurability: 100,
			ArtifactID: testArtifact, Flags3: domain.ItemFlag3IgnorePvpCap,
			SocketColors: []domain.SocketColor{domain.SocketColorRelicIron, domain.SocketColorRelicIron, domain.SocketColorRelicIron},
		},
		{ID: tmplRedGem, Name: "Ruby", Class: domain.ItemClassGem, BaseItemLevel: 10, MaxStackSize: 20, GemPropertiesID: 1},
		{ID: tmplBlueGem, Name: "Sapphire", Class: domain.ItemClassGem, BaseItemLevel: 10, MaxStackSize: 20, GemPropertiesID: 2},
		{
			ID: tmplBag, Name: "Pouch", Class: domain.ItemClassContainer, InventoryType: domain.InventoryTypeBag,
			MaxStackSize: 1, ContainerSlots: 4,
		},
		{
			ID: tmplAzerite, Name: "Heart", Class: domain.ItemClassArmor, InventoryType: domain.InventoryTypeNeck,
			BaseItemLevel: 200, MaxStackSize: 1, IsAzeriteItem: true,
		},
		{
			ID: tmplRelic, Name: "Iron Relic", Class: domain.ItemClassGem, SubClass: domain.ItemSubClassGemArtifactRelic,
			BaseItemLevel: 50, MaxStackSize: 1, GemPropertiesID: 3,
		},
		{
			ID: tmplEmpowered, Name: "Empowered Helm", Class: domain.ItemClassArmor, InventoryType: domain.InventoryTypeHead,
			BaseItemLevel: 300, MaxStackSize: 1,
		},
		{
			ID: tmplCloak, Name: "Timeworn Cloak", Class: domain.ItemClassArmor, InventoryType: domain.InventoryTypeCloak,
			BaseItemLevel: 20, RequiredLevel: 10, MaxStackSize: 1, Bonding: domain.BondingOnAcquire,
		},
	}}

	entry := func(kind domain.BonusType, values ...int32) domain.ItemBonusEntry {
		e := domain.ItemBonusEntry{Type: kind}
		copy(e.Values[:], values)
		return e
	}
	enchant := func(id uint32, kind domain.EnchantmentType, arg uint32, points int16) domain.SpellItemEnchantment {
		return domain.SpellItemEnchantment{
			ID:              id,
			Effect:          [3]domain.EnchantmentType{kind},
			EffectArg:       [3]uint32{arg},
			EffectPointsMin: [3]int16{points},
		}
	}

	balance := catalog.BalanceFile{
		BonusLists: []domain.ItemBonusList{
			{ID: listItemLevel10, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 10)}},
			{ID: listEpic, Entries: []domain.ItemBonusEntry{entry(domain.BonusQuality, int32(domain.QualityEpic))}},
			{ID: listFixedScaling, Entries: []domain.ItemBonusEntry{entry(domain.BonusScalingStatDistributionFixed, 10, 1, 0)}},
			{ID: listLevelOver, Entries: []domain.ItemBonusEntry{entry(domain.BonusOverrideRequiredLevel, 45)}},
			{ID: listUnbound, Entries: []domain.ItemBonusEntry{entry(domain.BonusBonding, int32(domain.BondingNone))}},
			{ID: listGemLevel, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 5)}},
			{ID: listRelicType, Entries: []domain.ItemBonusEntry{entry(domain.BonusRelicType, 1)}},
			{ID: listRelicUnlock, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 1)}},
			{ID: listGatedUnlock, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 2)}},
		},
		Curves: []domain.Curve{
			{ID: 40, Points: []domain.CurvePoint{{X: 1, Y: 10}, {X: 60, Y: 100}}},
		},
		ScalingStatDistributions: []domain.ScalingStatDistribution{
			{ID: 10, MinLevel: 1, MaxLevel: 60, PlayerLevelToItemLevelCurveID: 40},
		},
		AzeriteLevels: []domain.AzeriteLevelInfo{
			{Level: 1, ItemLevel: 250},
			{Level: 5, ItemLevel: 310},
		},
		AzeriteEmpoweredItems: []domain.AzeriteEmpoweredItem{{ItemID: tmplEmpowered, AzeriteTierUnlockSetID: 3}},
		GemProperties: []domain.GemProperties{
			{ID: 1, EnchantID: enchantRedGem, Type: domain.SocketColorRed},
			{ID: 2, EnchantID: enchantBlueGem, Type: domain.SocketColorBlue},
			{ID: 3, EnchantID: enchantPicker, Type: domain.SocketColorRelicIron},
		},
		ArtifactPowers: []domain.ArtifactPower{
			{ID: powerFirst, ArtifactID: testArtifact, Tier: 0, Label: 1, Flags: domain.ArtifactPowerFlagFirst},
			{ID: powerPlain, ArtifactID: testArtifact, Tier: 0, Label: 2},
		},
		ArtifactPowerRanks: []domain.ArtifactPowerRank{
			{ID: 1000, ArtifactPowerID: powerFirst, RankIndex: 0, SpellID: 1},
			{ID: 1001, ArtifactPowerID: powerFirst, RankIndex: 1, SpellID: 2},
			{ID: 1002, ArtifactPowerID: powerFirst, RankIndex: 2, SpellID: 3},
		},
		ArtifactPowerPickers: []domain.ArtifactPowerPicker{{ID: 300}},
		ArtifactAppearances: []domain.ArtifactAppearance{
			{ID: 1, ArtifactID: testArtifact, DisplayIndex: 0, UnlockPlayerConditionID: conditionAppearance, ItemAppearanceModifierID: 5},
			{ID: 2, ArtifactID: testArtifact, DisplayIndex: 1, ItemAppearanceModifierID: 6},
		},
		ArtifactUnlocks: []domain.ArtifactUnlock{
			{ID: 1, ArtifactID: testArtifact, ItemBonusListID: listRelicUnlock},
			{ID: 2, ArtifactID: testArtifact, PlayerConditionID: conditionUnlock, ItemBonusListID: listGatedUnlock},
		},
		KnowledgeMultipliers: []domain.KnowledgeMultiplier{
			{Level: 1, Multiplier: 1},
			{Level: 4, Multiplier: 2},
		},
		Enchantments: []domain.SpellItemEnchantment{
			enchant(enchantRedGem, domain.EnchantmentBonusListID, listGemLevel, 0),
			enchant(enchantBlueGem, domain.EnchantmentStat, 3, 10),
			enchant(enchantPicker, domain.EnchantmentArtifactPowerBonusRankPicker, 300, 1),
			enchant(enchantByID, domain.EnchantmentArtifactPowerBonusRankByID, powerFirst, 2),
		},
	}

	c, err := catalog.New(templates, balance)
	require.NoError(t, err)
	return c
}

func newTestServices(t *testing.T) *Services {
	t.Helper()
	c := newTestCatalog(t)
	return &Services{
		Resolver: bonus.NewResolver(c, c),
		Now:      func() time.Time { return testNow },
	}
}

func mustTemplate(t *testing.T, svc *Services, id uint32) *domain.ItemTemplate {
	t.Helper()
	tmpl, ok := svc.template(id)
	require.True(t, ok, "template %d", id)
	return tmpl
}

// newTestItem creates an unowned item of the given template.
func newTestItem(t *testing.T, svc *Services, guid domain.GUID, entry uint32) *Item {
	t.Helper()
	it, err := Create(context.Background(), svc, guid, mustTemplate(t, svc, entry), domain.ItemContextNone, nil)
	require.NoError(t, err)
	return it
}

// newOwnedItem creates an item owned by owner. No owner callbacks are made for
// non-artifact templates.
func newOwnedItem(t *testing.T, svc *Services, owner *MockOwner, guid domain.GUID, entry uint32) *Item {
	t.Helper()
	it, err := Create(context.Background(), svc, guid, mustTemplate(t, svc, entry), domain.ItemContextNone, owner)
	require.NoError(t, err)
	return it
}

// persisted returns an item that behaves as loaded from storage.
func persisted(it *Item) *Item {
	it.MarkUnchanged()
	it.dirty.Reset()
	return it
}
