package bonus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/catalog"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Template ids
const (
	tmplHelm     = 1
	tmplCloak    = 2
	tmplQuest    = 3
	tmplRelicGem = 100
	tmplFlatGem  = 101
	tmplBareGem  = 102
	tmplBadGem   = 103
)

// Bonus list ids
const (
	listItemLevel15    = 10
	listQualityAndStat = 11
	listBlueSockets    = 12
	listScaling        = 13
	listTunedScaling   = 14
	listHugeLevel      = 15
	listNegativeLevel  = 16
	listGemFlat        = 50
	listDelta7         = 51
	listRelicType      = 52
)

func newTestCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	templates := catalog.TemplateFile{Templates: []domain.ItemTemplate{
		{
			ID: tmplHelm, Name: "Plate Helm", Class: domain.ItemClassArmor, SubClass: domain.ItemSubClassArmorPlate,
			InventoryType: domain.InventoryTypeHead, Quality: domain.QualityUncommon, BaseItemLevel: 100,
			RequiredLevel: 50, MaxStackSize: 1,
			Stats:        []domain.TemplateStat{{Type: 3, Allocation: 100}, {Type: 4, Allocation: 50}},
			SocketColors: []domain.SocketColor{domain.SocketColorRed},
		},
		{
			ID: tmplCloak, Name: "Scaling Cloak", Class: domain.ItemClassArmor, InventoryType: domain.InventoryTypeCloak,
			BaseItemLevel: 20, MaxStackSize: 1, ScalingStatDistributionID: 10,
		},
		{ID: tmplQuest, Name: "Quest Token", Class: domain.ItemClassQuest, BaseItemLevel: 5, MaxStackSize: 20},
		{
			ID: tmplRelicGem, Name: "Relic", Class: domain.ItemClassGem, SubClass: domain.ItemSubClassGemArtifactRelic,
			BaseItemLevel: 50, MaxStackSize: 1, GemPropertiesID: 7,
		},
		{ID: tmplFlatGem, Name: "Flat Gem", Class: domain.ItemClassGem, BaseItemLevel: 10, MaxStackSize: 1, GemPropertiesID: 8},
		{ID: tmplBareGem, Name: "Bare Gem", Class: domain.ItemClassGem, MaxStackSize: 1, GemPropertiesID: 99},
		{ID: tmplBadGem, Name: "Broken Gem", Class: domain.ItemClassGem, MaxStackSize: 1, GemPropertiesID: 9},
	}}

	entry := func(kind domain.BonusType, values ...int32) domain.ItemBonusEntry {
		e := domain.ItemBonusEntry{Type: kind}
		copy(e.Values[:], values)
		return e
	}

	balance := catalog.BalanceFile{
		BonusLists: []domain.ItemBonusList{
			{ID: listItemLevel15, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 15)}},
			{ID: listQualityAndStat, Entries: []domain.ItemBonusEntry{entry(domain.BonusQuality, 4), entry(domain.BonusStat, 5, 30)}},
			{ID: listBlueSockets, Entries: []domain.ItemBonusEntry{entry(domain.BonusSocket, 2, int32(domain.SocketColorBlue))}},
			{ID: listScaling, Entries: []domain.ItemBonusEntry{entry(domain.BonusScalingStatDistribution, 11, 5, 0)}},
			{ID: listTunedScaling, Entries: []domain.ItemBonusEntry{entry(domain.BonusScalingStatDistribution, 10, 1, 30)}},
			{ID: listHugeLevel, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 5000)}},
			{ID: listNegativeLevel, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, -500)}},
			{ID: listGemFlat, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 5), entry(domain.BonusStat, 3, 10)}},
			{ID: listDelta7, Entries: []domain.ItemBonusEntry{entry(domain.BonusItemLevel, 7)}},
			{ID: listRelicType, Entries: []domain.ItemBonusEntry{entry(domain.BonusRelicType, 2)}},
		},
		ItemLevelDeltaBonuses: []domain.ItemLevelDeltaBonus{{Delta: 7, BonusListID: listDelta7}},
		Curves: []domain.Curve{
			{ID: 20, Points: []domain.CurvePoint{{X: 60, Y: 100}, {X: 1, Y: 10}}},
			{ID: domain.CurveArtifactRelicItemLevelBonus, Points: []domain.CurvePoint{{X: 0, Y: 7}}},
		},
		ScalingStatDistributions: []domain.ScalingStatDistribution{
			{ID: 10, MinLevel: 1, MaxLevel: 60, PlayerLevelToItemLevelCurveID: 20},
			{ID: 11, MinLevel: 10, MaxLevel: 20, PlayerLevelToItemLevelCurveID: 20},
		},
		ContentTunings:        []domain.ContentTuning{{ID: 30, MinLevel: 5, MaxLevel: 30}},
		AzeriteLevels:         []domain.AzeriteLevelInfo{{Level: 3, ItemLevel: 300}},
		AzeriteEmpoweredItems: []domain.AzeriteEmpoweredItem{{ItemID: tmplHelm, AzeriteTierUnlockSetID: 77}},
		PvpItemLevelBonuses:   []catalog.PvpItemLevelBonus{{ItemID: tmplHelm, Bonus: 20}},
		GemProperties: []domain.GemProperties{
			{ID: 7, EnchantID: 70},
			{ID: 8, EnchantID: 80},
			{ID: 9, EnchantID: 999},
		},
		Enchantments: []domain.SpellItemEnchantment{
			{ID: 70, Effect: [3]domain.EnchantmentType{domain.EnchantmentBonusListCurve}},
			{ID: 80, Effect: [3]domain.EnchantmentType{domain.EnchantmentBonusListID}, EffectArg: [3]uint32{listGemFlat}},
		},
	}

	c, err := catalog.New(templates, balance)
	require.NoError(t, err)
	return c
}

func mustTemplate(t testing.TB, c *catalog.Catalog, id uint32) *domain.ItemTemplate {
	t.Helper()
	tmpl, ok := c.Template(id)
	require.True(t, ok, "template %d", id)
	return tmpl
}
