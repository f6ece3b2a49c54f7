package artifact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/catalog"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

const (
	testArtifact = 1

	powerFirst   = 100 // tier 0, label 1, starts at rank 1
	powerPlain   = 101 // tier 0, label 2
	powerScaling = 102 // tier 1, label 2, scales with purchased ranks
	powerTiered  = 103 // other artifact, tier 0, max rank grows with the tier

	enchantByType      = 10 // +1 to label 2
	enchantByID        = 11 // +2 to powerFirst
	enchantPicker      = 12 // +1 to the socket relic type, no condition
	enchantGatedPicker = 13 // +1 to the socket relic type, condition 55

	conditionPicker     = 55
	conditionAppearance = 77
	conditionUnlock     = 88
)

func newTestTables(t *testing.T) *catalog.Catalog {
	t.Helper()

	effects := func(kind domain.EnchantmentType, arg uint32, points int16) ([3]domain.EnchantmentType, [3]uint32, [3]int16) {
		return [3]domain.EnchantmentType{kind}, [3]uint32{arg}, [3]int16{points}
	}
	enchant := func(id uint32, kind domain.EnchantmentType, arg uint32, points int16) domain.SpellItemEnchantment {
		e, a, p := effects(kind, arg, points)
		return domain.SpellItemEnchantment{ID: id, Effect: e, EffectArg: a, EffectPointsMin: p}
	}

	balance := catalog.BalanceFile{
		ArtifactPowers: []domain.ArtifactPower{
			{ID: powerFirst, ArtifactID: testArtifact, Tier: 0, Label: 1, Flags: domain.ArtifactPowerFlagFirst, MaxPurchasableRank: 3},
			{ID: powerPlain, ArtifactID: testArtifact, Tier: 0, Label: 2, MaxPurchasableRank: 3},
			{ID: powerScaling, ArtifactID: testArtifact, Tier: 1, Label: 2, Flags: domain.ArtifactPowerFlagScalesWithNumPowers, MaxPurchasableRank: 1},
			{ID: powerTiered, ArtifactID: 3, Tier: 0, Label: 3, Flags: domain.ArtifactPowerFlagMaxRankWithTier, MaxPurchasableRank: 2},
			{ID: 200, ArtifactID: 2, Tier: 0, Label: 2},
		},
		ArtifactPowerRanks: []domain.ArtifactPowerRank{
			{ID: 1000, ArtifactPowerID: powerFirst, RankIndex: 0, SpellID: 1},
			{ID: 1001, ArtifactPowerID: powerFirst, RankIndex: 1, SpellID: 2},
			{ID: 1002, ArtifactPowerID: powerFirst, RankIndex: 2, SpellID: 3},
		},
		ArtifactPowerPickers: []domain.ArtifactPowerPicker{
			{ID: 300},
			{ID: 301, PlayerConditionID: conditionPicker},
		},
		ArtifactAppearances: []domain.ArtifactAppearance{
			{ID: 1, ArtifactID: testArtifact, DisplayIndex: 0, UnlockPlayerConditionID: conditionAppearance, ItemAppearanceModifierID: 5},
			{ID: 2, ArtifactID: testArtifact, DisplayIndex: 1, ItemAppearanceModifierID: 6},
		},
		ArtifactUnlocks: []domain.ArtifactUnlock{
			{ID: 1, ArtifactID: testArtifact, ItemBonusListID: 900},
			{ID: 2, ArtifactID: testArtifact, PlayerConditionID: conditionUnlock, ItemBonusListID: 901},
		},
		KnowledgeMultipliers: []domain.KnowledgeMultiplier{
			{Level: 1, Multiplier: 1},
			{Level: 3, Multiplier: 2.5},
		},
		Enchantments: []domain.SpellItemEnchantment{
			enchant(enchantByType, domain.EnchantmentArtifactPowerBonusRankByType, 2, 1),
			enchant(enchantByID, domain.EnchantmentArtifactPowerBonusRankByID, powerFirst, 2),
			enchant(enchantPicker, domain.EnchantmentArtifactPowerBonusRankPicker, 300, 1),
			enchant(enchantGatedPicker, domain.EnchantmentArtifactPowerBonusRankPicker, 301, 1),
		},
	}

	c, err := catalog.New(catalog.TemplateFile{}, balance)
	require.NoError(t, err)
	return c
}

func newLoadedTable(t *testing.T) *PowerTable {
	t.Helper()
	table := NewPowerTable(newTestTables(t))
	table.InitThrough(testArtifact, 1)
	return table
}

func rank(t *testing.T, table *PowerTable, id uint32) uint8 {
	t.Helper()
	p, ok := table.Get(id)
	require.True(t, ok, "power %d", id)
	return p.CurrentRankWithBonus
}
