package artifact

import (
	"context"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// Record is the persisted artifact state of one item.
type Record struct {
	XP           uint64
	AppearanceID uint32
	Tier         uint8
	Powers       []Power
}

// Sockets is the relic socket state consulted when stored powers are loaded.
type Sockets struct {
	EnchantIDs [domain.MaxRelicSockets]uint32
	RelicTypes [domain.MaxRelicSockets]int32
}

// StoredPower builds the load time state of a persisted power. Only the
// purchased rank is stored, capped at the power's max purchasable rank for
// the artifact tier. Powers flagged First carry one free rank on top.
func StoredPower(tables Tables, tier uint8, id uint32, purchased uint8) Power {
	p := Power{ID: id, PurchasedRank: purchased}
	def, ok := tables.ArtifactPower(id)
	if !ok {
		return p
	}

	maxRank := def.MaxPurchasableRank
	if def.HasFlag(domain.ArtifactPowerFlagMaxRankWithTier) && def.Tier < tier {
		maxRank += tier - def.Tier
	}
	p.PurchasedRank = min(purchased, maxRank)
	if def.HasFlag(domain.ArtifactPowerFlagFirst) {
		p.CurrentRankWithBonus = 1
	}
	return p
}

// LoadArtifactData restores stored powers. Every tier up to the stored one is
// unlocked first, then each stored power gets its purchased rank plus the
// bonuses of the socketed relic enchantments. Powers that scale with the
// number of purchased ranks are finally set to total purchased + 1. owner may
// be nil, in which case conditional picker bonuses are skipped.
func (t *PowerTable) LoadArtifactData(ctx context.Context, artifactID uint8, rec Record, sockets Sockets, owner ConditionChecker) {
	t.InitThrough(artifactID, rec.Tier)

	var totalPurchased uint8
	for _, stored := range rec.Powers {
		current := stored.CurrentRankWithBonus + stored.PurchasedRank
		totalPurchased += stored.PurchasedRank

		def, ok := t.tables.ArtifactPower(stored.ID)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnknownPower, "power_id", stored.ID)
			metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindArtifactPower).Inc()
			t.Set(stored.ID, stored.PurchasedRank, current)
			continue
		}

		for s := range domain.MaxRelicSockets {
			current += t.socketBonus(def, sockets.EnchantIDs[s], sockets.RelicTypes[s], owner)
		}
		t.Set(stored.ID, stored.PurchasedRank, current)
	}

	for _, stored := range rec.Powers {
		def, ok := t.tables.ArtifactPower(stored.ID)
		if !ok || !def.HasFlag(domain.ArtifactPowerFlagScalesWithNumPowers) {
			continue
		}
		t.Set(stored.ID, stored.PurchasedRank, totalPurchased+1)
	}
}

func (t *PowerTable) socketBonus(def domain.ArtifactPower, enchantID uint32, relicType int32, owner ConditionChecker) uint8 {
	enchant, ok := t.tables.Enchantment(enchantID)
	if !ok {
		return 0
	}

	var bonus uint8
	for i := 0; i < domain.MaxItemEnchantmentEffects; i++ {
		points := uint8(enchant.EffectPointsMin[i])
		arg := enchant.EffectArg[i]

		switch enchant.Effect[i] {
		case domain.EnchantmentArtifactPowerBonusRankByType:
			if def.Label == int32(arg) {
				bonus += points
			}
		case domain.EnchantmentArtifactPowerBonusRankByID:
			if def.ID == arg {
				bonus += points
			}
		case domain.EnchantmentArtifactPowerBonusRankPicker:
			if relicType == -1 {
				continue
			}
			picker, ok := t.tables.ArtifactPowerPicker(arg)
			if ok && meetsCondition(owner, picker.PlayerConditionID) && def.Label == relicType {
				bonus += points
			}
		}
	}
	return bonus
}

// FirstAppearance returns the lowest display index appearance of the artifact
// whose unlock condition the owner meets.
func FirstAppearance(tables Tables, artifactID uint8, owner ConditionChecker) (domain.ArtifactAppearance, bool) {
	for _, a := range tables.ArtifactAppearances(artifactID) {
		if meetsCondition(owner, a.UnlockPlayerConditionID) {
			return a, true
		}
	}
	return domain.ArtifactAppearance{}, false
}

// UnlockedBonusLists returns the relic slot unlock bonus lists of the
// artifact whose condition the owner meets.
func UnlockedBonusLists(tables Tables, artifactID uint8, owner ConditionChecker) []uint32 {
	if owner == nil || artifactID == 0 {
		return nil
	}
	var lists []uint32
	for _, u := range tables.ArtifactUnlocks(artifactID) {
		if meetsCondition(owner, u.PlayerConditionID) {
			lists = append(lists, u.ItemBonusListID)
		}
	}
	return lists
}
