package artifact

import (
	"context"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// ConditionChecker evaluates player conditions.
type ConditionChecker interface {
	MeetsCondition(conditionID uint32) bool
}

// Owner is the player side of enchant driven rank changes.
type Owner interface {
	ConditionChecker
	ApplyArtifactPowerRank(ctx context.Context, rank domain.ArtifactPowerRank, apply bool)
}

// EnchantContext describes where an enchantment sits on the item.
type EnchantContext struct {
	Slot domain.EnchantmentSlot
	// GemRelicTypes holds the relic type of each relic socket, -1 when empty.
	GemRelicTypes [domain.MaxRelicSockets]int32
	Equipped      bool
	Owner         Owner
}

func (e EnchantContext) socketRelicType() (int32, bool) {
	if !e.Slot.IsSocket() {
		return -1, false
	}
	relic := e.GemRelicTypes[e.Slot-domain.EnchantmentSlotSocket1]
	return relic, relic != -1
}

// meetsCondition treats condition 0 as always met and a missing owner as not
// meeting any real condition.
func meetsCondition(owner ConditionChecker, conditionID uint32) bool {
	if conditionID == 0 {
		return true
	}
	return owner != nil && owner.MeetsCondition(conditionID)
}

// ApplyEnchantBonuses adds (apply) or subtracts the artifact rank bonuses of
// an enchantment. Only CurrentRankWithBonus moves; apply and remove use the
// same magnitude so a remove undoes the matching apply. Equipped items
// forward the new rank to the owner.
func (t *PowerTable) ApplyEnchantBonuses(ctx context.Context, ec EnchantContext, enchantID uint32, apply bool) {
	if enchantID == 0 {
		return
	}
	enchant, ok := t.tables.Enchantment(enchantID)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownEnchant, "enchant_id", enchantID)
		metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindEnchantment).Inc()
		return
	}

	for i := 0; i < domain.MaxItemEnchantmentEffects; i++ {
		points := uint8(enchant.EffectPointsMin[i])
		arg := enchant.EffectArg[i]

		switch enchant.Effect[i] {
		case domain.EnchantmentArtifactPowerBonusRankByType:
			for idx := range t.powers {
				if label, ok := t.label(t.powers[idx].ID); ok && label == int32(arg) {
					t.shiftRank(ctx, ec, idx, points, apply)
				}
			}
		case domain.EnchantmentArtifactPowerBonusRankByID:
			if idx, ok := t.index[arg]; ok {
				t.shiftRank(ctx, ec, idx, points, apply)
			}
		case domain.EnchantmentArtifactPowerBonusRankPicker:
			relic, ok := ec.socketRelicType()
			if !ok {
				continue
			}
			picker, ok := t.tables.ArtifactPowerPicker(arg)
			if !ok || !meetsCondition(ec.Owner, picker.PlayerConditionID) {
				continue
			}
			for idx := range t.powers {
				if label, ok := t.label(t.powers[idx].ID); ok && label == relic {
					t.shiftRank(ctx, ec, idx, points, apply)
				}
			}
		}
	}
}

func (t *PowerTable) shiftRank(ctx context.Context, ec EnchantContext, idx int, points uint8, apply bool) {
	p := &t.powers[idx]
	if apply {
		p.CurrentRankWithBonus += points
	} else {
		p.CurrentRankWithBonus -= points
	}

	if !ec.Equipped || ec.Owner == nil {
		return
	}
	newRank := p.CurrentRankWithBonus
	rankIndex := newRank
	if rankIndex != 0 {
		rankIndex--
	}
	rank, ok := t.tables.ArtifactPowerRank(p.ID, rankIndex)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgRankForwardFailed, "power_id", p.ID, "rank", rankIndex)
		return
	}
	ec.Owner.ApplyArtifactPowerRank(ctx, rank, newRank != 0)
}
