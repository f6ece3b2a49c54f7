package bonus

import (
	"context"

	"github.com/samber/lo"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// GemBonus is what one socketed gem contributes to its host item.
type GemBonus struct {
	ItemLevel uint32
	RelicType int32
}

// GemBonus resolves the host contribution of a gem with its own bonus lists
// and scaling level. Missing catalog rows yield no contribution.
func (r *Resolver) GemBonus(ctx context.Context, gemItemID uint32, gemLists []uint32, scalingLevel uint32) GemBonus {
	result := GemBonus{RelicType: -1}

	gemTmpl, ok := r.catalog.Template(gemItemID)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownGemTemplate, "gem_item_id", gemItemID)
		metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindTemplate).Inc()
		return result
	}
	props, ok := r.tables.GemProperties(gemTmpl.GemPropertiesID)
	if !ok {
		return result
	}
	enchant, ok := r.tables.Enchantment(props.EnchantID)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownEnchantment, "gem_item_id", gemItemID, "enchant_id", props.EnchantID)
		metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindEnchantment).Inc()
		return result
	}

	gemData := r.Resolve(ctx, gemTmpl, gemLists)
	gemBase := gemTmpl.BaseItemLevel
	if ssd, ok := r.tables.ScalingStatDistribution(gemData.ScalingStatDistribution); ok {
		if scaled := uint32(r.tables.CurveValue(ssd.PlayerLevelToItemLevelCurveID, float32(scalingLevel))); scaled != 0 {
			gemBase = scaled
		}
	}
	result.RelicType = gemData.RelicType

	for i := 0; i < domain.MaxItemEnchantmentEffects; i++ {
		switch enchant.Effect[i] {
		case domain.EnchantmentBonusListID:
			result.ItemLevel += r.listItemLevel(enchant.EffectArg[i])
		case domain.EnchantmentBonusListCurve:
			x := float32(int64(gemBase) + int64(gemData.ItemLevelBonus))
			delta := int16(r.tables.CurveValue(domain.CurveArtifactRelicItemLevelBonus, x))
			if listID := r.tables.ItemLevelDeltaBonusList(delta); listID != 0 {
				result.ItemLevel += r.listItemLevel(listID)
			}
		}
	}
	return result
}

// listItemLevel sums the item level entries of a bonus list.
func (r *Resolver) listItemLevel(listID uint32) uint32 {
	entries, ok := r.tables.BonusList(listID)
	if !ok {
		return 0
	}
	return uint32(lo.SumBy(entries, func(e domain.ItemBonusEntry) int32 {
		if e.Type != domain.BonusItemLevel {
			return 0
		}
		return e.Values[0]
	}))
}
