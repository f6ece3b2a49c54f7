package item

import (
	"context"
	"slices"

	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// ItemLevel computes the effective item level as seen by owner. A nil owner
// views the item at player level 1 without per player bounds.
func (it *Item) ItemLevel(owner Owner) uint32 {
	in := bonus.LevelInput{
		Template:    it.template,
		Bonus:       it.bonus,
		PlayerLevel: 1,
		FixedLevel:  it.Modifier(domain.ModifierTimewalkerLevel),
	}
	if az, ok := it.variant.(*AzeriteItem); ok {
		in.AzeriteLevel = az.EffectiveLevel()
	}
	if owner != nil {
		bounds := owner.ItemLevelBounds()
		in.PlayerLevel = owner.Level()
		in.MinItemLevel = bounds.Min
		in.MinItemLevelCutoff = bounds.MinCutoff
		in.MaxItemLevel = bounds.Max
		if it.template.HasFlag3(domain.ItemFlag3IgnorePvpCap) {
			in.MaxItemLevel = 0
		}
		in.PvpBonus = owner.IsUsingPvpItemLevels()
	}
	return it.svc.Resolver.ItemLevel(in)
}

// SetFixedLevel pins a scaling item to level, clamped to its scaling band.
// Only items with a fixed scaling distribution that are not yet pinned are
// affected.
func (it *Item) SetFixedLevel(level uint32) {
	if !it.bonus.HasFixedLevel || it.Modifier(domain.ModifierTimewalkerLevel) != 0 {
		return
	}
	if fixed, ok := it.svc.Resolver.FixedLevel(it.bonus, level); ok {
		level = fixed
	}
	it.SetModifier(domain.ModifierTimewalkerLevel, level)
}

// RequiredLevel returns the level needed to use the item: an explicit
// override first, then the pinned level of a fixed scaling item, then the
// resolved required level.
func (it *Item) RequiredLevel() int32 {
	if it.bonus.RequiredLevelOverride != 0 {
		return it.bonus.RequiredLevelOverride
	}
	if fixed := it.Modifier(domain.ModifierTimewalkerLevel); it.bonus.HasFixedLevel && fixed != 0 {
		return int32(fixed)
	}
	return it.bonus.RequiredLevel
}

// AddBonuses appends bonus lists and layers their entries on the resolved
// data. Lists already applied and unknown lists are skipped.
func (it *Item) AddBonuses(ctx context.Context, listIDs ...uint32) {
	for _, id := range listIDs {
		if slices.Contains(it.bonusListIDs, id) {
			continue
		}
		entries, ok := it.svc.tables().BonusList(id)
		if !ok {
			logger.FromContext(ctx).Warn(bonus.LogMsgUnknownBonusList, "item_guid", it.guid, "bonus_list_id", id)
			metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindBonusList).Inc()
			continue
		}
		it.bonusListIDs = append(it.bonusListIDs, id)
		it.bonus.AddEntries(entries)
		it.dirty.Mark(FieldBonusLists)
	}
}

// SetBonuses replaces the applied bonus lists and recomposes the resolved
// data in list order. Per socket gem contributions are kept.
func (it *Item) SetBonuses(ctx context.Context, listIDs []uint32) {
	prev := it.bonus
	it.bonusListIDs = slices.Clone(listIDs)
	it.bonus = it.svc.Resolver.Resolve(ctx, it.template, it.bonusListIDs)
	it.bonus.GemItemLevelBonus = prev.GemItemLevelBonus
	it.bonus.GemRelicType = prev.GemRelicType
	it.dirty.Mark(FieldBonusLists)
}

// SetRandomBonusList applies the rolled bonus list of the item.
func (it *Item) SetRandomBonusList(ctx context.Context, listID uint32) {
	if listID == 0 {
		return
	}
	it.randomBonusListID = listID
	it.AddBonuses(ctx, listID)
}
