package bonus

import (
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

// LevelInput carries everything the item level computation depends on.
// MinItemLevel, MinItemLevelCutoff and MaxItemLevel are the per player bounds;
// zero disables the respective rule.
type LevelInput struct {
	Template           *domain.ItemTemplate
	Bonus              *Data
	PlayerLevel        uint32
	FixedLevel         uint32
	MinItemLevel       uint32
	MinItemLevelCutoff uint32
	MaxItemLevel       uint32
	PvpBonus           bool
	AzeriteLevel       uint32
}

// ItemLevel computes the effective item level. It has no side effects and
// always returns a value within [domain.MinItemLevel, domain.MaxItemLevel].
func ItemLevel(tables repository.ScalingTables, in LevelInput) uint32 {
	if in.Template == nil || in.Bonus == nil {
		return domain.MinItemLevel
	}

	itemLevel := int64(in.Template.BaseItemLevel)
	if info, ok := tables.AzeriteLevelInfo(in.AzeriteLevel); ok {
		itemLevel = int64(info.ItemLevel)
	}

	if ssd, ok := tables.ScalingStatDistribution(in.Bonus.ScalingStatDistribution); ok {
		level := in.PlayerLevel
		if in.FixedLevel != 0 {
			level = in.FixedLevel
		} else {
			level = clamp(level, ssd.MinLevel, ssd.MaxLevel)
		}

		if tuning, ok := tables.ContentTuning(in.Bonus.ContentTuningID); ok && tuning.Applies() {
			level = clamp(level, tuning.MinLevel, tuning.MaxLevel)
		}

		if scaled := uint32(tables.CurveValue(ssd.PlayerLevelToItemLevelCurveID, float32(level))); scaled != 0 {
			itemLevel = int64(scaled)
		}
	}

	itemLevel += int64(in.Bonus.ItemLevelBonus)
	itemLevel += int64(in.Bonus.GemItemLevelTotal())

	beforeUpgrades := itemLevel

	if in.PvpBonus {
		itemLevel += int64(tables.PvpItemLevelBonus(in.Template.ID))
	}

	if in.Template.IsEquippable() {
		if in.MinItemLevel != 0 &&
			(in.MinItemLevelCutoff == 0 || beforeUpgrades >= int64(in.MinItemLevelCutoff)) &&
			itemLevel < int64(in.MinItemLevel) {
			itemLevel = int64(in.MinItemLevel)
		}

		if in.MaxItemLevel != 0 && itemLevel > int64(in.MaxItemLevel) {
			itemLevel = int64(in.MaxItemLevel)
		}
	}

	return uint32(min(max(itemLevel, domain.MinItemLevel), domain.MaxItemLevel))
}

// FixedLevel clamps a player level into the scaling band of d, narrowed by
// its content tuning. ok is false when d has no known scaling distribution.
func FixedLevel(tables repository.ScalingTables, d *Data, level uint32) (fixed uint32, ok bool) {
	ssd, found := tables.ScalingStatDistribution(d.ScalingStatDistribution)
	if !found {
		return 0, false
	}

	level = clamp(level, ssd.MinLevel, ssd.MaxLevel)
	if tuning, found := tables.ContentTuning(d.ContentTuningID); found && tuning.Applies() {
		level = clamp(level, tuning.MinLevel, tuning.MaxLevel)
	}
	return level, true
}

func clamp(v, lo, hi uint32) uint32 {
	return min(max(v, lo), hi)
}
