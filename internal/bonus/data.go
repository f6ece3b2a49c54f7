package bonus

import (
	"slices"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Data is the resolved stat snapshot of an item: its template baseline with
// every bonus list entry layered on top in application order. It is derived
// state and is never persisted.
type Data struct {
	Quality                   domain.ItemQuality
	ItemLevelBonus            int32
	RequiredLevel             int32
	StatTypes                 []int32
	StatAllocations           []int32
	StatSocketCostMultipliers []float32
	SocketColors              [domain.MaxGemSockets]domain.SocketColor
	Bonding                   domain.BondingType
	AppearanceModID           uint32
	RepairCostMultiplier      float32
	ScalingStatDistribution   uint32
	ContentTuningID           uint32
	GemItemLevelBonus         [domain.MaxGemSockets]uint32
	GemRelicType              [domain.MaxGemSockets]int32
	RelicType                 int32
	RequiredLevelOverride     int32
	AzeriteTierUnlockSetID    uint32
	CanDisenchant             bool
	CanScrap                  bool
	HasFixedLevel             bool

	state priorityState
}

type priorityState struct {
	appearanceModPriority           int32
	scalingStatDistributionPriority int32
	azeriteTierUnlockSetPriority    int32
	hasQualityBonus                 bool
}

// NewData builds the template baseline with maxStats stat slots.
func NewData(tmpl *domain.ItemTemplate, maxStats int) *Data {
	if maxStats <= 0 {
		maxStats = domain.MaxItemStats
	}

	d := &Data{
		StatTypes:                 make([]int32, maxStats),
		StatAllocations:           make([]int32, maxStats),
		StatSocketCostMultipliers: make([]float32, maxStats),
		RepairCostMultiplier:      1.0,
		RelicType:                 -1,
		state: priorityState{
			appearanceModPriority:           initialPriority,
			scalingStatDistributionPriority: initialPriority,
			azeriteTierUnlockSetPriority:    initialPriority,
		},
	}
	for i := range d.GemRelicType {
		d.GemRelicType[i] = -1
	}
	for i := range d.StatTypes {
		d.StatTypes[i] = -1
	}

	if tmpl == nil {
		return d
	}

	d.Quality = tmpl.Quality
	d.RequiredLevel = tmpl.RequiredLevel
	for i := 0; i < maxStats; i++ {
		d.StatTypes[i] = tmpl.StatType(i)
		d.StatAllocations[i] = tmpl.StatAllocation(i)
		if i < len(tmpl.Stats) {
			d.StatSocketCostMultipliers[i] = tmpl.Stats[i].SocketCostMultiplier
		}
	}
	for i := range d.SocketColors {
		d.SocketColors[i] = tmpl.SocketColor(i)
	}
	d.Bonding = tmpl.Bonding
	d.ScalingStatDistribution = tmpl.ScalingStatDistributionID
	d.CanDisenchant = !tmpl.HasFlag(domain.ItemFlagNoDisenchant)
	d.CanScrap = tmpl.HasFlag4(domain.ItemFlag4Scrapable)
	return d
}

// Clone returns a deep copy, priority state included.
func (d *Data) Clone() *Data {
	c := *d
	c.StatTypes = slices.Clone(d.StatTypes)
	c.StatAllocations = slices.Clone(d.StatAllocations)
	c.StatSocketCostMultipliers = slices.Clone(d.StatSocketCostMultipliers)
	return &c
}

// AddBonus layers a single bonus entry. Application order matters: callers
// must apply entries in the order their lists were supplied.
func (d *Data) AddBonus(kind domain.BonusType, values [4]int32) {
	switch kind {
	case domain.BonusItemLevel:
		d.ItemLevelBonus += values[0]
	case domain.BonusStat:
		for i := range d.StatTypes {
			if d.StatTypes[i] == values[0] || d.StatTypes[i] == -1 {
				d.StatTypes[i] = values[0]
				d.StatAllocations[i] += values[1]
				break
			}
		}
	case domain.BonusQuality:
		if !d.state.hasQualityBonus {
			d.Quality = domain.ItemQuality(values[0])
			d.state.hasQualityBonus = true
		} else if int32(d.Quality) < values[0] {
			d.Quality = domain.ItemQuality(values[0])
		}
	case domain.BonusSocket:
		remaining := values[0]
		for i := 0; i < len(d.SocketColors) && remaining > 0; i++ {
			if d.SocketColors[i] == domain.SocketColorNone {
				d.SocketColors[i] = domain.SocketColor(values[1])
				remaining--
			}
		}
	case domain.BonusAppearance:
		if values[1] < d.state.appearanceModPriority {
			d.AppearanceModID = uint32(values[0])
			d.state.appearanceModPriority = values[1]
		}
	case domain.BonusRequiredLevel:
		d.RequiredLevel += values[0]
	case domain.BonusRepairCostMultiplier:
		d.RepairCostMultiplier *= float32(values[0]) * 0.01
	case domain.BonusScalingStatDistribution, domain.BonusScalingStatDistributionFixed:
		if values[1] < d.state.scalingStatDistributionPriority {
			d.ScalingStatDistribution = uint32(values[0])
			d.ContentTuningID = uint32(values[2])
			d.state.scalingStatDistributionPriority = values[1]
			d.HasFixedLevel = kind == domain.BonusScalingStatDistributionFixed
		}
	case domain.BonusBonding:
		d.Bonding = domain.BondingType(values[0])
	case domain.BonusRelicType:
		d.RelicType = values[0]
	case domain.BonusOverrideRequiredLevel:
		d.RequiredLevelOverride = values[0]
	case domain.BonusAzeriteTierUnlockSet:
		if values[1] < d.state.azeriteTierUnlockSetPriority {
			d.AzeriteTierUnlockSetID = uint32(values[0])
			d.state.azeriteTierUnlockSetPriority = values[1]
		}
	case domain.BonusOverrideCanDisenchant:
		d.CanDisenchant = values[0] != 0
	case domain.BonusOverrideCanScrap:
		d.CanScrap = values[0] != 0
	}
}

// AddEntries applies a bonus list's entries in order.
func (d *Data) AddEntries(entries []domain.ItemBonusEntry) {
	for _, e := range entries {
		d.AddBonus(e.Type, e.Values)
	}
}

// GemItemLevelTotal sums the per socket gem item level bonuses.
func (d *Data) GemItemLevelTotal() uint32 {
	var total uint32
	for _, b := range d.GemItemLevelBonus {
		total += b
	}
	return total
}
