package artifact

import (
	"github.com/samber/lo"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

// Tables is the balance data the power table reads.
type Tables interface {
	repository.ArtifactTables
	repository.EnchantmentTables
}

// Power is the progression state of one artifact power on an item.
// PurchasedRank changes only through player spending; enchantments and the
// load path adjust CurrentRankWithBonus.
type Power struct {
	ID                   uint32 `json:"id" msgpack:"id"`
	PurchasedRank        uint8  `json:"purchased_rank" msgpack:"p"`
	CurrentRankWithBonus uint8  `json:"current_rank" msgpack:"c"`
}

// PowerTable is an append-only, insertion-ordered map of power id to Power.
// Powers are never removed once added.
type PowerTable struct {
	tables Tables
	index  map[uint32]int
	powers []Power
}

// NewPowerTable returns an empty table reading definitions from tables.
func NewPowerTable(tables Tables) *PowerTable {
	return &PowerTable{
		tables: tables,
		index:  make(map[uint32]int),
	}
}

// Init unlocks every power of the given tier that is not yet present. Powers
// flagged First start at rank 1, the rest at 0.
func (t *PowerTable) Init(artifactID, tier uint8) {
	for _, def := range t.tables.ArtifactPowers(artifactID) {
		if def.Tier != tier {
			continue
		}
		var rank uint8
		if def.HasFlag(domain.ArtifactPowerFlagFirst) {
			rank = 1
		}
		t.add(Power{ID: def.ID, CurrentRankWithBonus: rank})
	}
}

// InitThrough unlocks every tier from 0 up to and including tier.
func (t *PowerTable) InitThrough(artifactID, tier uint8) {
	for i := 0; i <= int(tier); i++ {
		t.Init(artifactID, uint8(i))
	}
}

func (t *PowerTable) add(p Power) bool {
	if _, exists := t.index[p.ID]; exists {
		return false
	}
	t.index[p.ID] = len(t.powers)
	t.powers = append(t.powers, p)
	return true
}

// Get returns the power with the given id. ok is false for unknown powers.
func (t *PowerTable) Get(id uint32) (Power, bool) {
	i, ok := t.index[id]
	if !ok {
		return Power{}, false
	}
	return t.powers[i], true
}

// Set updates both ranks of an existing power. Unknown ids are ignored.
func (t *PowerTable) Set(id uint32, purchased, current uint8) bool {
	i, ok := t.index[id]
	if !ok {
		return false
	}
	t.powers[i].PurchasedRank = purchased
	t.powers[i].CurrentRankWithBonus = current
	return true
}

// TotalPurchased sums the purchased ranks of every power.
func (t *PowerTable) TotalPurchased() uint32 {
	return uint32(lo.SumBy(t.powers, func(p Power) int { return int(p.PurchasedRank) }))
}

// Powers returns a copy of the powers in insertion order.
func (t *PowerTable) Powers() []Power {
	out := make([]Power, len(t.powers))
	copy(out, t.powers)
	return out
}

// Len returns the number of unlocked powers.
func (t *PowerTable) Len() int { return len(t.powers) }

// Clone returns an independent copy sharing the same tables.
func (t *PowerTable) Clone() *PowerTable {
	c := NewPowerTable(t.tables)
	for _, p := range t.powers {
		c.add(p)
	}
	return c
}

func (t *PowerTable) label(id uint32) (int32, bool) {
	def, ok := t.tables.ArtifactPower(id)
	if !ok {
		return 0, false
	}
	return def.Label, true
}
