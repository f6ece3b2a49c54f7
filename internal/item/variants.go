package item

import (
	"fmt"
	"slices"

	"github.com/osse101/ItemForge_Go/internal/artifact"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Kind names the type specific extension of an item.
type Kind uint8

const (
	KindPlain Kind = iota
	KindBag
	KindAzerite
	KindAzeriteEmpowered
)

func (k Kind) String() string {
	switch k {
	case KindBag:
		return "bag"
	case KindAzerite:
		return "azerite"
	case KindAzeriteEmpowered:
		return "azerite_empowered"
	default:
		return "plain"
	}
}

// Variant is the type specific state of an item, chosen from its template.
type Variant interface {
	Kind() Kind
}

// Capabilities an item may expose beyond the common surface.
type (
	// HasLoot is implemented by items that can carry generated loot.
	HasLoot interface {
		Loot() *domain.ContainerLoot
		LootGenerated() bool
		SetLoot(loot *domain.ContainerLoot)
	}

	// HasArtifact is implemented by items with artifact progression.
	HasArtifact interface {
		ArtifactXP() uint64
		ArtifactPowers() *artifact.PowerTable
		ArtifactRecord() artifact.Record
	}

	// HasProgressionPowers is implemented by variants with per tier power
	// selections.
	HasProgressionPowers interface {
		SelectedPower(tier int) int32
		SelectPower(tier int, powerID int32) error
	}
)

// AsArtifact returns the artifact capability of an artifact item.
func (it *Item) AsArtifact() (HasArtifact, bool) {
	if !it.IsArtifact() {
		return nil, false
	}
	return it, true
}

// AsLootContainer returns the loot capability of an item holding loot.
func (it *Item) AsLootContainer() (HasLoot, bool) {
	if !it.lootGenerated {
		return nil, false
	}
	return it, true
}

// ProgressionPowers returns the power selection capability of the variant.
func (it *Item) ProgressionPowers() (HasProgressionPowers, bool) {
	p, ok := it.variant.(HasProgressionPowers)
	return p, ok
}

func newVariant(svc *Services, tmpl *domain.ItemTemplate) Variant {
	switch {
	case tmpl == nil:
		return Plain{}
	case tmpl.InventoryType == domain.InventoryTypeBag || tmpl.ContainerSlots > 0:
		return NewBag(int(tmpl.ContainerSlots))
	case tmpl.IsAzeriteItem:
		return &AzeriteItem{level: 1}
	}
	if _, ok := svc.tables().AzeriteEmpoweredItem(tmpl.ID); ok {
		return &AzeriteEmpoweredItem{}
	}
	return Plain{}
}

// Plain is the variant of ordinary items.
type Plain struct{}

func (Plain) Kind() Kind { return KindPlain }

// ==================== Bag ====================

// Bag holds the items stored in a container item.
type Bag struct {
	slots []*Item
}

// NewBag returns an empty bag with size slots.
func NewBag(size int) *Bag {
	return &Bag{slots: make([]*Item, size)}
}

func (b *Bag) Kind() Kind { return KindBag }

// Size returns the number of slots.
func (b *Bag) Size() int { return len(b.slots) }

// Item returns the item in slot, or nil.
func (b *Bag) Item(slot int) *Item {
	if slot < 0 || slot >= len(b.slots) {
		return nil
	}
	return b.slots[slot]
}

// Store places it into slot of the bag item and records the placement on it.
func (b *Bag) Store(bag *Item, slot int, it *Item) error {
	if slot < 0 || slot >= len(b.slots) {
		return fmt.Errorf(ErrFmtBagSlot, domain.ErrInvalidSlot, slot, len(b.slots))
	}
	if b.slots[slot] != nil {
		return fmt.Errorf(ErrFmtBagSlot, domain.ErrInvalidSlot, slot, len(b.slots))
	}
	b.slots[slot] = it
	it.SetContainer(bag.GUID(), uint8(slot))
	return nil
}

// Take removes and returns the item in slot.
func (b *Bag) Take(slot int) *Item {
	it := b.Item(slot)
	if it == nil {
		return nil
	}
	b.slots[slot] = nil
	it.SetContainer(0, NullSlot)
	return it
}

// IsEmpty reports whether no slot holds an item.
func (b *Bag) IsEmpty() bool {
	return !slices.ContainsFunc(b.slots, func(it *Item) bool { return it != nil })
}

// FreeSlots counts the empty slots.
func (b *Bag) FreeSlots() int {
	n := 0
	for _, it := range b.slots {
		if it == nil {
			n++
		}
	}
	return n
}

// ==================== Azerite ====================

// AzeriteItem is a progression item whose level drives its item level.
type AzeriteItem struct {
	xp       uint64
	level    uint32
	maxLevel uint32
}

func (a *AzeriteItem) Kind() Kind { return KindAzerite }

func (a *AzeriteItem) XP() uint64    { return a.xp }
func (a *AzeriteItem) Level() uint32 { return a.level }

// SetProgress restores xp and level.
func (a *AzeriteItem) SetProgress(xp uint64, level uint32) {
	a.xp = xp
	a.level = max(level, 1)
}

// SetMaxLevel caps the effective level. Zero removes the cap.
func (a *AzeriteItem) SetMaxLevel(level uint32) { a.maxLevel = level }

// EffectiveLevel is the level used for item level computation.
func (a *AzeriteItem) EffectiveLevel() uint32 {
	if a.maxLevel != 0 && a.level > a.maxLevel {
		return a.maxLevel
	}
	return a.level
}

// AzeriteEmpoweredItem carries one selected power per tier.
type AzeriteEmpoweredItem struct {
	selected [MaxAzeriteEmpoweredTier]int32
}

func (a *AzeriteEmpoweredItem) Kind() Kind { return KindAzeriteEmpowered }

// SelectedPower returns the power chosen for tier, NoSelectedPower if none.
func (a *AzeriteEmpoweredItem) SelectedPower(tier int) int32 {
	if tier < 0 || tier >= MaxAzeriteEmpoweredTier {
		return NoSelectedPower
	}
	return a.selected[tier]
}

// SelectPower chooses the power of tier.
func (a *AzeriteEmpoweredItem) SelectPower(tier int, powerID int32) error {
	if tier < 0 || tier >= MaxAzeriteEmpoweredTier {
		return fmt.Errorf(ErrFmtInvalidTier, domain.ErrInvalidInput, tier)
	}
	a.selected[tier] = powerID
	return nil
}

// ClearSelectedPowers resets every tier.
func (a *AzeriteEmpoweredItem) ClearSelectedPowers() {
	a.selected = [MaxAzeriteEmpoweredTier]int32{}
}
