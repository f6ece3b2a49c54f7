package item

import (
	"fmt"
	"math/bits"

	"github.com/vmihailenco/msgpack/v5"
)

// Field is a group of item fields that change together on the wire.
type Field uint32

const (
	FieldOwner Field = 1 << iota
	FieldContainer
	FieldCount
	FieldDurability
	FieldExpiration
	FieldSpellCharges
	FieldFlags
	FieldCreator
	FieldText
	FieldPlayedTime
	FieldEnchantments
	FieldGems
	FieldModifiers
	FieldBonusLists
	FieldAppearance
	FieldArtifact
	FieldLoot
)

var fieldNames = map[Field]string{
	FieldOwner:        "owner",
	FieldContainer:    "container",
	FieldCount:        "count",
	FieldDurability:   "durability",
	FieldExpiration:   "expiration",
	FieldSpellCharges: "spell_charges",
	FieldFlags:        "flags",
	FieldCreator:      "creator",
	FieldText:         "text",
	FieldPlayedTime:   "played_time",
	FieldEnchantments: "enchantments",
	FieldGems:         "gems",
	FieldModifiers:    "modifiers",
	FieldBonusLists:   "bonus_lists",
	FieldAppearance:   "appearance",
	FieldArtifact:     "artifact",
	FieldLoot:         "loot",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%#x)", uint32(f))
}

// DirtyTracker records which field groups changed since the last Diff. Writes
// within one tick coalesce.
type DirtyTracker struct {
	mask Field
}

func (d *DirtyTracker) Mark(f Field)       { d.mask |= f }
func (d *DirtyTracker) Dirty(f Field) bool { return d.mask&f != 0 }
func (d *DirtyTracker) Any() bool          { return d.mask != 0 }
func (d *DirtyTracker) Reset()             { d.mask = 0 }

// Fields returns the dirty groups in ascending bit order.
func (d *DirtyTracker) Fields() []Field {
	out := make([]Field, 0, bits.OnesCount32(uint32(d.mask)))
	for m := uint32(d.mask); m != 0; m &= m - 1 {
		out = append(out, Field(m&-m))
	}
	return out
}

// Dirty exposes the item's change tracker.
func (it *Item) Dirty() *DirtyTracker { return &it.dirty }

// Diff encodes the current values of every dirty field group and clears the
// tracker. It returns nil when nothing changed.
func (it *Item) Diff() ([]byte, error) {
	if !it.dirty.Any() {
		return nil, nil
	}

	diff := make(map[string]any, bits.OnesCount32(uint32(it.dirty.mask)))
	for _, f := range it.dirty.Fields() {
		diff[f.String()] = it.fieldValue(f)
	}
	out, err := msgpack.Marshal(diff)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeDiff, err)
	}
	it.dirty.Reset()
	return out, nil
}

func (it *Item) fieldValue(f Field) any {
	switch f {
	case FieldOwner:
		return uint64(it.owner)
	case FieldContainer:
		return []uint64{uint64(it.bag), uint64(it.slot)}
	case FieldCount:
		return it.count
	case FieldDurability:
		return []uint32{it.durability, it.maxDurability}
	case FieldExpiration:
		return it.expiration
	case FieldSpellCharges:
		return it.spellCharges
	case FieldFlags:
		return it.flags
	case FieldCreator:
		return []uint64{uint64(it.creator), uint64(it.giftCreator)}
	case FieldText:
		return it.text
	case FieldPlayedTime:
		return it.createPlayedTime
	case FieldEnchantments:
		return it.enchantments
	case FieldGems:
		return it.gems
	case FieldModifiers:
		mask, values := it.PackedModifiers()
		return ModifierSnapshot{Mask: mask, Values: values}
	case FieldBonusLists:
		return it.bonusListIDs
	case FieldAppearance:
		return it.appearanceModID
	case FieldArtifact:
		return it.ArtifactRecord()
	case FieldLoot:
		return it.lootGenerated
	default:
		return nil
	}
}
