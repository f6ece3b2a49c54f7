package item

import (
	"fmt"
	"math/bits"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Modifier returns the value of m, 0 when unset.
func (it *Item) Modifier(m domain.ItemModifier) uint32 {
	return it.modifiers[m]
}

// SetModifier sets m to value. Zero removes the modifier.
func (it *Item) SetModifier(m domain.ItemModifier, value uint32) {
	if m >= domain.MaxItemModifiers {
		return
	}
	if value == 0 {
		if _, ok := it.modifiers[m]; !ok {
			return
		}
		delete(it.modifiers, m)
	} else {
		it.modifiers[m] = value
	}
	it.dirty.Mark(FieldModifiers)
}

// setModifierIfNonZero is the load path setter: stored zeroes leave the
// modifier absent.
func (it *Item) setModifierIfNonZero(m domain.ItemModifier, value uint32) {
	if value != 0 {
		it.SetModifier(m, value)
	}
}

// Modifiers returns a copy of the set modifiers.
func (it *Item) Modifiers() map[domain.ItemModifier]uint32 {
	out := make(map[domain.ItemModifier]uint32, len(it.modifiers))
	for m, v := range it.modifiers {
		out[m] = v
	}
	return out
}

// PackedModifiers derives the wire form of the modifier set: a presence mask
// and the values of the set modifiers in ascending modifier order.
func (it *Item) PackedModifiers() (mask uint32, values []uint32) {
	for m := range domain.MaxItemModifiers {
		if v, ok := it.modifiers[m]; ok {
			mask |= 1 << m
			values = append(values, v)
		}
	}
	return mask, values
}

// PackedIndex returns the position of m in the values of a packed set.
func PackedIndex(mask uint32, m domain.ItemModifier) int {
	return bits.OnesCount32(mask & (1<<m - 1))
}

// UnpackModifiers rebuilds a modifier set from its packed form.
func UnpackModifiers(mask uint32, values []uint32) (map[domain.ItemModifier]uint32, error) {
	if bits.OnesCount32(mask) != len(values) {
		return nil, fmt.Errorf(ErrFmtModifierSnapshot, domain.ErrInvalidInput, len(values), mask)
	}
	out := make(map[domain.ItemModifier]uint32, len(values))
	for m := range domain.MaxItemModifiers {
		if mask&(1<<m) != 0 {
			out[m] = values[PackedIndex(mask, m)]
		}
	}
	return out, nil
}

// ModifierSnapshot is the packed modifier set as exchanged with delta sync
// consumers.
type ModifierSnapshot struct {
	Mask   uint32   `msgpack:"m"`
	Values []uint32 `msgpack:"v"`
}

// EncodeModifiers serialises the packed modifier set.
func (it *Item) EncodeModifiers() ([]byte, error) {
	mask, values := it.PackedModifiers()
	return msgpack.Marshal(ModifierSnapshot{Mask: mask, Values: values})
}

// ApplyModifierSnapshot replaces the modifier set with an encoded snapshot.
func (it *Item) ApplyModifierSnapshot(data []byte) error {
	var snap ModifierSnapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeSnapshot, err)
	}
	mods, err := UnpackModifiers(snap.Mask, snap.Values)
	if err != nil {
		return err
	}
	it.modifiers = mods
	it.dirty.Mark(FieldModifiers)
	return nil
}

// Specialization specific modifiers, indexed by the active specialization.
var (
	transmogBySpec = [...]domain.ItemModifier{
		domain.ModifierTransmogAppearanceSpec1,
		domain.ModifierTransmogAppearanceSpec2,
		domain.ModifierTransmogAppearanceSpec3,
		domain.ModifierTransmogAppearanceSpec4,
	}
	illusionBySpec = [...]domain.ItemModifier{
		domain.ModifierEnchantIllusionSpec1,
		domain.ModifierEnchantIllusionSpec2,
		domain.ModifierEnchantIllusionSpec3,
		domain.ModifierEnchantIllusionSpec4,
	}
)

// visibleModifier prefers the owner's specialization modifier when any
// specialization value of the family is set.
func (it *Item) visibleModifier(owner Owner, all domain.ItemModifier, bySpec []domain.ItemModifier) uint32 {
	m := all
	if owner != nil {
		for _, spec := range bySpec {
			if it.Modifier(spec) != 0 {
				if idx := int(owner.ActiveSpecIndex()); idx < len(bySpec) {
					m = bySpec[idx]
				}
				break
			}
		}
	}
	return it.Modifier(m)
}

// VisibleTransmog returns the transmog appearance shown for the owner's active specialization.
func (it *Item) VisibleTransmog(owner Owner) uint32 {
	return it.visibleModifier(owner, domain.ModifierTransmogAppearanceAllSpecs, transmogBySpec[:])
}

// VisibleEnchantment returns the illusion shown for the owner's active specialization,
// falling back to the permanent enchantment.
func (it *Item) VisibleEnchantment(owner Owner) uint32 {
	if v := it.visibleModifier(owner, domain.ModifierEnchantIllusionAllSpecs, illusionBySpec[:]); v != 0 {
		return v
	}
	return it.enchantments[domain.EnchantmentSlotPermanent].ID
}
