package item

import (
	"context"
	"fmt"

	"github.com/osse101/ItemForge_Go/internal/artifact"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Enchantment returns the state of slot, zero for out of range slots.
func (it *Item) Enchantment(slot domain.EnchantmentSlot) Enchantment {
	if slot >= domain.MaxEnchantmentSlots {
		return Enchantment{}
	}
	return it.enchantments[slot]
}

// Enchantments returns a copy of every enchantment slot.
func (it *Item) Enchantments() [domain.MaxEnchantmentSlots]Enchantment {
	return it.enchantments
}

// SetEnchantment replaces the enchantment in slot. Reapplying an identical
// enchantment is a no-op. Visible slots are announced to the owner, and on
// artifacts the rank bonuses of the old enchantment are removed before the
// new ones are applied.
func (it *Item) SetEnchantment(ctx context.Context, owner Owner, slot domain.EnchantmentSlot, id, duration uint32, charges int32, caster domain.GUID) {
	if slot >= domain.MaxEnchantmentSlots {
		return
	}
	cur := it.enchantments[slot]
	if cur.ID == id && cur.Duration == duration && cur.Charges == charges {
		return
	}

	if owner != nil && slot < domain.MaxInspectedEnchantmentSlot {
		if cur.ID != 0 {
			owner.Send(ctx, it.enchantmentLog(cur.ID, slot, 0))
		}
		if id != 0 {
			owner.Send(ctx, it.enchantmentLog(id, slot, caster))
		}
	}

	it.applyArtifactEnchant(ctx, owner, slot, cur.ID, false)
	it.applyArtifactEnchant(ctx, owner, slot, id, true)

	it.enchantments[slot] = Enchantment{ID: id, Duration: duration, Charges: charges}
	it.dirty.Mark(FieldEnchantments)
	it.MarkChanged(ctx, owner)
}

// SetEnchantmentDuration updates the remaining duration of slot.
func (it *Item) SetEnchantmentDuration(ctx context.Context, owner Owner, slot domain.EnchantmentSlot, duration uint32) {
	if slot >= domain.MaxEnchantmentSlots || it.enchantments[slot].Duration == duration {
		return
	}
	it.enchantments[slot].Duration = duration
	it.dirty.Mark(FieldEnchantments)
	it.MarkChanged(ctx, owner)
}

// SetEnchantmentCharges updates the remaining charges of slot.
func (it *Item) SetEnchantmentCharges(ctx context.Context, owner Owner, slot domain.EnchantmentSlot, charges int32) {
	if slot >= domain.MaxEnchantmentSlots || it.enchantments[slot].Charges == charges {
		return
	}
	it.enchantments[slot].Charges = charges
	it.dirty.Mark(FieldEnchantments)
	it.MarkChanged(ctx, owner)
}

// ClearEnchantment empties slot, removing any artifact rank bonuses it granted.
func (it *Item) ClearEnchantment(ctx context.Context, owner Owner, slot domain.EnchantmentSlot) {
	if slot >= domain.MaxEnchantmentSlots || it.enchantments[slot].ID == 0 {
		return
	}
	it.applyArtifactEnchant(ctx, owner, slot, it.enchantments[slot].ID, false)
	it.enchantments[slot] = Enchantment{}
	it.dirty.Mark(FieldEnchantments)
	it.MarkChanged(ctx, owner)
}

func (it *Item) enchantmentLog(id uint32, slot domain.EnchantmentSlot, caster domain.GUID) domain.EnchantmentLog {
	return domain.EnchantmentLog{
		Owner:       it.owner,
		Caster:      caster,
		Item:        it.guid,
		ItemID:      it.Entry(),
		Enchantment: id,
		EnchantSlot: uint32(slot),
	}
}

func (it *Item) relicTypes() [domain.MaxRelicSockets]int32 {
	var out [domain.MaxRelicSockets]int32
	copy(out[:], it.bonus.GemRelicType[:domain.MaxRelicSockets])
	return out
}

func (it *Item) applyArtifactEnchant(ctx context.Context, owner Owner, slot domain.EnchantmentSlot, id uint32, apply bool) {
	if it.template.ArtifactID == 0 || id == 0 {
		return
	}
	ec := artifact.EnchantContext{
		Slot:          slot,
		GemRelicTypes: it.relicTypes(),
	}
	if owner != nil {
		ec.Owner = owner
		ec.Equipped = it.IsEquipped()
	}
	it.powers.ApplyEnchantBonuses(ctx, ec, id, apply)
	it.dirty.Mark(FieldArtifact)
}

// ==================== Gems ====================

// Gem returns the socket state of slot.
func (it *Item) Gem(slot int) Gem {
	if slot < 0 || slot >= domain.MaxGemSockets {
		return Gem{}
	}
	return it.gems[slot]
}

// SetGem sockets gem into slot and recomputes the slot's item level bonus and
// relic type. An empty gem clears both.
func (it *Item) SetGem(ctx context.Context, slot int, gem Gem, scalingLevel uint32) error {
	if slot < 0 || slot >= domain.MaxGemSockets {
		return fmt.Errorf("%w: gem socket %d", domain.ErrInvalidSlot, slot)
	}

	gem.ScalingLevel = scalingLevel
	it.bonus.GemItemLevelBonus[slot] = 0
	it.bonus.GemRelicType[slot] = -1
	if gem.ItemID != 0 {
		b := it.svc.Resolver.GemBonus(ctx, gem.ItemID, gem.Lists(), scalingLevel)
		it.bonus.GemItemLevelBonus[slot] = b.ItemLevel
		it.bonus.GemRelicType[slot] = b.RelicType
	}
	it.gems[slot] = gem
	it.dirty.Mark(FieldGems)
	return nil
}

// GemsFitSockets reports whether every colored socket holds a gem whose color
// the socket accepts. Empty colored sockets do not fit.
func (it *Item) GemsFitSockets() bool {
	for i, socket := range it.bonus.SocketColors {
		if socket == domain.SocketColorNone {
			continue
		}
		if !socket.Accepts(it.gemColor(it.gems[i].ItemID)) {
			return false
		}
	}
	return true
}

func (it *Item) gemColor(gemItemID uint32) domain.SocketColor {
	if gemItemID == 0 {
		return domain.SocketColorNone
	}
	tmpl, ok := it.svc.template(gemItemID)
	if !ok {
		return domain.SocketColorNone
	}
	props, ok := it.svc.tables().GemProperties(tmpl.GemPropertiesID)
	if !ok {
		return domain.SocketColorNone
	}
	return props.Type
}

// SendSocketResult confirms a socketing operation to the owner.
func (it *Item) SendSocketResult(ctx context.Context, owner Owner) {
	if owner == nil {
		return
	}
	owner.Send(ctx, domain.SocketGemsResult{Item: it.guid})
}
