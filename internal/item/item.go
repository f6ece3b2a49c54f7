package item

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/ItemForge_Go/internal/artifact"
	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// Enchantment is the state of one enchantment slot.
type Enchantment struct {
	ID       uint32 `json:"id" msgpack:"i"`
	Duration uint32 `json:"duration" msgpack:"d"`
	Charges  int32  `json:"charges" msgpack:"c"`
}

// Gem is the state of one gem socket. A zero ItemID is an empty socket.
type Gem struct {
	ItemID       uint32                          `json:"item_id" msgpack:"i"`
	BonusListIDs [domain.MaxGemBonusLists]uint32 `json:"bonus_list_ids" msgpack:"b"`
	Context      domain.ItemContext              `json:"context" msgpack:"x"`
	ScalingLevel uint32                          `json:"scaling_level" msgpack:"s"`
}

// Lists returns the non-zero bonus list ids of the gem.
func (g Gem) Lists() []uint32 {
	var out []uint32
	for _, id := range g.BonusListIDs {
		if id != 0 {
			out = append(out, id)
		}
	}
	return out
}

// Item is a live item instance. It is owned by one shard goroutine at a time
// and is not safe for concurrent use.
type Item struct {
	svc      *Services
	guid     domain.GUID
	template *domain.ItemTemplate

	owner domain.GUID
	bag   domain.GUID
	slot  uint8

	count         uint32
	durability    uint32
	maxDurability uint32
	expiration    uint32
	spellCharges  [domain.MaxItemSpells]int32
	flags         uint32
	creator       domain.GUID
	giftCreator   domain.GUID
	context       domain.ItemContext
	text          string

	createPlayedTime uint32
	lastPlayedUpdate time.Time

	enchantments [domain.MaxEnchantmentSlots]Enchantment
	gems         [domain.MaxGemSockets]Gem
	modifiers    map[domain.ItemModifier]uint32

	bonusListIDs      []uint32
	randomBonusListID uint32
	appearanceModID   uint32
	bonus             *bonus.Data

	artifactXP uint64
	powers     *artifact.PowerTable

	refundRecipient  domain.GUID
	paidMoney        uint64
	paidExtendedCost uint32

	loot          *domain.ContainerLoot
	lootGenerated bool

	variant Variant

	state     domain.ItemUpdateState
	queuePos  int
	discarded bool
	dirty     DirtyTracker
}

func newItem(svc *Services, guid domain.GUID, tmpl *domain.ItemTemplate) *Item {
	it := &Item{
		svc:       svc,
		guid:      guid,
		template:  tmpl,
		slot:      NullSlot,
		modifiers: make(map[domain.ItemModifier]uint32),
		bonus:     svc.Resolver.Base(tmpl),
		powers:    artifact.NewPowerTable(svc.tables()),
		state:     domain.ItemNew,
		queuePos:  -1,
	}
	it.variant = newVariant(svc, tmpl)
	return it
}

// Create builds a fresh item of the given template. The item starts New and
// unqueued; callers mark it changed once it is placed.
func Create(ctx context.Context, svc *Services, guid domain.GUID, tmpl *domain.ItemTemplate, itemCtx domain.ItemContext, owner Owner) (*Item, error) {
	if tmpl == nil {
		return nil, fmt.Errorf(ErrFmtTemplateNotFound, domain.ErrTemplateNotFound, 0, guid)
	}

	it := newItem(svc, guid, tmpl)
	if owner != nil {
		it.owner = owner.GUID()
	}
	it.count = 1
	it.maxDurability = tmpl.MaxDurability
	it.durability = tmpl.MaxDurability
	for i := range it.spellCharges {
		it.spellCharges[i] = tmpl.SpellCharge(i)
	}
	it.expiration = tmpl.Duration
	it.lastPlayedUpdate = svc.now()
	it.context = itemCtx

	if tmpl.ArtifactID != 0 {
		it.powers.Init(tmpl.ArtifactID, 0)
		var checker artifact.ConditionChecker
		if owner != nil {
			checker = owner
		}
		if a, ok := artifact.FirstAppearance(svc.tables(), tmpl.ArtifactID, checker); ok {
			it.SetModifier(domain.ModifierArtifactAppearanceID, a.ID)
			it.setAppearanceModID(a.ItemAppearanceModifierID)
		}
		it.CheckArtifactRelicSlotUnlock(ctx, owner)
	}
	return it, nil
}

// Clone creates a copy of the item for a stack split. Refund and trade
// eligibility are not carried over. The random bonus list follows only when
// the copy goes to a player.
func (it *Item) Clone(ctx context.Context, guid domain.GUID, count uint32, owner Owner) (*Item, error) {
	if count < 1 {
		return nil, fmt.Errorf(ErrFmtInvalidCount, domain.ErrInvalidInput, count)
	}

	c, err := Create(ctx, it.svc, guid, it.template, it.context, owner)
	if err != nil {
		return nil, err
	}
	c.count = min(count, it.MaxStackCount())
	c.creator = it.creator
	c.giftCreator = it.giftCreator
	c.flags = it.flags &^ (domain.ItemFieldFlagRefundable | domain.ItemFieldFlagBopTradeable)
	c.expiration = it.expiration
	c.SetBonuses(ctx, it.bonusListIDs)
	c.setAppearanceModID(it.appearanceModID)
	if owner != nil {
		c.SetRandomBonusList(ctx, it.randomBonusListID)
	}
	return c, nil
}

// ==================== Identity and placement ====================

func (it *Item) GUID() domain.GUID              { return it.guid }
func (it *Item) Template() *domain.ItemTemplate { return it.template }
func (it *Item) Entry() uint32                  { return it.template.ID }
func (it *Item) OwnerGUID() domain.GUID         { return it.owner }
func (it *Item) BagGUID() domain.GUID           { return it.bag }
func (it *Item) Slot() uint8                    { return it.slot }
func (it *Item) State() domain.ItemUpdateState  { return it.state }
func (it *Item) QueuePos() int                  { return it.queuePos }
func (it *Item) Variant() Variant               { return it.variant }
func (it *Item) Bonus() *bonus.Data             { return it.bonus }
func (it *Item) Quality() domain.ItemQuality    { return it.bonus.Quality }
func (it *Item) Bonding() domain.BondingType    { return it.bonus.Bonding }
func (it *Item) Context() domain.ItemContext    { return it.context }
func (it *Item) Creator() domain.GUID           { return it.creator }
func (it *Item) GiftCreator() domain.GUID       { return it.giftCreator }
func (it *Item) Text() string                   { return it.text }
func (it *Item) AppearanceModID() uint32        { return it.appearanceModID }
func (it *Item) RandomBonusListID() uint32      { return it.randomBonusListID }
func (it *Item) BonusListIDs() []uint32         { return slices.Clone(it.bonusListIDs) }
func (it *Item) CreatePlayedTime() uint32       { return it.createPlayedTime }
func (it *Item) ArtifactXP() uint64             { return it.artifactXP }

// ArtifactPowers returns the live power table. It is empty for non-artifacts.
func (it *Item) ArtifactPowers() *artifact.PowerTable { return it.powers }

// IsEquipped reports whether the item sits in an equipment slot of its owner.
func (it *Item) IsEquipped() bool {
	return it.bag.IsEmpty() && it.slot < EquipmentSlotEnd
}

// SetContainer records where the item is stored. An empty bag means the
// owner's own inventory or equipment.
func (it *Item) SetContainer(bag domain.GUID, slot uint8) {
	it.bag = bag
	it.slot = slot
	it.dirty.Mark(FieldContainer)
}

// SetCreator records the crafting player.
func (it *Item) SetCreator(guid domain.GUID) {
	it.creator = guid
	it.dirty.Mark(FieldCreator)
}

// SetGiftCreator records the player who wrapped the item.
func (it *Item) SetGiftCreator(guid domain.GUID) {
	it.giftCreator = guid
	it.dirty.Mark(FieldCreator)
}

// SetText sets the readable text of the item.
func (it *Item) SetText(text string) {
	it.text = text
	it.dirty.Mark(FieldText)
}

func (it *Item) setAppearanceModID(id uint32) {
	it.appearanceModID = id
	it.dirty.Mark(FieldAppearance)
}

// ==================== Stack and durability ====================

// Count returns the stack size.
func (it *Item) Count() uint32 { return it.count }

// MaxStackCount returns the template stack limit, at least 1.
func (it *Item) MaxStackCount() uint32 { return max(it.template.MaxStackSize, 1) }

// SetCount sets the stack size, clamped to the template limit. An open trade
// that offers the item is refreshed.
func (it *Item) SetCount(owner Owner, count uint32) {
	it.count = min(count, it.MaxStackCount())
	it.dirty.Mark(FieldCount)

	if owner == nil {
		return
	}
	if trade := owner.TradeData(); trade != nil {
		trade.RefreshItem(it.guid)
	}
}

func (it *Item) Durability() uint32    { return it.durability }
func (it *Item) MaxDurability() uint32 { return it.maxDurability }

// SetDurability sets the current durability, clamped to the maximum.
func (it *Item) SetDurability(v uint32) {
	it.durability = min(v, it.maxDurability)
	it.dirty.Mark(FieldDurability)
}

// SpellCharges returns the charges of spell slot i.
func (it *Item) SpellCharges(i int) int32 {
	if i < 0 || i >= len(it.spellCharges) {
		return 0
	}
	return it.spellCharges[i]
}

// SetSpellCharges sets the charges of spell slot i. Out of range slots are ignored.
func (it *Item) SetSpellCharges(i int, charges int32) {
	if i < 0 || i >= len(it.spellCharges) {
		return
	}
	it.spellCharges[i] = charges
	it.dirty.Mark(FieldSpellCharges)
}

// ==================== Flags ====================

func (it *Item) Flags() uint32 { return it.flags }

// HasFlag reports whether any bit of f is set.
func (it *Item) HasFlag(f uint32) bool { return it.flags&f != 0 }

func (it *Item) SetFlag(f uint32) {
	it.flags |= f
	it.dirty.Mark(FieldFlags)
}

func (it *Item) RemoveFlag(f uint32) {
	it.flags &^= f
	it.dirty.Mark(FieldFlags)
}

func (it *Item) IsSoulBound() bool { return it.HasFlag(domain.ItemFieldFlagSoulbound) }

// SetBinding binds or unbinds the item.
func (it *Item) SetBinding(bound bool) {
	if bound {
		it.SetFlag(domain.ItemFieldFlagSoulbound)
	} else {
		it.RemoveFlag(domain.ItemFieldFlagSoulbound)
	}
}

// ==================== Loot ====================

// Loot returns the pending loot of an openable item, or nil.
func (it *Item) Loot() *domain.ContainerLoot { return it.loot }

// LootGenerated reports whether unresolved loot is attached.
func (it *Item) LootGenerated() bool { return it.lootGenerated }

// SetLoot attaches generated loot. A nil or fully looted value clears it.
func (it *Item) SetLoot(loot *domain.ContainerLoot) {
	if loot.IsLooted() {
		it.loot = nil
		it.lootGenerated = false
	} else {
		it.loot = loot
		it.lootGenerated = true
	}
	it.dirty.Mark(FieldLoot)
}
