package item

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// GemRecord is the persisted form of one occupied gem socket.
type GemRecord struct {
	ItemID       uint32
	BonusListIDs string
	Context      domain.ItemContext
	ScalingLevel uint32
}

// Record is the fixed column form of an item as stored in the core table
// joined with its gem, transmog and modifier child rows. Token columns hold
// space separated integers.
type Record struct {
	GUID              domain.GUID
	Entry             uint32
	Owner             domain.GUID
	Creator           domain.GUID
	GiftCreator       domain.GUID
	Count             uint32
	Duration          uint32
	Charges           string
	Flags             uint32
	Enchantments      string
	RandomBonusListID uint32
	Durability        uint32
	CreatePlayedTime  uint32
	Text              string

	BattlePetSpeciesID uint32
	BattlePetBreedData uint32
	BattlePetLevel     uint32
	BattlePetDisplayID uint32

	Context      domain.ItemContext
	BonusListIDs string

	Transmog [len(domain.TransmogModifiers)]uint32
	Gems     [domain.MaxGemSockets]GemRecord
	Generic  [len(domain.GenericModifiers)]uint32
}

// HasTransmog reports whether any transmog modifier is set.
func (r *Record) HasTransmog() bool {
	return lo.SomeBy(r.Transmog[:], func(v uint32) bool { return v != 0 })
}

// HasGenericModifiers reports whether any generic modifier is set.
func (r *Record) HasGenericModifiers() bool {
	return lo.SomeBy(r.Generic[:], func(v uint32) bool { return v != 0 })
}

// ToRecord snapshots the persisted columns of the item.
func (it *Item) ToRecord() Record {
	rec := Record{
		GUID:              it.guid,
		Entry:             it.Entry(),
		Owner:             it.owner,
		Creator:           it.creator,
		GiftCreator:       it.giftCreator,
		Count:             it.count,
		Duration:          it.expiration,
		Charges:           formatTokens(it.spellCharges[:]),
		Flags:             it.flags,
		Enchantments:      formatEnchantments(it.enchantments[:]),
		RandomBonusListID: it.randomBonusListID,
		Durability:        it.durability,
		CreatePlayedTime:  it.createPlayedTime,
		Text:              it.text,

		BattlePetSpeciesID: it.Modifier(domain.ModifierBattlePetSpeciesID),
		BattlePetBreedData: it.Modifier(domain.ModifierBattlePetBreedData),
		BattlePetLevel:     it.Modifier(domain.ModifierBattlePetLevel),
		BattlePetDisplayID: it.Modifier(domain.ModifierBattlePetDisplayID),

		Context:      it.context,
		BonusListIDs: formatTokens(it.bonusListIDs),
	}
	for i, m := range domain.TransmogModifiers {
		rec.Transmog[i] = it.Modifier(m)
	}
	for i, m := range domain.GenericModifiers {
		rec.Generic[i] = it.Modifier(m)
	}
	for slot, g := range it.gems {
		if g.ItemID == 0 {
			continue
		}
		rec.Gems[slot] = GemRecord{
			ItemID:       g.ItemID,
			BonusListIDs: formatTokens(g.Lists()),
			Context:      g.Context,
			ScalingLevel: g.ScalingLevel,
		}
	}
	return rec
}

// FromRecord rebuilds an item from its stored columns. Stored values win
// over template defaults except where the template must prevail: a changed
// template duration resets the expiration, durability of an unwrapped item is
// clamped to the maximum and a soulbound flag on an item that no longer binds is cleared.
// Each correction sets needSave so the caller can write the corrected
// columns back. Enchantments are applied last so relic and gem data are in
// place. owner, when set, overrides the stored owner. The item is returned
// Unchanged.
func FromRecord(ctx context.Context, svc *Services, rec Record, owner domain.GUID) (it *Item, needSave bool, err error) {
	log := logger.FromContext(ctx).With("item_guid", rec.GUID)

	tmpl, ok := svc.template(rec.Entry)
	if !ok {
		log.Warn(LogMsgUnknownTemplate, "item_entry", rec.Entry)
		metrics.IntegrityWarnings.WithLabelValues(metrics.IntegrityKindTemplate).Inc()
		return nil, false, fmt.Errorf(ErrFmtTemplateNotFound, domain.ErrTemplateNotFound, rec.Entry, rec.GUID)
	}

	it = newItem(svc, rec.GUID, tmpl)
	it.owner = rec.Owner
	if !owner.IsEmpty() {
		it.owner = owner
	}
	it.creator = rec.Creator
	it.giftCreator = rec.GiftCreator
	it.count = min(max(rec.Count, 1), it.MaxStackCount())

	it.expiration = rec.Duration
	if tmpl.Duration != rec.Duration {
		log.Debug(LogMsgExpirationCorrected, "stored", rec.Duration, "template", tmpl.Duration)
		it.expiration = tmpl.Duration
		needSave = true
	}

	if charges, ok := parseTokens(rec.Charges); ok && len(charges) == domain.MaxItemSpells {
		for i, c := range charges {
			it.spellCharges[i] = int32(c)
		}
	} else if rec.Charges != "" {
		log.Warn(LogMsgMalformedTokens, "field", "charges")
	}

	it.flags = rec.Flags

	it.maxDurability = tmpl.MaxDurability
	it.durability = rec.Durability
	if it.durability > it.maxDurability && !it.HasFlag(domain.ItemFieldFlagWrapped) {
		log.Debug(LogMsgDurabilityClamped, "stored", rec.Durability, "max", it.maxDurability)
		it.durability = it.maxDurability
		needSave = true
	}

	it.createPlayedTime = rec.CreatePlayedTime
	it.text = rec.Text

	it.setModifierIfNonZero(domain.ModifierBattlePetSpeciesID, rec.BattlePetSpeciesID)
	it.setModifierIfNonZero(domain.ModifierBattlePetBreedData, rec.BattlePetBreedData)
	it.setModifierIfNonZero(domain.ModifierBattlePetLevel, rec.BattlePetLevel)
	it.setModifierIfNonZero(domain.ModifierBattlePetDisplayID, rec.BattlePetDisplayID)

	it.context = rec.Context
	it.SetBonuses(ctx, parseListIDs(rec.BonusListIDs))

	for i, m := range domain.TransmogModifiers {
		it.setModifierIfNonZero(m, rec.Transmog[i])
	}

	for slot, g := range rec.Gems {
		if g.ItemID == 0 {
			continue
		}
		gem := Gem{ItemID: g.ItemID, Context: g.Context}
		copy(gem.BonusListIDs[:], parseListIDs(g.BonusListIDs))
		_ = it.SetGem(ctx, slot, gem, g.ScalingLevel)
	}

	for i, m := range domain.GenericModifiers {
		it.setModifierIfNonZero(m, rec.Generic[i])
	}

	if enchants, ok := parseTokens(rec.Enchantments); ok &&
		len(enchants) == int(domain.MaxEnchantmentSlots)*domain.EnchantmentTokenFields {
		for slot := range it.enchantments {
			base := slot * domain.EnchantmentTokenFields
			it.enchantments[slot] = Enchantment{
				ID:       uint32(enchants[base]),
				Duration: uint32(enchants[base+1]),
				Charges:  int32(enchants[base+2]),
			}
		}
	} else if rec.Enchantments != "" {
		log.Warn(LogMsgMalformedTokens, "field", "enchantments")
	}

	it.randomBonusListID = rec.RandomBonusListID

	if it.IsSoulBound() && it.Bonding() == domain.BondingNone {
		log.Debug(LogMsgSoulboundCleared)
		it.flags &^= domain.ItemFieldFlagSoulbound
		needSave = true
	}

	it.lastPlayedUpdate = svc.now()
	it.MarkUnchanged()
	it.dirty.Reset()
	return it, needSave, nil
}

// ==================== Token strings ====================

type integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

func formatTokens[T integer](vals []T) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}

func formatEnchantments(slots []Enchantment) string {
	vals := make([]int64, 0, len(slots)*domain.EnchantmentTokenFields)
	for _, e := range slots {
		vals = append(vals, int64(e.ID), int64(e.Duration), int64(e.Charges))
	}
	return formatTokens(vals)
}

// FormatListIDs renders bonus list ids as a token string.
func FormatListIDs(ids []uint32) string { return formatTokens(ids) }

// ParseListIDs reads a bonus list token string. Malformed and zero tokens are
// skipped.
func ParseListIDs(s string) []uint32 { return parseListIDs(s) }

// parseTokens reads every token of s. Any malformed token invalidates the
// whole string.
func parseTokens(s string) ([]int64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, false
	}
	vals := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// parseListIDs reads bonus list ids, skipping malformed and zero tokens.
func parseListIDs(s string) []uint32 {
	return lo.FilterMap(strings.Fields(s), func(f string, _ int) (uint32, bool) {
		v, err := strconv.ParseUint(f, 10, 32)
		return uint32(v), err == nil && v != 0
	})
}
