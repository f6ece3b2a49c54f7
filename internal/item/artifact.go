package item

import (
	"context"

	"github.com/samber/lo"

	"github.com/osse101/ItemForge_Go/internal/artifact"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

// IsArtifact reports whether the template is an artifact.
func (it *Item) IsArtifact() bool { return it.template.ArtifactID != 0 }

// GiveArtifactXP grants artifact experience. Categorised grants are scaled by
// the knowledge level carried on the source item (level 1 without one) and
// rounded; uncategorised grants are applied verbatim.
func (it *Item) GiveArtifactXP(ctx context.Context, owner Owner, amount uint64, source *Item, category domain.ArtifactCategory) {
	if owner == nil {
		return
	}
	if category != domain.ArtifactCategoryNone {
		var knowledge uint32 = 1
		if source != nil {
			if lvl := source.Modifier(domain.ModifierArtifactKnowledgeLevel); lvl != 0 {
				knowledge = lvl
			}
		}
		amount = artifact.KnowledgeXP(it.svc.tables(), amount, knowledge)
	}

	it.artifactXP += amount
	it.dirty.Mark(FieldArtifact)
	owner.Send(ctx, domain.ArtifactXpGain{Artifact: it.guid, Amount: amount})
	it.MarkChanged(ctx, owner)
}

// CheckArtifactRelicSlotUnlock applies the relic slot unlock bonus lists whose
// condition the owner meets.
func (it *Item) CheckArtifactRelicSlotUnlock(ctx context.Context, owner Owner) {
	if owner == nil || !it.IsArtifact() {
		return
	}
	it.AddBonuses(ctx, artifact.UnlockedBonusLists(it.svc.tables(), it.template.ArtifactID, owner)...)
}

// LoadArtifactData restores the persisted artifact state. Enchantments and
// gems must already be loaded: socketed relics contribute rank bonuses.
func (it *Item) LoadArtifactData(ctx context.Context, owner Owner, rec artifact.Record) {
	if !it.IsArtifact() {
		return
	}
	artifactID := it.template.ArtifactID

	it.artifactXP = rec.XP
	it.SetModifier(domain.ModifierArtifactAppearanceID, rec.AppearanceID)
	it.SetModifier(domain.ModifierArtifactTier, uint32(rec.Tier))

	appearance, ok := lo.Find(it.svc.tables().ArtifactAppearances(artifactID), func(a domain.ArtifactAppearance) bool {
		return a.ID == rec.AppearanceID
	})
	if ok {
		it.setAppearanceModID(appearance.ItemAppearanceModifierID)
	} else if rec.AppearanceID != 0 {
		logger.FromContext(ctx).Warn(LogMsgUnknownAppearance, "item_guid", it.guid, "appearance_id", rec.AppearanceID)
	}

	sockets := artifact.Sockets{RelicTypes: it.relicTypes()}
	for i := range sockets.EnchantIDs {
		sockets.EnchantIDs[i] = it.enchantments[domain.EnchantmentSlotSocket1+domain.EnchantmentSlot(i)].ID
	}
	var checker artifact.ConditionChecker
	if owner != nil {
		checker = owner
	}
	it.powers.LoadArtifactData(ctx, artifactID, rec, sockets, checker)
	it.dirty.Mark(FieldArtifact)

	it.CheckArtifactRelicSlotUnlock(ctx, owner)
}

// ArtifactRecord snapshots the artifact state for persistence.
func (it *Item) ArtifactRecord() artifact.Record {
	return artifact.Record{
		XP:           it.artifactXP,
		AppearanceID: it.Modifier(domain.ModifierArtifactAppearanceID),
		Tier:         uint8(it.Modifier(domain.ModifierArtifactTier)),
		Powers:       it.powers.Powers(),
	}
}
