package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/catalog"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/item"
)

const (
	tmplSword    = 1
	tmplPotion   = 2
	tmplArtifact = 3
	tmplGem      = 4
	tmplBox      = 5

	listItemLevel5 = 20

	testArtifact = 1
	powerFirst   = 100
	powerPlain   = 101
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T) *item.Services {
	t.Helper()

	templates := catalog.TemplateFile{Templates: []domain.ItemTemplate{
		{
			ID: tmplSword, Name: "Longsword", Class: domain.ItemClassWeapon, InventoryType: domain.InventoryTypeWeapon,
			Quality: domain.QualityUncommon, BaseItemLevel: 100, MaxStackSize: 1, MaxDurability: 50,
			Bonding: domain.BondingOnEquip,
			SocketColors: []domain.SocketColor{domain.SocketColorRed, domain.SocketColorPrismatic},
		},
		{
			ID: tmplPotion, Name: "Healing Potion", Class: domain.ItemClassConsumable,
			BaseItemLevel: 10, MaxStackSize: 20, Duration: 3600,
		},
		{
			ID: tmplArtifact, Name: "Ashbringer", Class: domain.ItemClassWeapon, InventoryType: domain.InventoryTypeWeapon,
			Quality: domain.QualityArtifact, BaseItemLevel: 750, MaxStackSize: 1, MaxDurability: 100,
			ArtifactID: testArtifact,
		},
		{ID: tmplGem, Name: "Ruby", Class: domain.ItemClassGem, BaseItemLevel: 10, MaxStackSize: 20},
		{ID: tmplBox, Name: "Lockbox", Class: domain.ItemClassMiscellaneous, MaxStackSize: 1},
	}}

	balance := catalog.BalanceFile{
		BonusLists: []domain.ItemBonusList{
			{ID: listItemLevel5, Entries: []domain.ItemBonusEntry{{Type: domain.BonusItemLevel, Values: [4]int32{5}}}},
		},
		ArtifactPowers: []domain.ArtifactPower{
			{ID: powerFirst, ArtifactID: testArtifact, Label: 1, Flags: domain.ArtifactPowerFlagFirst, MaxPurchasableRank: 3},
			{ID: powerPlain, ArtifactID: testArtifact, Tier: 1, Label: 2, MaxPurchasableRank: 3},
		},
		ArtifactAppearances: []domain.ArtifactAppearance{
			{ID: 1, ArtifactID: testArtifact, ItemAppearanceModifierID: 5},
		},
	}

	c, err := catalog.New(templates, balance)
	require.NoError(t, err)

	return &item.Services{
		Resolver: bonus.NewResolver(c, c),
		Now:      func() time.Time { return testNow },
	}
}

func newTestItem(t *testing.T, svc *item.Services, guid domain.GUID, entry uint32) *item.Item {
	t.Helper()
	tmpl, ok := svc.Resolver.Catalog().Template(entry)
	require.True(t, ok)
	it, err := item.Create(context.Background(), svc, guid, tmpl, domain.ItemContextNone, nil)
	require.NoError(t, err)
	return it
}

// persisted returns it as if loaded from storage.
func persisted(it *item.Item) *item.Item {
	it.MarkUnchanged()
	return it
}
