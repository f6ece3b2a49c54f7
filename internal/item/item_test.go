package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	t.Run("template defaults", func(t *testing.T) {
		it, err := Create(ctx, svc, 7, mustTemplate(t, svc, tmplSword), domain.ItemContextDungeonNormal, nil)
		require.NoError(t, err)

		assert.Equal(t, domain.GUID(7), it.GUID())
		assert.Equal(t, uint32(tmplSword), it.Entry())
		assert.Equal(t, domain.ItemNew, it.State())
		assert.False(t, it.IsInQueue())
		assert.Equal(t, uint32(1), it.Count())
		assert.Equal(t, uint32(50), it.Durability())
		assert.Equal(t, uint32(50), it.MaxDurability())
		assert.Equal(t, int32(-1), it.SpellCharges(0))
		assert.Equal(t, int32(3), it.SpellCharges(1))
		assert.Zero(t, it.SpellCharges(4))
		assert.Equal(t, domain.ItemContextDungeonNormal, it.Context())
		assert.Equal(t, domain.QualityUncommon, it.Quality())
		assert.Equal(t, KindPlain, it.Variant().Kind())
		assert.Equal(t, NullSlot, it.Slot())
	})

	t.Run("timed item", func(t *testing.T) {
		it := newTestItem(t, svc, 8, tmplPotion)
		assert.Equal(t, uint32(3600), it.Expiration())
	})

	t.Run("owner guid is recorded", func(t *testing.T) {
		owner := newMockOwner(42)
		it := newOwnedItem(t, svc, owner, 9, tmplSword)
		assert.Equal(t, domain.GUID(42), it.OwnerGUID())
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := Create(ctx, svc, 10, nil, domain.ItemContextNone, nil)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})
}

func TestClone(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	src := newTestItem(t, svc, 1, tmplPotion)
	src.SetCount(nil, 15)
	src.SetCreator(100)
	src.SetGiftCreator(101)
	src.SetFlag(domain.ItemFieldFlagRefundable | domain.ItemFieldFlagBopTradeable | domain.ItemFieldFlagWrapped)
	src.SetExpiration(1200)
	src.SetBonuses(ctx, []uint32{listItemLevel10})
	src.SetRandomBonusList(ctx, listEpic)

	t.Run("split for a player", func(t *testing.T) {
		owner := newMockOwner(5)
		c, err := src.Clone(ctx, 2, 5, owner)
		require.NoError(t, err)

		assert.Equal(t, uint32(5), c.Count())
		assert.Equal(t, domain.GUID(100), c.Creator())
		assert.Equal(t, domain.GUID(101), c.GiftCreator())
		assert.Equal(t, domain.ItemFieldFlagWrapped, c.Flags(), "refund and trade flags are not copied")
		assert.Equal(t, uint32(1200), c.Expiration())
		assert.Equal(t, []uint32{listItemLevel10, listEpic}, c.BonusListIDs())
		assert.Equal(t, uint32(listEpic), c.RandomBonusListID())
		assert.Equal(t, domain.QualityEpic, c.Quality())
		assert.Equal(t, domain.ItemNew, c.State())
	})

	t.Run("without owner the random list stays behind", func(t *testing.T) {
		c, err := src.Clone(ctx, 3, 1, nil)
		require.NoError(t, err)
		assert.Zero(t, c.RandomBonusListID())
	})

	t.Run("count is clamped to the stack limit", func(t *testing.T) {
		c, err := src.Clone(ctx, 4, 500, nil)
		require.NoError(t, err)
		assert.Equal(t, uint32(20), c.Count())
	})

	t.Run("zero count", func(t *testing.T) {
		_, err := src.Clone(ctx, 5, 0, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSetCount(t *testing.T) {
	svc := newTestServices(t)

	t.Run("clamps to the stack limit", func(t *testing.T) {
		it := newTestItem(t, svc, 1, tmplPotion)
		it.SetCount(nil, 50)
		assert.Equal(t, uint32(20), it.Count())
		assert.True(t, it.Dirty().Dirty(FieldCount))
	})

	t.Run("refreshes an open trade", func(t *testing.T) {
		it := newTestItem(t, svc, 2, tmplPotion)
		trade := new(MockTradeSession)
		trade.On("RefreshItem", domain.GUID(2)).Once()
		owner := newMockOwner(1)
		owner.On("TradeData").Return(trade)

		it.SetCount(owner, 3)

		assert.Equal(t, uint32(3), it.Count())
		trade.AssertExpectations(t)
	})

	t.Run("no trade", func(t *testing.T) {
		it := newTestItem(t, svc, 3, tmplPotion)
		owner := newMockOwner(1)
		owner.On("TradeData").Return(nil)

		it.SetCount(owner, 4)

		assert.Equal(t, uint32(4), it.Count())
		owner.AssertExpectations(t)
	})
}

func TestDurabilityAndFlags(t *testing.T) {
	svc := newTestServices(t)
	it := newTestItem(t, svc, 1, tmplSword)

	it.SetDurability(80)
	assert.Equal(t, uint32(50), it.Durability())
	it.SetDurability(12)
	assert.Equal(t, uint32(12), it.Durability())

	it.SetSpellCharges(1, 2)
	it.SetSpellCharges(9, 2)
	assert.Equal(t, int32(2), it.SpellCharges(1))

	assert.False(t, it.IsSoulBound())
	it.SetBinding(true)
	assert.True(t, it.IsSoulBound())
	it.SetBinding(false)
	assert.False(t, it.IsSoulBound())
	assert.True(t, it.Dirty().Dirty(FieldFlags))
}

func TestIsEquipped(t *testing.T) {
	svc := newTestServices(t)
	it := newTestItem(t, svc, 1, tmplSword)

	assert.False(t, it.IsEquipped(), "unplaced")
	it.SetContainer(0, 15)
	assert.True(t, it.IsEquipped())
	it.SetContainer(0, EquipmentSlotEnd)
	assert.False(t, it.IsEquipped(), "backpack")
	it.SetContainer(99, 0)
	assert.False(t, it.IsEquipped(), "inside a bag")
}

func TestSetLoot(t *testing.T) {
	svc := newTestServices(t)
	it := newTestItem(t, svc, 1, tmplBag)

	_, ok := it.AsLootContainer()
	assert.False(t, ok)

	loot := &domain.ContainerLoot{Container: 1, Gold: 30, UnlootedCount: 1}
	it.SetLoot(loot)
	holder, ok := it.AsLootContainer()
	require.True(t, ok)
	assert.Same(t, loot, holder.Loot())

	it.SetLoot(&domain.ContainerLoot{Container: 1})
	assert.False(t, it.LootGenerated())
	assert.Nil(t, it.Loot())

	it.SetLoot(loot)
	it.SetLoot(nil)
	assert.False(t, it.LootGenerated())
}

func TestUpdateDuration(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	t.Run("counts down", func(t *testing.T) {
		owner := newMockOwner(1)
		it := persisted(newOwnedItem(t, svc, owner, 1, tmplPotion))

		it.UpdateDuration(ctx, owner, 600)

		assert.Equal(t, uint32(3000), it.Expiration())
		assert.Equal(t, domain.ItemChanged, it.State())
		assert.True(t, it.IsInQueue())
	})

	t.Run("expired item is destroyed", func(t *testing.T) {
		owner := newMockOwner(1)
		it := persisted(newOwnedItem(t, svc, owner, 2, tmplPotion))
		owner.On("DestroyItem", ctx, it).Once()

		it.UpdateDuration(ctx, owner, 3600)

		owner.AssertExpectations(t)
	})

	t.Run("untimed item", func(t *testing.T) {
		owner := newMockOwner(1)
		it := persisted(newOwnedItem(t, svc, owner, 3, tmplSword))

		it.UpdateDuration(ctx, owner, 10)

		assert.Equal(t, domain.ItemUnchanged, it.State())
	})

	t.Run("time update", func(t *testing.T) {
		owner := newMockOwner(1)
		it := newOwnedItem(t, svc, owner, 4, tmplPotion)
		owner.On("Send", ctx, domain.ItemTimeUpdate{Item: 4, Duration: 3600}).Once()

		it.SendTimeUpdate(ctx, owner)

		owner.AssertExpectations(t)
	})
}
