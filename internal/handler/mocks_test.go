package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/catalog"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/economy"
	"github.com/osse101/ItemForge_Go/internal/item"
)

// MockDBPool mocks database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockItemLoader mocks ItemLoader
type MockItemLoader struct {
	mock.Mock
}

func (m *MockItemLoader) Load(ctx context.Context, guid, owner domain.GUID) (*item.Item, error) {
	args := m.Called(ctx, guid, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

// MockPriceQuoter mocks PriceQuoter
type MockPriceQuoter struct {
	mock.Mock
}

func (m *MockPriceQuoter) BuyPrice(tmpl *domain.ItemTemplate, quality domain.ItemQuality, itemLevel uint32) (uint32, bool) {
	args := m.Called(tmpl, quality, itemLevel)
	return args.Get(0).(uint32), args.Bool(1)
}

func (m *MockPriceQuoter) SellPrice(tmpl *domain.ItemTemplate, quality domain.ItemQuality, itemLevel uint32) uint32 {
	return m.Called(tmpl, quality, itemLevel).Get(0).(uint32)
}

func (m *MockPriceQuoter) ItemBuyPrice(it economy.Priceable, itemLevel uint32) (uint32, bool) {
	args := m.Called(it, itemLevel)
	return args.Get(0).(uint32), args.Bool(1)
}

func (m *MockPriceQuoter) ItemSellPrice(it economy.Priceable, itemLevel uint32) uint32 {
	return m.Called(it, itemLevel).Get(0).(uint32)
}

const (
	tmplSword      = 1
	listItemLevel5 = 20
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		catalog.TemplateFile{Templates: []domain.ItemTemplate{{
			ID: tmplSword, Name: "Longsword", Class: domain.ItemClassWeapon, InventoryType: domain.InventoryTypeWeapon,
			Quality: domain.QualityUncommon, BaseItemLevel: 100, MaxStackSize: 1, MaxDurability: 50,
		}}},
		catalog.BalanceFile{BonusLists: []domain.ItemBonusList{
			{ID: listItemLevel5, Entries: []domain.ItemBonusEntry{{Type: domain.BonusItemLevel, Values: [4]int32{5}}}},
		}},
	)
	require.NoError(t, err)
	return c
}

func newTestSword(t *testing.T, c *catalog.Catalog, guid domain.GUID) *item.Item {
	t.Helper()
	svc := &item.Services{Resolver: bonus.NewResolver(c, c)}
	tmpl, ok := c.Template(tmplSword)
	require.True(t, ok)
	it, err := item.Create(context.Background(), svc, guid, tmpl, domain.ItemContextNone, nil)
	require.NoError(t, err)
	return it
}
