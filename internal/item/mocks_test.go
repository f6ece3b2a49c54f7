package item

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/domain"
)

// MockOwner implements Owner for testing. Identity and the save queue are
// plain fields; everything else goes through the mock.
type MockOwner struct {
	mock.Mock
	guid  domain.GUID
	queue *SaveQueue
}

func newMockOwner(guid domain.GUID) *MockOwner {
	return &MockOwner{guid: guid, queue: NewSaveQueue()}
}

func (m *MockOwner) GUID() domain.GUID     { return m.guid }
func (m *MockOwner) SaveQueue() *SaveQueue { return m.queue }

func (m *MockOwner) Level() uint32 {
	args := m.Called()
	return args.Get(0).(uint32)
}

func (m *MockOwner) ActiveSpecIndex() uint8 {
	args := m.Called()
	return args.Get(0).(uint8)
}

func (m *MockOwner) TradeData() TradeSession {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(TradeSession)
}

func (m *MockOwner) ApplyArtifactPowerRank(ctx context.Context, rank domain.ArtifactPowerRank, apply bool) {
	m.Called(ctx, rank, apply)
}

func (m *MockOwner) IsUsingPvpItemLevels() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockOwner) MeetsCondition(conditionID uint32) bool {
	args := m.Called(conditionID)
	return args.Bool(0)
}

func (m *MockOwner) ItemLevelBounds() LevelBounds {
	args := m.Called()
	return args.Get(0).(LevelBounds)
}

func (m *MockOwner) Send(ctx context.Context, msg any) {
	m.Called(ctx, msg)
}

func (m *MockOwner) DestroyItem(ctx context.Context, it *Item) {
	m.Called(ctx, it)
}

func (m *MockOwner) DeleteRefundReference(guid domain.GUID) {
	m.Called(guid)
}

// MockTradeSession implements TradeSession for testing
type MockTradeSession struct {
	mock.Mock
}

func (m *MockTradeSession) RefreshItem(guid domain.GUID) {
	m.Called(guid)
}

// MockRefundStore implements RefundStore for testing
type MockRefundStore struct {
	mock.Mock
}

func (m *MockRefundStore) DeleteRefundData(ctx context.Context, trans *database.Transaction, guid domain.GUID) {
	m.Called(ctx, trans, guid)
}
