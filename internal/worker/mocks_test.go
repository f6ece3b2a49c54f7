package worker

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/item"
)

// MockCommitter is a mock implementation of repository.TransactionCommitter
// that also records commit order.
type MockCommitter struct {
	mock.Mock

	mu        sync.Mutex
	committed []string
}

func (m *MockCommitter) CommitTransaction(ctx context.Context, trans *database.Transaction) error {
	err := m.Called(ctx, trans).Error(0)
	if err == nil {
		m.mu.Lock()
		m.committed = append(m.committed, trans.ID())
		m.mu.Unlock()
	}
	return err
}

func (m *MockCommitter) Committed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.committed...)
}

// MockQueueSaver is a mock implementation of QueueSaver. It appends one
// statement per call to stmts.
type MockQueueSaver struct {
	mock.Mock
	stmts int
}

func (m *MockQueueSaver) FlushQueue(ctx context.Context, trans *database.Transaction, queue *item.SaveQueue) []*item.Item {
	args := m.Called(ctx, trans, queue)
	for i := range m.stmts {
		trans.Append("DELETE FROM item_instance WHERE guid = $1", i)
	}
	discarded, _ := args.Get(0).([]*item.Item)
	return discarded
}
