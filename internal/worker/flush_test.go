package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/catalog"
	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/database/postgres"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/item"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

func TestStorageWorker_FlushOwner(t *testing.T) {
	ctx := context.Background()
	queue := item.NewSaveQueue()

	t.Run("one transaction per flush", func(t *testing.T) {
		committer := new(MockCommitter)
		committer.On("CommitTransaction", mock.Anything, mock.Anything).Return(nil)
		w := NewStorageWorker(committer, 1, TestQueueSize)
		w.Start(ctx)

		saver := &MockQueueSaver{stmts: 3}
		var flushID string
		saver.On("FlushQueue", mock.Anything, mock.Anything, queue).
			Run(func(args mock.Arguments) {
				flushID = logger.GetRequestID(args.Get(0).(context.Context))
			}).
			Return(nil)

		discarded, err := w.FlushOwner(ctx, saver, 42, queue)
		require.NoError(t, err)
		assert.Empty(t, discarded)
		require.NoError(t, w.Shutdown(ctx))

		committed := committer.Committed()
		require.Len(t, committed, 1)
		assert.Equal(t, committed[0], flushID, "flush logs carry the transaction id")
		trans := committer.Calls[0].Arguments.Get(1).(*database.Transaction)
		assert.Equal(t, 3, trans.Len())
	})

	t.Run("nothing pending commits nothing", func(t *testing.T) {
		committer := new(MockCommitter)
		w := NewStorageWorker(committer, 1, TestQueueSize)
		w.Start(ctx)

		saver := &MockQueueSaver{}
		saver.On("FlushQueue", mock.Anything, mock.Anything, queue).Return(nil)

		_, err := w.FlushOwner(ctx, saver, 42, queue)
		require.NoError(t, err)
		require.NoError(t, w.Shutdown(ctx))

		committer.AssertNotCalled(t, "CommitTransaction", mock.Anything, mock.Anything)
	})

	t.Run("stopped worker reports the error", func(t *testing.T) {
		w := NewStorageWorker(new(MockCommitter), 1, TestQueueSize)
		w.Start(ctx)
		require.NoError(t, w.Shutdown(ctx))

		saver := &MockQueueSaver{stmts: 1}
		saver.On("FlushQueue", mock.Anything, mock.Anything, queue).Return(nil)

		_, err := w.FlushOwner(ctx, saver, 42, queue)
		assert.ErrorIs(t, err, ErrPoolStopped)
	})

	t.Run("flushes of one owner never overlap", func(t *testing.T) {
		committer := new(MockCommitter)
		committer.On("CommitTransaction", mock.Anything, mock.Anything).Return(nil)
		w := NewStorageWorker(committer, 1, TestQueueSize)
		w.Start(ctx)

		var inside, overlaps atomic.Int32
		saver := &MockQueueSaver{stmts: 1}
		saver.On("FlushQueue", mock.Anything, mock.Anything, queue).
			Run(func(mock.Arguments) {
				if inside.Add(1) > 1 {
					overlaps.Add(1)
				}
				inside.Add(-1)
			}).
			Return(nil)

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = w.FlushOwner(ctx, saver, 7, queue)
			}()
		}
		wg.Wait()
		require.NoError(t, w.Shutdown(ctx))

		assert.Zero(t, overlaps.Load())
		assert.Len(t, committer.Committed(), 20)
		w.ReleaseOwner(7)
	})
}

// newFlushItem creates a New potion through the real item services.
func newFlushItem(t *testing.T, svc *item.Services, guid domain.GUID) *item.Item {
	t.Helper()
	tmpl, ok := svc.Resolver.Catalog().Template(1)
	require.True(t, ok)
	it, err := item.Create(context.Background(), svc, guid, tmpl, domain.ItemContextNone, nil)
	require.NoError(t, err)
	return it
}

func TestStorageWorker_FlushOwner_RejectedKeepsQueue(t *testing.T) {
	ctx := context.Background()

	c, err := catalog.New(catalog.TemplateFile{Templates: []domain.ItemTemplate{
		{ID: 1, Name: "Healing Potion", Class: domain.ItemClassConsumable, BaseItemLevel: 10, MaxStackSize: 20},
	}}, catalog.BalanceFile{})
	require.NoError(t, err)
	svc := &item.Services{Resolver: bonus.NewResolver(c, c)}
	gw := postgres.NewItemGateway(nil, svc)

	fresh := newFlushItem(t, svc, 1)
	changed := newFlushItem(t, svc, 2)
	changed.MarkUnchanged()
	gone := newFlushItem(t, svc, 3)
	gone.MarkUnchanged()

	queue := item.NewSaveQueue()
	queue.Add(fresh)
	queue.Add(changed)
	changed.MarkChanged(ctx, nil)
	gone.MarkRemoved(ctx, nil)
	queue.Retire(gone)

	w := NewStorageWorker(new(MockCommitter), 1, TestQueueSize)
	w.Start(ctx)
	require.NoError(t, w.Shutdown(ctx))

	discarded, err := w.FlushOwner(ctx, gw, 9, queue)

	require.ErrorIs(t, err, ErrPoolStopped)
	assert.Nil(t, discarded, "nothing may be released when the deletes were not accepted")
	assert.Equal(t, domain.ItemNew, fresh.State())
	assert.Equal(t, domain.ItemChanged, changed.State())
	assert.Equal(t, domain.ItemRemoved, gone.State())
	assert.True(t, fresh.IsInQueue())
	assert.True(t, changed.IsInQueue())
	assert.Equal(t, []*item.Item{fresh, changed, gone}, queue.Pending())

	t.Run("next flush retries the same items", func(t *testing.T) {
		committer := new(MockCommitter)
		committer.On("CommitTransaction", mock.Anything, mock.Anything).Return(nil)
		w := NewStorageWorker(committer, 1, TestQueueSize)
		w.Start(ctx)

		discarded, err := w.FlushOwner(ctx, gw, 9, queue)
		require.NoError(t, err)
		require.NoError(t, w.Shutdown(ctx))

		assert.Equal(t, []*item.Item{gone}, discarded)
		assert.Equal(t, domain.ItemUnchanged, fresh.State())
		assert.Equal(t, domain.ItemUnchanged, changed.State())
		assert.Empty(t, queue.Pending())
		assert.Len(t, committer.Committed(), 1)
	})
}
