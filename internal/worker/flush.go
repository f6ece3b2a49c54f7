package worker

import (
	"context"

	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/item"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

// QueueSaver appends the pending saves of a queue to a transaction.
type QueueSaver interface {
	FlushQueue(ctx context.Context, trans *database.Transaction, queue *item.SaveQueue) []*item.Item
}

// FlushOwner turns one owner's save queue into a single transaction and
// schedules it for commit. The returned items were removed from storage and
// may be released by the caller once the call returns. When the transaction
// is not accepted the queue and its items are restored so the next flush
// retries them, and nothing is returned for release. Flushes of the same
// owner are serialized.
func (w *StorageWorker) FlushOwner(ctx context.Context, saver QueueSaver, owner domain.GUID, queue *item.SaveQueue) ([]*item.Item, error) {
	mu := w.owners.GetLock(owner)
	mu.Lock()
	defer mu.Unlock()

	trans := database.NewTransaction()
	ctx = logger.WithRequestID(ctx, trans.ID())

	checkpoint := queue.Checkpoint()
	discarded := saver.FlushQueue(ctx, trans, queue)
	if err := w.Enqueue(ctx, trans); err != nil {
		checkpoint.Restore()
		logger.FromContext(ctx).Warn(LogMsgFlushRestored, "owner", owner, "error", err)
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgOwnerFlushed, "owner", owner, "statements", trans.Len(), "discarded", len(discarded))
	return discarded, nil
}

// ReleaseOwner forgets the flush lock of an owner that went offline.
func (w *StorageWorker) ReleaseOwner(owner domain.GUID) {
	w.owners.Forget(owner)
}
