package worker

import (
	"context"
	"fmt"

	"github.com/osse101/ItemForge_Go/internal/concurrency"
	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
	"github.com/osse101/ItemForge_Go/internal/repository"
)

var _ repository.TransactionQueue = (*StorageWorker)(nil)

// StorageWorker commits item transactions in the background. Statements of
// one transaction are applied in append order; transactions are taken in
// enqueue order, and with a single worker they also commit in that order.
type StorageWorker struct {
	pool      *Pool
	committer repository.TransactionCommitter
	owners    *concurrency.LockManager[domain.GUID]
}

// NewStorageWorker creates a storage worker committing through committer.
func NewStorageWorker(committer repository.TransactionCommitter, workers, queueSize int) *StorageWorker {
	return &StorageWorker{
		pool:      NewPool(workers, queueSize),
		committer: committer,
		owners:    concurrency.NewLockManager[domain.GUID](),
	}
}

// Start launches the workers.
func (w *StorageWorker) Start(ctx context.Context) {
	w.pool.Start()
	logger.FromContext(ctx).Info(LogMsgStorageWorkerStarted, "workers", w.pool.workers)
}

// Enqueue schedules trans for commit. A nil error only means the
// transaction was accepted.
func (w *StorageWorker) Enqueue(ctx context.Context, trans *database.Transaction) error {
	if trans.Empty() {
		logger.FromContext(ctx).Debug(LogMsgTransactionSkipped, "transaction", trans.ID())
		return nil
	}
	metrics.StorageQueueDepth.Inc()
	if err := w.pool.Enqueue(ctx, &commitJob{committer: w.committer, trans: trans}); err != nil {
		metrics.StorageQueueDepth.Dec()
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgTransactionEnqueued, "transaction", trans.ID(), "statements", trans.Len())
	return nil
}

// Pending returns the number of transactions waiting for a worker.
func (w *StorageWorker) Pending() int { return w.pool.Len() }

// Shutdown stops accepting transactions and drains the queue.
func (w *StorageWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStorageWorkerStopping, "pending", w.pool.Len())

	if err := w.pool.Stop(ctx); err != nil {
		log.Warn(LogMsgStorageDrainTimeout, "pending", w.pool.Len())
		return err
	}
	log.Info(LogMsgStorageWorkerStopped)
	return nil
}

type commitJob struct {
	committer repository.TransactionCommitter
	trans     *database.Transaction
}

func (j *commitJob) Process(ctx context.Context) error {
	metrics.StorageQueueDepth.Dec()
	if err := j.committer.CommitTransaction(ctx, j.trans); err != nil {
		metrics.TransactionFailures.Inc()
		return fmt.Errorf(ErrFmtCommitFailed, j.trans.ID(), j.trans.Len(), err)
	}
	metrics.TransactionsCommitted.Inc()
	return nil
}
