package repository

import (
	"context"

	"github.com/osse101/ItemForge_Go/internal/database"
)

// TransactionCommitter durably applies every statement of a transaction, in
// order, or none of them.
type TransactionCommitter interface {
	CommitTransaction(ctx context.Context, trans *database.Transaction) error
}

// TransactionQueue accepts transactions for asynchronous commit. Enqueue
// returning nil does not mean the transaction has been committed.
type TransactionQueue interface {
	Enqueue(ctx context.Context, trans *database.Transaction) error
}
