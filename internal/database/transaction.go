package database

import (
	"slices"

	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// Statement is one parameterised SQL command.
type Statement struct {
	SQL  string
	Args []any
}

// Transaction collects statements to be committed atomically, in append
// order, by the storage worker. It is not safe for concurrent use.
type Transaction struct {
	id         string
	statements []Statement
}

// NewTransaction returns an empty transaction with a fresh correlation id.
func NewTransaction() *Transaction {
	return &Transaction{id: logger.GenerateRequestID()}
}

// ID is the correlation id used in storage logs.
func (t *Transaction) ID() string { return t.id }

// Append adds a statement.
func (t *Transaction) Append(sql string, args ...any) {
	t.statements = append(t.statements, Statement{SQL: sql, Args: args})
	metrics.StatementsAppended.Inc()
}

// Statements returns a copy of the statements in append order.
func (t *Transaction) Statements() []Statement {
	return slices.Clone(t.statements)
}

// Len returns the number of statements.
func (t *Transaction) Len() int { return len(t.statements) }

// Empty reports whether nothing has been appended.
func (t *Transaction) Empty() bool { return len(t.statements) == 0 }
