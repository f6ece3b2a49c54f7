package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockQuerier is a mock implementation of Querier
type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	a := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag(""), a.Error(0)
}

func (m *MockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	a := m.Called(ctx, sql, args)
	rows, _ := a.Get(0).(pgx.Rows)
	return rows, a.Error(1)
}

func (m *MockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	a := m.Called(ctx, sql, args)
	return a.Get(0).(pgx.Row)
}

func (m *MockQuerier) Begin(ctx context.Context) (pgx.Tx, error) {
	a := m.Called(ctx)
	tx, _ := a.Get(0).(pgx.Tx)
	return tx, a.Error(1)
}

// MockTx records executed statements. Methods not overridden panic.
type MockTx struct {
	pgx.Tx
	mock.Mock

	executed []string
}

func (m *MockTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.executed = append(m.executed, sql)
	a := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag(""), a.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// scanRows serves one scan function per row. Methods not overridden panic.
type scanRows struct {
	pgx.Rows
	rows []rowFunc
	pos  int
}

func (r *scanRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *scanRows) Scan(dest ...any) error { return r.rows[r.pos-1](dest...) }
func (r *scanRows) Close()                 {}
func (r *scanRows) Err() error             { return nil }

// rowFunc adapts a scan function to pgx.Row.
type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }
