// Package repository provides PostgreSQL persistence for users, accounts,
// invoices and transactions.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateTransaction reports that a transaction with the same provider
// identifier already exists. Webhook re-deliveries hit this on purpose.
var ErrDuplicateTransaction = errors.New("transaction already exists")

// Querier supports database operations for both pool and transactions,
// and lets tests substitute a pgxmock pool.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)
var _ Querier = (pgx.Tx)(nil)
