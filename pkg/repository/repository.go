// Package repository holds the generic row helpers every domain repository
// shares: transactions, typed scans, and paged listing.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/assessor/pkg/pagination"
	"github.com/JaimeStill/assessor/pkg/query"
)

// Querier is satisfied by *sql.DB, *sql.Tx, and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner is the Scan half of *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc reads one row into T. Each domain package supplies its own.
type ScanFunc[T any] func(Scanner) (T, error)

// WithTx runs fn inside a transaction. The transaction commits only when fn
// succeeds; any error rolls it back.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit tx: %w", err)
	}
	return result, nil
}

// QueryOne scans the single row stmt returns. A missing row surfaces as
// sql.ErrNoRows for MapError.
func QueryOne[T any](ctx context.Context, q Querier, stmt string, args []any, scan ScanFunc[T]) (T, error) {
	return scan(q.QueryRowContext(ctx, stmt, args...))
}

// QueryMany scans every row stmt returns. The result is never nil.
func QueryMany[T any](ctx context.Context, q Querier, stmt string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// QueryCount scans the single integer stmt returns, typically COUNT(*).
func QueryCount(ctx context.Context, q Querier, stmt string, args ...any) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, stmt, args...).Scan(&n)
	return n, err
}

// QueryPage counts the rows qb matches, then reads the window page selects.
// The count runs first so Total reflects the unpaged query.
func QueryPage[T any](ctx context.Context, q Querier, qb *query.Builder, page pagination.PageRequest, scan ScanFunc[T]) (*pagination.PageResult[T], error) {
	countSQL, countArgs := qb.BuildCount()
	total, err := QueryCount(ctx, q, countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Limit, page.Offset)
	items, err := QueryMany(ctx, q, pageSQL, pageArgs, scan)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Limit, page.Offset)
	return &result, nil
}
