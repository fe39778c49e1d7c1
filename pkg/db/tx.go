// pkg/db/tx.go
package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrNoResultSet is returned by FetchOne and FetchAll when the most recent
// statement did not produce rows (DDL, or an INSERT without RETURNING).
var ErrNoResultSet = errors.New("no result set to fetch from")

// Tx is the transaction context handed to a unit of work: an open
// transaction plus the result set of the last statement, cursor style.
// Statements use ? placeholders; they are rebound for the active driver.
type Tx struct {
	handle  TxHandle
	pending *sqlx.Rows
}

// Exec runs a statement that returns no rows.
func (t *Tx) Exec(ctx context.Context, query string, args ...any) error {
	if err := t.discard(); err != nil {
		return err
	}
	_, err := t.handle.ExecContext(ctx, t.handle.Rebind(query), args...)
	return err
}

// Query runs a statement and leaves its rows pending for FetchOne/FetchAll.
func (t *Tx) Query(ctx context.Context, query string, args ...any) error {
	if err := t.discard(); err != nil {
		return err
	}
	rows, err := t.handle.QueryxContext(ctx, t.handle.Rebind(query), args...)
	if err != nil {
		return err
	}
	t.pending = rows
	return nil
}

// FetchOne returns the next pending row, or nil once the rows are exhausted.
func (t *Tx) FetchOne() (Row, error) {
	if t.pending == nil {
		return nil, ErrNoResultSet
	}
	if !t.pending.Next() {
		return nil, t.pending.Err()
	}
	values, err := t.pending.SliceScan()
	if err != nil {
		return nil, err
	}
	return Row(values), nil
}

// FetchAll drains the pending rows. A query that matched nothing yields an
// empty, non-nil slice.
func (t *Tx) FetchAll() ([]Row, error) {
	if t.pending == nil {
		return nil, ErrNoResultSet
	}
	rows := t.pending
	t.pending = nil
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		out = append(out, Row(values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// discard closes the pending result set, if any.
func (t *Tx) discard() error {
	if t.pending == nil {
		return nil
	}
	err := t.pending.Close()
	t.pending = nil
	return err
}
