// pkg/db/transaction_manager.go
package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxController defines methods for controlling a database transaction.
// *sqlx.Tx implicitly implements this interface.
type TxController interface {
	Commit() error
	Rollback() error
}

// TxHandle is an open transaction that statements can be issued against.
// *sqlx.Tx implements it.
type TxHandle interface {
	TxController
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	Rebind(query string) string
}

// Conn is a single provisioned connection. Begin disables autocommit by
// opening an explicit transaction; Close releases the connection.
type Conn interface {
	Begin(ctx context.Context) (TxHandle, error)
	Close() error
}

// sqlxConn adapts a single-connection *sqlx.DB to Conn.
type sqlxConn struct {
	db *sqlx.DB
}

func (c *sqlxConn) Begin(ctx context.Context) (TxHandle, error) {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil // *sqlx.Tx implicitly implements TxHandle
}

func (c *sqlxConn) Close() error {
	return c.db.Close()
}

// compile-time checks
var (
	_ TxHandle = (*sqlx.Tx)(nil)
	_ Conn     = (*sqlxConn)(nil)
)
