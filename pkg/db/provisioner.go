// pkg/db/provisioner.go
package db

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"   // PostgreSQL driver
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Connector hands out live connections. The Executor depends on this
// interface only, so tests can substitute their own.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// Provisioner opens one dedicated connection per Connect call.
// There is no pooling across calls: every handle is closed by its caller.
type Provisioner struct {
	cfg Config
}

// NewProvisioner creates a Provisioner for the given configuration.
func NewProvisioner(cfg Config) *Provisioner {
	return &Provisioner{cfg: cfg}
}

// Config returns the connection descriptor this provisioner was built with.
func (p *Provisioner) Config() Config {
	return p.cfg
}

// Connect opens a new connection and verifies it with a ping.
func (p *Provisioner) Connect(ctx context.Context) (Conn, error) {
	dsn, err := p.cfg.DataSourceName()
	if err != nil {
		return nil, err
	}

	database, err := sqlx.Open(p.cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", p.cfg.Driver, err)
	}

	// A single physical connection backs the handle for its whole lifetime.
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)

	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", p.cfg.Driver, err)
	}

	return &sqlxConn{db: database}, nil
}
