// pkg/db/executor.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrSetup marks a failure to obtain a connection or open the transaction.
var ErrSetup = errors.New("transaction setup failed")

// UnitOfWork is a sequence of statements run inside one transaction. It has
// no commit or rollback authority of its own: returning an error is the only
// way to ask for a rollback. Results are communicated by leaving rows pending
// on tx.
type UnitOfWork func(ctx context.Context, tx *Tx) error

// Outcome is how an invocation ended, as reported to an Observer.
type Outcome string

const (
	OutcomeCommitted    Outcome = "committed"
	OutcomeRolledBack   Outcome = "rolled_back"
	OutcomeCommitFailed Outcome = "commit_failed"
	OutcomeSetupFailed  Outcome = "setup_failed"
)

// Observer is notified once per invocation.
type Observer interface {
	ObserveTransaction(op string, outcome Outcome, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveTransaction(string, Outcome, time.Duration) {}

// Executor runs units of work, each on its own connection and transaction,
// and folds every outcome into a Result.
type Executor struct {
	connector Connector
	logger    *slog.Logger
	observer  Observer
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) { e.logger = logger }
}

// WithObserver attaches an outcome observer, e.g. a metrics collector.
func WithObserver(o Observer) Option {
	return func(e *Executor) { e.observer = o }
}

// NewExecutor creates an Executor on top of connector.
func NewExecutor(connector Connector, opts ...Option) *Executor {
	e := &Executor{
		connector: connector,
		logger:    slog.Default(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes work in exactly one transaction. On success the transaction
// is committed and any rows left pending by the last statement are returned.
// On failure the transaction is rolled back and the failure is logged.
// The connection is closed on every path, after commit or rollback.
// Run never returns an error or panics; callers branch on Result.Status.
func (e *Executor) Run(ctx context.Context, op string, work UnitOfWork) Result {
	start := time.Now()
	outcome := OutcomeSetupFailed
	defer func() {
		e.observer.ObserveTransaction(op, outcome, time.Since(start))
	}()

	conn, err := e.connector.Connect(ctx)
	if err != nil {
		e.logger.Error("Failed to open connection", "op", op, "error", err)
		return Failed(fmt.Errorf("%s: %w: %w", op, ErrSetup, err))
	}
	defer e.release(op, conn)

	handle, err := conn.Begin(ctx)
	if err != nil {
		e.logger.Error("Failed to begin transaction", "op", op, "error", err)
		return Failed(fmt.Errorf("%s: %w: %w", op, ErrSetup, err))
	}

	tx := &Tx{handle: handle}
	rows, err := execute(ctx, tx, work)
	if err != nil {
		outcome = OutcomeRolledBack
		e.logger.Error("Error in transaction, reverting all operations", "op", op, "error", err)
		if rbErr := handle.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			e.logger.Error("Failed to roll back transaction", "op", op, "error", rbErr)
		}
		return Failed(fmt.Errorf("%s: %w", op, err))
	}

	if err := handle.Commit(); err != nil {
		outcome = OutcomeCommitFailed
		e.logger.Error("Failed to commit transaction", "op", op, "error", err)
		return Failed(fmt.Errorf("%s: failed to commit transaction: %w", op, err))
	}

	outcome = OutcomeCommitted
	return Succeeded(rows)
}

// execute invokes work and harvests whatever it left pending. A missing
// result set is not an error. Panics are converted into errors, and the
// pending result set is always closed before returning.
func execute(ctx context.Context, tx *Tx, work UnitOfWork) (rows []Row, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("unit of work panicked: %v", r)
		}
		if cerr := tx.discard(); cerr != nil && err == nil {
			rows, err = nil, cerr
		}
	}()

	if err := work(ctx, tx); err != nil {
		return nil, err
	}

	rows, err = tx.FetchAll()
	if errors.Is(err, ErrNoResultSet) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	return rows, nil
}

func (e *Executor) release(op string, conn Conn) {
	if err := conn.Close(); err != nil {
		e.logger.Warn("Failed to close connection", "op", op, "error", err)
	}
}
