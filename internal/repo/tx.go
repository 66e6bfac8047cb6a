package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Repos bundles the repositories bound to a single transaction.
type Repos struct {
	Trips     TripRepo
	Schedules ScheduleRepo
}

// beginner is satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx. Beginning on
// a pgx.Tx opens a savepoint, which lets tests run InTx inside their own
// rolled-back transaction.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner runs a function against repos that share one transaction.
type TxRunner struct {
	db beginner
}

// NewTxRunner constructs a TxRunner on top of a pool, connection, or transaction.
func NewTxRunner(db beginner) *TxRunner {
	return &TxRunner{db: db}
}

// InTx begins a transaction, hands fn repos bound to it, and commits when fn
// returns nil. Any error from fn rolls everything back.
func (t *TxRunner) InTx(ctx context.Context, fn func(Repos) error) error {
	err := pgx.BeginFunc(ctx, t.db, func(tx pgx.Tx) error {
		return fn(Repos{
			Trips:     NewTripRepo(tx),
			Schedules: NewScheduleRepo(tx),
		})
	})
	if err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: %w", err)
	}
	return nil
}
