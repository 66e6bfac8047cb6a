// Package testutil provides shared helpers for database integration tests.
// Every helper that needs Postgres skips the test when TEST_DATABASE_URL is
// unset, so `go test ./...` stays green on machines without a database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pkordes/trip-planner/migrations"
)

// EnvDSN names the variable holding the test database connection string.
const EnvDSN = "TEST_DATABASE_URL"

// NewPool opens a pool against the test database and closes it when the
// test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction on a fresh pool and rolls it back on cleanup,
// so nothing a test writes survives it.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB opens a *sql.DB on the pgx stdlib driver, for goose.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// NewMigrator returns a goose provider over the embedded migrations.
func NewMigrator(db *sql.DB) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
}

// MigrateFromEnv applies every pending migration to the database named by
// TEST_DATABASE_URL. It is a no-op when the variable is unset and panics on
// failure, since it runs from TestMain where no *testing.T exists.
func MigrateFromEnv() {
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		return
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MigrateFromEnv: open: " + err.Error())
	}
	defer db.Close()

	provider, err := NewMigrator(db)
	if err != nil {
		panic("testutil.MigrateFromEnv: provider: " + err.Error())
	}
	if _, err := provider.Up(context.Background()); err != nil {
		panic("testutil.MigrateFromEnv: up: " + err.Error())
	}
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skip(EnvDSN + " not set; skipping integration test")
	}
	return dsn
}
