// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when required environment
// variables are not set, so unit tests can run without a running database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/globetrotter/backend/migrations"
)

// DSNEnv names the environment variable holding the test database URL.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool opens a *pgxpool.Pool connected to the test database.
// The test is skipped if TEST_DATABASE_URL is not set, and the pool is
// closed when the test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
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

// BeginTx opens a transaction on the test database that is rolled back when
// the test finishes, so every test sees an empty schema and leaves nothing
// behind.
func BeginTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := NewPool(t)

	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.BeginTx: %v", err)
	}

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// NewSQLDB opens a *sql.DB on the test database using the pgx database/sql
// driver, for callers such as goose that need database/sql.
// The connection is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)

	db, err := sql.Open("pgx", dsn)
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

// MustMigrate applies all migrations to the database at dsn and panics on
// any error. Use it from TestMain, where no *testing.T is available.
func MustMigrate(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustMigrate: open: " + err.Error())
	}
	defer db.Close()

	if _, err := migrations.Up(context.Background(), db); err != nil {
		panic("testutil.MustMigrate: " + err.Error())
	}
}

// requireDSN returns the test database URL, skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping integration test")
	}
	return dsn
}
