//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/phrazzld/swapi-gateway/internal/platform/postgres"
)

// TestTimeout bounds setup queries.
const TestTimeout = 30 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDB opens the test database, applies migrations once per process and
// closes the connection when t finishes. It skips t when no database is
// configured.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skipf("%s not set, skipping integration test", TestDatabaseURLEnv)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("failed to open test database %s: %v", maskDatabaseURL(url), err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to reach test database %s: %v", maskDatabaseURL(url), err)
	}

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(ctx, db, postgres.MigrateUp, nil)
	})
	if migrateErr != nil {
		t.Fatalf("failed to migrate test database: %v", migrateErr)
	}

	return db
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
