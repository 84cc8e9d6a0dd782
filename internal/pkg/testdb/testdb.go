// Package testdb gives integration tests a PostgreSQL pool addressed by
// TEST_DATABASE_URL. Tests are skipped when the variable is unset. The
// database is wiped on every Reset, so never point it at real data.
package testdb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hrdirectory/internal/app/migrations"
	"github.com/yigit/hrdirectory/internal/seed"
)

// EnvKey names the variable holding the test database URL.
const EnvKey = "TEST_DATABASE_URL"

// lockKey serializes test packages that share the database; go test runs packages in parallel.
const lockKey = 7305

// URL returns the test database URL or skips the test.
func URL(t testing.TB) string {
	t.Helper()
	url := os.Getenv(EnvKey)
	if url == "" {
		t.Skipf("%s not set, skipping integration test", EnvKey)
	}
	return url
}

// Pool opens a pool on the test database and closes it when the test ends.
// The calling test holds an advisory lock on the database until then.
func Pool(t testing.TB) *pgxpool.Pool {
	t.Helper()
	url := URL(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	t.Cleanup(pool.Close)

	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	_, err = conn.Exec(context.Background(), "SELECT pg_advisory_lock($1)", lockKey)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", lockKey)
		conn.Release()
	})

	return pool
}

// Reset recreates the schema and inserts the default rows.
func Reset(t testing.TB, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	require.NoError(t, migrations.NewMigrator(tx, zerolog.Nop()).Reset(ctx))
	require.NoError(t, seed.CreateDefaultData(ctx, tx, zerolog.Nop()))
	require.NoError(t, tx.Commit(ctx))
}
