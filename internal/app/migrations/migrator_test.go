package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	statements []string
	failOn     string
}

func (r *recordingExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if r.failOn != "" && strings.Contains(sql, r.failOn) {
		return pgconn.CommandTag{}, errors.New("relation already exists")
	}
	r.statements = append(r.statements, strings.TrimSpace(sql))
	return pgconn.NewCommandTag("OK"), nil
}

func TestBundledScriptsOrder(t *testing.T) {
	m := NewMigrator(&recordingExecer{}, zerolog.Nop())

	scripts, err := m.Scripts()
	require.NoError(t, err)
	require.Len(t, scripts, 4)

	assert.Equal(t, "001", scripts[0].Version)
	assert.Contains(t, scripts[0].SQL, "DROP TABLE IF EXISTS employees")
	assert.Contains(t, scripts[1].SQL, "DROP TABLE IF EXISTS departments")
	assert.Contains(t, scripts[2].SQL, "CREATE TABLE departments")
	assert.Contains(t, scripts[3].SQL, "REFERENCES departments(id)")
}

func TestResetExecutesInFileOrder(t *testing.T) {
	exec := &recordingExecer{}
	scripts := fstest.MapFS{
		"010_second.sql": {Data: []byte("SELECT 2;")},
		"002_first.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("ignored")},
	}

	err := NewMigratorFS(exec, scripts, zerolog.Nop()).Reset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"SELECT 1;", "SELECT 2;"}, exec.statements)
}

func TestResetStopsOnFirstFailure(t *testing.T) {
	exec := &recordingExecer{failOn: "CREATE TABLE departments"}

	err := NewMigrator(exec, zerolog.Nop()).Reset(context.Background())
	require.Error(t, err)

	assert.Contains(t, err.Error(), "003_create_departments.sql")
	assert.Len(t, exec.statements, 2)
}
