package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var embedded embed.FS

// Execer is satisfied by *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Script is one schema statement file
type Script struct {
	Version string
	Name    string
	SQL     string
}

// Migrator recreates the schema from the bundled SQL scripts
type Migrator struct {
	db      Execer
	scripts fs.FS
	logger  zerolog.Logger
}

// NewMigrator creates a migrator over the bundled scripts
func NewMigrator(db Execer, logger zerolog.Logger) *Migrator {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		// embedded path is fixed at compile time
		panic(err)
	}
	return NewMigratorFS(db, sub, logger)
}

// NewMigratorFS creates a migrator reading *.sql files from the root of scripts
func NewMigratorFS(db Execer, scripts fs.FS, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:      db,
		scripts: scripts,
		logger:  logger,
	}
}

// Scripts returns the SQL files sorted by file name
func (m *Migrator) Scripts() ([]Script, error) {
	entries, err := fs.ReadDir(m.scripts, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration scripts: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	scripts := make([]Script, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(m.scripts, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		// "003_create_departments.sql" => "003"
		version := strings.Split(path.Base(name), "_")[0]
		scripts = append(scripts, Script{
			Version: version,
			Name:    name,
			SQL:     string(content),
		})
	}

	return scripts, nil
}

// Reset drops both tables and creates them again. All existing rows are lost.
func (m *Migrator) Reset(ctx context.Context) error {
	scripts, err := m.Scripts()
	if err != nil {
		return err
	}

	for _, script := range scripts {
		if _, err := m.db.Exec(ctx, script.SQL); err != nil {
			return fmt.Errorf("error executing migration %s: %w", script.Name, err)
		}
		m.logger.Debug().Str("version", script.Version).Str("file", script.Name).Msg("Migration script applied")
	}

	m.logger.Info().Int("scripts", len(scripts)).Msg("Schema recreated")
	return nil
}
