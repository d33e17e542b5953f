// Package migrations embeds the SQL schema of the catalog and applies it
// with goose. Each supported database driver has its own directory of
// migrations because DDL differs between PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var dialectDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate applies all pending migrations for the given goose dialect.
// Passing a nil logger keeps goose's default logger.
func Migrate(db *sql.DB, dialect string, logger goose.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	if logger != nil {
		goose.SetLogger(logger)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
