package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"neuro-site/internal/logger"

	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var embeddedMigrations embed.FS

// Migrations returns the bundled migration files.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Execer is satisfied by *sql.DB and *sqlx.DB.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ORA-00955: name is already used by an existing object.
const oraAlreadyExists = "ORA-00955"

// RunMigrations executes every *.up.sql file of fsys in name order, one
// statement per file. Objects that already exist are skipped so the command
// can be re-run.
func RunMigrations(ctx context.Context, db Execer, fsys fs.FS) (int, error) {
	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return 0, fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(names)

	applied := 0
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if stmt == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if strings.Contains(err.Error(), oraAlreadyExists) {
				logger.Get().Info("Migration already applied", zap.String("file", name))
				continue
			}
			return applied, fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		applied++
		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("applied", applied), zap.Int("total", len(names)))
	return applied, nil
}
