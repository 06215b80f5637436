package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateCommand selects the goose operation run by Migrate.
type MigrateCommand string

const (
	MigrateUp     MigrateCommand = "up"
	MigrateDown   MigrateCommand = "down"
	MigrateStatus MigrateCommand = "status"
)

// ParseMigrateCommand normalizes a CLI command name. Empty means up.
func ParseMigrateCommand(raw string) (MigrateCommand, error) {
	switch cmd := MigrateCommand(strings.ToLower(strings.TrimSpace(raw))); cmd {
	case "":
		return MigrateUp, nil
	case MigrateUp, MigrateDown, MigrateStatus:
		return cmd, nil
	default:
		return "", fmt.Errorf("unknown migrate command %q", raw)
	}
}

// RunMigrations applies embedded SQL migrations via goose. If database is nil, it's a no-op.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	return Migrate(ctx, database, MigrateUp)
}

// Migrate runs the given goose command against the embedded migrations.
func Migrate(ctx context.Context, database *sql.DB, cmd MigrateCommand) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	switch cmd {
	case MigrateUp:
		return goose.UpContext(ctx, database, "migrations")
	case MigrateDown:
		return goose.DownContext(ctx, database, "migrations")
	case MigrateStatus:
		return goose.StatusContext(ctx, database, "migrations")
	default:
		return fmt.Errorf("unknown migrate command %q", cmd)
	}
}
