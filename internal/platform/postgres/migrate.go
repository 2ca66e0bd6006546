package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/swapi-gateway/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the table goose uses to track applied versions.
const MigrationTableName = "schema_migrations"

// Supported migration commands.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// slogGooseLogger routes goose output through slog.
type slogGooseLogger struct {
	log *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}

// Migrate runs a goose command against db using the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "migrations"), slog.String("command", command))

	goose.SetBaseFS(migrations.FS)
	goose.SetTableName(MigrationTableName)
	goose.SetLogger(&slogGooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch command {
	case MigrateUp:
		if err := goose.UpContext(ctx, db, "."); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
	case MigrateDown:
		if err := goose.DownContext(ctx, db, "."); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	case MigrateStatus:
		if err := goose.StatusContext(ctx, db, "."); err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
	case MigrateVersion:
		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("migrate version: %w", err)
		}
		log.Info("current schema version", slog.Int64("version", version))
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	log.Info("migration command completed")
	return nil
}
