package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/ItemForge_Go/internal/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	fsys, err := fs.Sub(migrations, MigrationsDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	log := logger.FromContext(ctx)
	if len(results) == 0 {
		log.Info(LogMsgMigrationsUpToDate)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
