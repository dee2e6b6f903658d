package store

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
)

const migrationsTable = "migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationSource() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
}

// Migrate applies all pending migrations and returns how many were applied.
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	migrate.SetTable(migrationsTable)

	n, err := migrate.ExecContext(ctx, db, "postgres", migrationSource(), migrate.Up)
	if err != nil {
		return n, errors.Wrap(err, "failed to apply migrations")
	}

	return n, nil
}

// MigrationFiles lists the embedded migration file names in apply order.
func MigrationFiles() ([]string, error) {
	ms, err := migrationSource().FindMigrations()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations")
	}

	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.Id)
	}

	return names, nil
}
