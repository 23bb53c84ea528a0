// Package migrations embeds the schema of the local contact store and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a database.
var ErrNilDB = errors.New("db is nil")

// Migrate brings the schema up to date and returns the number of
// migrations it applied. dialect is "sqlite3" or "postgres".
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", ErrNilDB)
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error setting dialect %q: %w", dialect, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
