// Package migrations embeds the goose SQL migrations for both supported
// database dialects and applies them at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the schema up to date for the given driver ("pgx" or
// "sqlite3"). The embedded migration set is chosen per dialect because the
// two backends disagree on id generation and column types.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dir := "sqlite"
	if driver == "pgx" {
		dir = "postgres"
	}

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
