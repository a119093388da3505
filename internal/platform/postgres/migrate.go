package postgres

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	dbfs "github.com/Yashshinde43/tinyurl/db"
)

// Migrate applies the embedded schema migrations. It runs during app
// construction, before traffic is served, so concurrent first requests
// never race schema setup. Goose itself is idempotent across restarts.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(dbfs.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
