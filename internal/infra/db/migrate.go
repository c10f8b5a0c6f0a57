package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the schema if it does not exist.
// The DDL differs slightly per driver (serial vs autoincrement keys,
// timestamp types), so statements are selected by cfg driver name.
func MigrateUp(database *sql.DB, driver string) error {
	var statements []string

	switch driver {
	case "pgx":
		statements = []string{`
CREATE TABLE IF NOT EXISTS users (
    id              SERIAL PRIMARY KEY,
    email           TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    full_name       TEXT,
    active          BOOLEAN NOT NULL DEFAULT TRUE,
    superuser       BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ
)`, `
CREATE TABLE IF NOT EXISTS items (
    id          SERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT,
    owner_id    INTEGER NOT NULL REFERENCES users(id),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ
)`,
			`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
			`CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items(owner_id)`,
		}
	case "sqlite":
		statements = []string{`
CREATE TABLE IF NOT EXISTS users (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    email           TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    full_name       TEXT,
    active          BOOLEAN NOT NULL DEFAULT TRUE,
    superuser       BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at      TIMESTAMP
)`, `
CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    description TEXT,
    owner_id    INTEGER NOT NULL REFERENCES users(id),
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMP
)`,
			`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
			`CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items(owner_id)`,
		}
	default:
		return fmt.Errorf("migrate: unsupported driver %q", driver)
	}

	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// MigrateDown drops the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(database *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS items`,
		`DROP TABLE IF EXISTS users`,
	} {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}
	return nil
}
