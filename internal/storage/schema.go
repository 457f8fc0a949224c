package storage

import (
	"database/sql"
	"fmt"
)

// schema bootstraps the tables this service needs. Statements are
// idempotent so a migrate run against an initialized database is a no-op.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS holdings (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		ticker     TEXT NOT NULL,
		quantity   DOUBLE PRECISION NOT NULL CHECK (quantity > 0),
		buy_price  DOUBLE PRECISION NOT NULL CHECK (buy_price > 0),
		source_app TEXT NOT NULL DEFAULT 'Manual',
		bought_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS holdings_user_idx ON holdings (user_id)`,
	`CREATE TABLE IF NOT EXISTS watchlist (
		id       BIGSERIAL PRIMARY KEY,
		user_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		ticker   TEXT NOT NULL,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, ticker)
	)`,
}

// Migrate applies the schema statements in order.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
