// Package storage persists the results of the latest sync. The parse engine
// itself is storage-free; this layer only consumes its output arrays.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL keeps reads cheap while a sync replaces the tables
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

// Migrate runs database migrations
func (db *DB) Migrate() error {
	migrations := []string{
		createAssetsTable,
		createPositionsTable,
		createTradesTable,
		createNetWorthTable,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Decimal columns are TEXT: shopspring decimals round-trip exactly through
// their string form, floats do not.

const createAssetsTable = `
CREATE TABLE IF NOT EXISTS assets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	value TEXT NOT NULL,
	currency TEXT NOT NULL,
	updated TEXT,
	source_row INTEGER NOT NULL
);
`

const createPositionsTable = `
CREATE TABLE IF NOT EXISTS positions (
	id TEXT PRIMARY KEY,
	ticker TEXT NOT NULL,
	name TEXT,
	quantity TEXT NOT NULL,
	avg_cost TEXT NOT NULL,
	current_price TEXT NOT NULL,
	account_name TEXT,
	asset_class TEXT,
	market_value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_positions_ticker ON positions(ticker);
`

const createTradesTable = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	date TEXT,
	ticker TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity TEXT NOT NULL,
	price TEXT NOT NULL,
	total TEXT NOT NULL,
	fee TEXT NOT NULL,
	market_price TEXT NOT NULL,
	source_row INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_ticker ON trades(ticker);
`

const createNetWorthTable = `
CREATE TABLE IF NOT EXISTS networth_log (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_networth_date ON networth_log(date);
`
