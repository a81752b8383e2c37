package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
)

// schema creates the three tables the service owns. Constraints mirror the
// invariants the services rely on: unique usernames/emails/sweet names,
// non-negative price and stock, strictly positive purchase quantity.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	email TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user' CHECK(role IN ('user', 'admin')),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sweets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	category TEXT NOT NULL,
	price REAL NOT NULL CHECK(price >= 0),
	quantity REAL NOT NULL DEFAULT 0 CHECK(quantity >= 0),
	image_url TEXT,
	description TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS purchases (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	sweet_id INTEGER NOT NULL,
	sweet_name TEXT NOT NULL,
	category TEXT NOT NULL,
	price REAL NOT NULL,
	quantity REAL NOT NULL CHECK(quantity > 0),
	total_amount REAL NOT NULL,
	purchased_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (sweet_id) REFERENCES sweets(id)
);
`

// Open connects to the SQLite database at path. Use ":memory:" for tests.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// under concurrent requests and keeps :memory: databases shared.
	db.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Log.Errorw("failed to create schema", "error", err)
		return err
	}
	logger.Log.Info("database schema ready")
	return nil
}
