package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS days (
    day   INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    theme TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activities (
    id            INTEGER PRIMARY KEY,
    day           INTEGER NOT NULL REFERENCES days(day),
    position      INTEGER NOT NULL,
    time          TEXT NOT NULL,
    title         TEXT NOT NULL,
    description   TEXT NOT NULL,
    duration      TEXT,
    cost          TEXT,
    accessibility TEXT,
    link          TEXT
);

CREATE TABLE IF NOT EXISTS restaurants (
    id            INTEGER PRIMARY KEY,
    day           INTEGER NOT NULL REFERENCES days(day),
    meal          TEXT NOT NULL CHECK(meal IN ('lunch','dinner')),
    name          TEXT NOT NULL,
    cuisine       TEXT,
    price_range   TEXT,
    specialty     TEXT,
    booking       TEXT,
    accessibility TEXT,
    UNIQUE(day, meal)
);

CREATE TABLE IF NOT EXISTS notes (
    id       INTEGER PRIMARY KEY,
    day      INTEGER NOT NULL REFERENCES days(day),
    position INTEGER NOT NULL,
    body     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS accommodations (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    type          TEXT,
    price         TEXT,
    booking       TEXT,
    accessibility TEXT
);

CREATE TABLE IF NOT EXISTS accommodation_features (
    id               INTEGER PRIMARY KEY,
    accommodation_id INTEGER NOT NULL REFERENCES accommodations(id),
    feature          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(day, position);
CREATE INDEX IF NOT EXISTS idx_notes_day ON notes(day, position);
CREATE INDEX IF NOT EXISTS idx_accommodation_features_acc ON accommodation_features(accommodation_id);
`

// Open opens or creates the SQLite database and initializes the schema.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
