package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// RowsPerPage is the fixed page size for every listing operation.
const RowsPerPage = 10

const schema = `
CREATE TABLE IF NOT EXISTS genres (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS books (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL UNIQUE,
    author     TEXT NOT NULL,
    genre_id   INTEGER NOT NULL REFERENCES genres (id) ON DELETE RESTRICT,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS reviews (
    book_id    INTEGER PRIMARY KEY REFERENCES books (id) ON DELETE CASCADE,
    content    TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

type Database struct {
	DB *sqlx.DB
}

// NewDatabase opens the SQLite store at dbPath with foreign keys enforced
// and bootstraps the schema. The returned handle is a pool safe for
// concurrent use by many simultaneous requests.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("database initialized")

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}
