// Package genres provides database operations for genre management.
//
// This package implements the GenreStore interface defined in
// internal/http/genres.go.
package genres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/dashkov/book-catalog/internal/database"
	"github.com/dashkov/book-catalog/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// List returns one page of genres ordered by id. Pages are 1-based and
// RowsPerPage long.
func (r *Repository) List(page int) ([]entities.Genre, error) {
	query, args, err := sq.Select("id", "name", "created_at").
		From("genres").
		OrderBy("id").
		Limit(database.RowsPerPage).
		Offset(uint64(page-1) * database.RowsPerPage).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build genres query: %w", err)
	}

	genres := []entities.Genre{}
	if err := r.db.Select(&genres, query, args...); err != nil {
		return nil, err
	}
	return genres, nil
}

// GetByID retrieves a genre by its ID.
func (r *Repository) GetByID(id int64) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Get(&genre, `SELECT id, name, created_at FROM genres WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetByName retrieves a genre by its exact name.
func (r *Repository) GetByName(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Get(&genre, `SELECT id, name, created_at FROM genres WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// Save inserts the genre, assigning the creation timestamp and the
// store-generated ID. On failure the genre is left unmodified.
func (r *Repository) Save(genre *entities.Genre) error {
	now := time.Now().UTC()

	result, err := r.db.Exec(
		`INSERT INTO genres (name, created_at) VALUES (?, ?)`,
		genre.Name, now,
	)
	if err != nil {
		return database.WrapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("store did not return an id after insert: %w", err)
	}

	genre.ID = id
	genre.CreatedAt = now
	return nil
}

// Update replaces the genre's mutable columns. The ID and creation
// timestamp are immutable.
func (r *Repository) Update(genre *entities.Genre, id int64) error {
	_, err := r.db.Exec(`UPDATE genres SET name = ? WHERE id = ?`, genre.Name, id)
	if err != nil {
		return database.WrapError(err)
	}

	genre.ID = id
	return nil
}

// DeleteByID removes the genre. Deleting a genre still referenced by a book
// fails with a ConstraintError and leaves everything intact.
func (r *Repository) DeleteByID(id int64) error {
	_, err := r.db.Exec(`DELETE FROM genres WHERE id = ?`, id)
	return database.WrapError(err)
}
