// Package reviews provides database operations for review management.
//
// This package implements the ReviewStore interface defined in
// internal/http/reviews.go. Reviews are keyed by the reviewed book's ID:
// the reviews table has no independent primary key, which makes the
// book-review relation one-to-one by construction.
package reviews

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

// Repository handles all review database operations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type reviewRow struct {
	BookID         int64     `db:"book_id"`
	Content        string    `db:"content"`
	CreatedAt      time.Time `db:"created_at"`
	Title          string    `db:"title"`
	Author         string    `db:"author"`
	BookCreatedAt  time.Time `db:"book_created_at"`
	GenreID        int64     `db:"genre_id"`
	GenreName      string    `db:"genre_name"`
	GenreCreatedAt time.Time `db:"genre_created_at"`
}

func (row reviewRow) toEntity() entities.Review {
	return entities.Review{
		ID:        row.BookID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		Book: entities.Book{
			ID:        row.BookID,
			Title:     row.Title,
			Author:    row.Author,
			CreatedAt: row.BookCreatedAt,
			Genre: entities.Genre{
				ID:        row.GenreID,
				Name:      row.GenreName,
				CreatedAt: row.GenreCreatedAt,
			},
		},
	}
}

func selectReviews() sq.SelectBuilder {
	return sq.Select(
		"reviews.book_id", "reviews.content", "reviews.created_at",
		"books.title", "books.author", "books.created_at AS book_created_at",
		"genres.id AS genre_id", "genres.name AS genre_name",
		"genres.created_at AS genre_created_at",
	).
		From("reviews").
		Join("books ON books.id = reviews.book_id").
		Join("genres ON genres.id = books.genre_id")
}

// List returns one page of reviews ordered by the reviewed book's id.
func (r *Repository) List(page int) ([]entities.Review, error) {
	query, args, err := selectReviews().
		OrderBy("reviews.book_id").
		Limit(database.RowsPerPage).
		Offset(uint64(page-1) * database.RowsPerPage).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reviews query: %w", err)
	}

	rows := []reviewRow{}
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}

	reviews := make([]entities.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.toEntity())
	}
	return reviews, nil
}

// GetByID retrieves the review of the book with the given ID.
func (r *Repository) GetByID(id int64) (*entities.Review, error) {
	query, args, err := selectReviews().Where(sq.Eq{"reviews.book_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review query: %w", err)
	}

	var row reviewRow
	err = r.db.Get(&row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	review := row.toEntity()
	return &review, nil
}

// Save inserts the review, assigning the creation timestamp. No ID is
// generated: the review's ID is the reviewed book's ID, populated on the
// entity after a successful insert.
func (r *Repository) Save(review *entities.Review) error {
	now := time.Now().UTC()

	_, err := r.db.Exec(
		`INSERT INTO reviews (book_id, content, created_at) VALUES (?, ?, ?)`,
		review.Book.ID, review.Content, now,
	)
	if err != nil {
		return database.WrapError(err)
	}

	review.ID = review.Book.ID
	review.CreatedAt = now
	return nil
}

// Update replaces the review's content. The key and creation timestamp are
// immutable.
func (r *Repository) Update(review *entities.Review, id int64) error {
	_, err := r.db.Exec(`UPDATE reviews SET content = ? WHERE book_id = ?`, review.Content, id)
	if err != nil {
		return database.WrapError(err)
	}

	review.ID = review.Book.ID
	return nil
}

// DeleteByID removes the review of the book with the given ID.
func (r *Repository) DeleteByID(id int64) error {
	_, err := r.db.Exec(`DELETE FROM reviews WHERE book_id = ?`, id)
	return database.WrapError(err)
}
