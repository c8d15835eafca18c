// Package books provides database operations for book management.
//
// This package implements the BookStore interface defined in
// internal/http/books.go. Every read resolves the owning genre with a join,
// so returned books always carry a fully populated Genre.
package books

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

// Repository handles all book database operations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// bookRow is the flattened shape of a book joined to its genre.
type bookRow struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	Author         string    `db:"author"`
	CreatedAt      time.Time `db:"created_at"`
	GenreID        int64     `db:"genre_id"`
	GenreName      string    `db:"genre_name"`
	GenreCreatedAt time.Time `db:"genre_created_at"`
}

func (row bookRow) toEntity() entities.Book {
	return entities.Book{
		ID:        row.ID,
		Title:     row.Title,
		Author:    row.Author,
		CreatedAt: row.CreatedAt,
		Genre: entities.Genre{
			ID:        row.GenreID,
			Name:      row.GenreName,
			CreatedAt: row.GenreCreatedAt,
		},
	}
}

func selectBooks() sq.SelectBuilder {
	return sq.Select(
		"books.id", "books.title", "books.author", "books.created_at",
		"genres.id AS genre_id", "genres.name AS genre_name",
		"genres.created_at AS genre_created_at",
	).
		From("books").
		Join("genres ON genres.id = books.genre_id")
}

// List returns one page of books ordered by id.
func (r *Repository) List(page int) ([]entities.Book, error) {
	return r.list(page, nil)
}

// ListByAuthor returns one page of books whose author matches exactly.
func (r *Repository) ListByAuthor(author string, page int) ([]entities.Book, error) {
	return r.list(page, sq.Eq{"books.author": author})
}

// ListByGenre returns one page of books whose genre name matches exactly.
func (r *Repository) ListByGenre(genreName string, page int) ([]entities.Book, error) {
	return r.list(page, sq.Eq{"genres.name": genreName})
}

func (r *Repository) list(page int, where any) ([]entities.Book, error) {
	builder := selectBooks().
		OrderBy("books.id").
		Limit(database.RowsPerPage).
		Offset(uint64(page-1) * database.RowsPerPage)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build books query: %w", err)
	}

	rows := []bookRow{}
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toEntity())
	}
	return books, nil
}

// GetByID retrieves a book by its ID.
func (r *Repository) GetByID(id int64) (*entities.Book, error) {
	return r.getOne(sq.Eq{"books.id": id})
}

// GetByTitle retrieves a book by its exact title.
func (r *Repository) GetByTitle(title string) (*entities.Book, error) {
	return r.getOne(sq.Eq{"books.title": title})
}

func (r *Repository) getOne(where any) (*entities.Book, error) {
	query, args, err := selectBooks().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build book query: %w", err)
	}

	var row bookRow
	err = r.db.Get(&row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	book := row.toEntity()
	return &book, nil
}

// Save inserts the book, assigning the creation timestamp and the
// store-generated ID. The referenced genre must already exist; a write
// against a missing genre fails with a ConstraintError.
func (r *Repository) Save(book *entities.Book) error {
	now := time.Now().UTC()

	result, err := r.db.Exec(
		`INSERT INTO books (title, author, genre_id, created_at) VALUES (?, ?, ?, ?)`,
		book.Title, book.Author, book.Genre.ID, now,
	)
	if err != nil {
		return database.WrapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("store did not return an id after insert: %w", err)
	}

	book.ID = id
	book.CreatedAt = now
	return nil
}

// Update replaces the book's mutable columns: title, author and genre
// reference. The ID and creation timestamp are immutable.
func (r *Repository) Update(book *entities.Book, id int64) error {
	_, err := r.db.Exec(
		`UPDATE books SET title = ?, author = ?, genre_id = ? WHERE id = ?`,
		book.Title, book.Author, book.Genre.ID, id,
	)
	if err != nil {
		return database.WrapError(err)
	}

	book.ID = id
	return nil
}

// DeleteByID removes the book. The store cascades the delete to the book's
// review, if any.
func (r *Repository) DeleteByID(id int64) error {
	_, err := r.db.Exec(`DELETE FROM books WHERE id = ?`, id)
	return database.WrapError(err)
}
