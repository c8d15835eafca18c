package entities

import "time"

// Genre is a book category. Names are unique across the catalog.
type Genre struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Book belongs to exactly one genre, referenced by foreign key.
// A genre does not track the books pointing at it.
type Book struct {
	ID        int64
	Title     string
	Author    string
	Genre     Genre
	CreatedAt time.Time
}

// Review is a one-to-one companion of a book. Its ID is not generated
// independently: it is always the ID of the reviewed book, so at most one
// review exists per book.
type Review struct {
	ID        int64
	Content   string
	Book      Book
	CreatedAt time.Time
}
