package database

import (
	"time"

	"github.com/rs/zerolog/log"
)

var defaultGenres = []string{
	"Popular science", "Historical fiction", "Mystery", "Young adult", "Adventure",
	"Graphic novel", "History", "Religious", "Science fiction", "Fantasy", "Memoir",
	"Dystopian", "Short story", "Magical Realism", "Humor", "Paranormal", "Horror",
	"Romance", "Contemporary", "Thriller", "Classics", "Suspense", "Poetry", "Satire",
}

var defaultBooks = [][3]string{
	{"Surely You're Joking, Mr. Feynman!", "Richard Phillips Feynman", "Humor"},
	{"Harry Potter and the Sorcerer's Stone", "Joanne Rowling", "Fantasy"},
	{"Code: The Hidden Language of Computer Hardware and Software", "Charles Petzold", "Popular science"},
}

// Seed inserts the default genres and books. Rows that already exist are
// left untouched, so reseeding an existing database is a no-op.
func (d *Database) Seed() error {
	now := time.Now().UTC()

	for _, name := range defaultGenres {
		_, err := d.DB.Exec(
			`INSERT OR IGNORE INTO genres (name, created_at) VALUES (?, ?)`,
			name, now,
		)
		if err != nil {
			return WrapError(err)
		}
	}

	for _, book := range defaultBooks {
		title, author, genreName := book[0], book[1], book[2]
		_, err := d.DB.Exec(
			`INSERT OR IGNORE INTO books (title, author, genre_id, created_at)
			 SELECT ?, ?, id, ? FROM genres WHERE name = ?`,
			title, author, now, genreName,
		)
		if err != nil {
			return WrapError(err)
		}
	}

	log.Info().
		Int("genres", len(defaultGenres)).
		Int("books", len(defaultBooks)).
		Msg("seeded default catalog data")

	return nil
}
