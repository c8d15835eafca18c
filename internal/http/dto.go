package http

import "github.com/dashkov/book-catalog/internal/entities"

// Wire representations. Books flatten their genre to its name and reviews
// flatten their book to title+author; nothing is nested. This shape is the
// compatibility contract of the service and must not change.

type GenreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	GenreName string `json:"genreName"`
}

type ReviewDTO struct {
	ID         int64  `json:"id"`
	BookTitle  string `json:"bookTitle"`
	BookAuthor string `json:"bookAuthor"`
	Content    string `json:"content"`
}

func toGenreDTO(genre entities.Genre) GenreDTO {
	return GenreDTO{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func toBookDTO(book entities.Book) BookDTO {
	return BookDTO{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		GenreName: book.Genre.Name,
	}
}

func toReviewDTO(review entities.Review) ReviewDTO {
	return ReviewDTO{
		ID:         review.ID,
		BookTitle:  review.Book.Title,
		BookAuthor: review.Book.Author,
		Content:    review.Content,
	}
}
