package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/dashkov/book-catalog/internal/database"
	"github.com/dashkov/book-catalog/internal/entities"
)

// BookStore is implemented by internal/database/books.Repository.
type BookStore interface {
	List(page int) ([]entities.Book, error)
	ListByAuthor(author string, page int) ([]entities.Book, error)
	ListByGenre(genreName string, page int) ([]entities.Book, error)
	GetByID(id int64) (*entities.Book, error)
	GetByTitle(title string) (*entities.Book, error)
	Save(book *entities.Book) error
	Update(book *entities.Book, id int64) error
	DeleteByID(id int64) error
}

// GenreFinder resolves the genre name carried by book create/update
// requests. internal/database/genres.Repository implements it.
type GenreFinder interface {
	GetByName(name string) (*entities.Genre, error)
}

type BooksController struct {
	store  BookStore
	genres GenreFinder
}

func NewBooksController(store BookStore, genres GenreFinder) *BooksController {
	return &BooksController{store: store, genres: genres}
}

// List supports two mutually exclusive equality filters, author and genre.
// When both are supplied the author filter wins.
func (controller *BooksController) List(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	var (
		books []entities.Book
		err   error
	)
	switch {
	case c.Query("author") != "":
		books, err = controller.store.ListByAuthor(c.Query("author"), page)
	case c.Query("genre") != "":
		books, err = controller.store.ListByGenre(c.Query("genre"), page)
	default:
		books, err = controller.store.List(page)
	}
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(books, func(book entities.Book, _ int) BookDTO {
		return toBookDTO(book)
	}))
}

func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookDTO(*book))
}

func (controller *BooksController) Create(c *gin.Context) {
	book, ok := controller.bookFromQuery(c)
	if !ok {
		return
	}

	if err := controller.store.Save(book); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookDTO(*book))
}

func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	book, ok := controller.bookFromQuery(c)
	if !ok {
		return
	}

	if err := controller.store.Update(book, id); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookDTO(*book))
}

func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := controller.store.DeleteByID(id); err != nil {
		respondInternalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bookFromQuery builds a book from the request's query parameters,
// resolving the genre by name. Resolution failure fails the whole
// operation with a 404 before anything is written.
func (controller *BooksController) bookFromQuery(c *gin.Context) (*entities.Book, bool) {
	title, ok := requireQuery(c, "title")
	if !ok {
		return nil, false
	}
	author, ok := requireQuery(c, "author")
	if !ok {
		return nil, false
	}
	genreName, ok := requireQuery(c, "genreName")
	if !ok {
		return nil, false
	}

	genre, err := controller.genres.GetByName(genreName)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "genre")
		return nil, false
	}
	if err != nil {
		respondInternalError(c, err)
		return nil, false
	}

	return &entities.Book{Title: title, Author: author, Genre: *genre}, true
}
