package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/dashkov/book-catalog/internal/database"
	"github.com/dashkov/book-catalog/internal/entities"
)

// ReviewStore is implemented by internal/database/reviews.Repository.
type ReviewStore interface {
	List(page int) ([]entities.Review, error)
	GetByID(id int64) (*entities.Review, error)
	Save(review *entities.Review) error
	Update(review *entities.Review, id int64) error
	DeleteByID(id int64) error
}

// BookFinder resolves the book a review belongs to: by title on create, by
// the path id on update. internal/database/books.Repository implements it.
type BookFinder interface {
	GetByID(id int64) (*entities.Book, error)
	GetByTitle(title string) (*entities.Book, error)
}

type ReviewsController struct {
	store ReviewStore
	books BookFinder
}

func NewReviewsController(store ReviewStore, books BookFinder) *ReviewsController {
	return &ReviewsController{store: store, books: books}
}

func (controller *ReviewsController) List(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	reviews, err := controller.store.List(page)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(reviews, func(review entities.Review, _ int) ReviewDTO {
		return toReviewDTO(review)
	}))
}

func (controller *ReviewsController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	review, err := controller.store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "review")
		return
	}
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewDTO(*review))
}

func (controller *ReviewsController) Create(c *gin.Context) {
	bookTitle, ok := requireQuery(c, "bookTitle")
	if !ok {
		return
	}
	content, ok := requireQuery(c, "content")
	if !ok {
		return
	}

	book, err := controller.books.GetByTitle(bookTitle)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err)
		return
	}

	review := &entities.Review{Content: content, Book: *book}
	if err := controller.store.Save(review); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReviewDTO(*review))
}

func (controller *ReviewsController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	content, ok := requireQuery(c, "content")
	if !ok {
		return
	}

	book, err := controller.books.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err)
		return
	}

	review := &entities.Review{Content: content, Book: *book}
	if err := controller.store.Update(review, id); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewDTO(*review))
}

func (controller *ReviewsController) Delete(c *gin.Context) {
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
