package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/dashkov/book-catalog/internal/database"
	"github.com/dashkov/book-catalog/internal/entities"
)

// GenreStore is implemented by internal/database/genres.Repository.
type GenreStore interface {
	List(page int) ([]entities.Genre, error)
	GetByID(id int64) (*entities.Genre, error)
	GetByName(name string) (*entities.Genre, error)
	Save(genre *entities.Genre) error
	Update(genre *entities.Genre, id int64) error
	DeleteByID(id int64) error
}

type GenresController struct {
	store GenreStore
}

func NewGenresController(store GenreStore) *GenresController {
	return &GenresController{store: store}
}

func (controller *GenresController) List(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	genres, err := controller.store.List(page)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(genres, func(genre entities.Genre, _ int) GenreDTO {
		return toGenreDTO(genre)
	}))
}

func (controller *GenresController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	genre, err := controller.store.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "genre")
		return
	}
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGenreDTO(*genre))
}

func (controller *GenresController) Create(c *gin.Context) {
	name, ok := requireQuery(c, "name")
	if !ok {
		return
	}

	genre := &entities.Genre{Name: name}
	if err := controller.store.Save(genre); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGenreDTO(*genre))
}

func (controller *GenresController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	name, ok := requireQuery(c, "name")
	if !ok {
		return
	}

	genre := &entities.Genre{Name: name}
	if err := controller.store.Update(genre, id); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGenreDTO(*genre))
}

func (controller *GenresController) Delete(c *gin.Context) {
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
