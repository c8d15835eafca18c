package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to online notepad My Books"

// RouterConfig carries the repositories the controllers are built on.
type RouterConfig struct {
	Genres  GenreStore
	Books   BookStore
	Reviews ReviewStore
}

// NewRouter creates and configures the HTTP router.
//
// Every resource follows the same resource-action scheme: the collection
// lives at /{res} and /{res}/list, items at /{res}/{id}, and writes go
// through POST with a list/edit/delete action segment. Anything outside
// this table is a 404.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, welcomeMessage)
	})

	genresController := NewGenresController(cfg.Genres)
	genres := router.Group("/genres")
	genres.GET("", genresController.List)
	genres.GET("/list", genresController.List)
	genres.GET("/:id", genresController.Get)
	genres.POST("/list", genresController.Create)
	genres.POST("/:id/edit", genresController.Update)
	genres.POST("/:id/delete", genresController.Delete)

	booksController := NewBooksController(cfg.Books, cfg.Genres)
	books := router.Group("/books")
	books.GET("", booksController.List)
	books.GET("/list", booksController.List)
	books.GET("/:id", booksController.Get)
	books.POST("/list", booksController.Create)
	books.POST("/:id/edit", booksController.Update)
	books.POST("/:id/delete", booksController.Delete)

	reviewsController := NewReviewsController(cfg.Reviews, cfg.Books)
	reviews := router.Group("/reviews")
	reviews.GET("", reviewsController.List)
	reviews.GET("/list", reviewsController.List)
	reviews.GET("/:id", reviewsController.Get)
	reviews.POST("/list", reviewsController.Create)
	reviews.POST("/:id/edit", reviewsController.Update)
	reviews.POST("/:id/delete", reviewsController.Delete)

	return router
}
