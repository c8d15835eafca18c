package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dashkov/book-catalog/internal/database"
	"github.com/dashkov/book-catalog/internal/database/books"
	"github.com/dashkov/book-catalog/internal/database/genres"
	"github.com/dashkov/book-catalog/internal/database/reviews"
)

func setupTestRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "http_test.db")
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Genres:  genres.NewRepository(db.DB),
		Books:   books.NewRepository(db.DB),
		Reviews: reviews.NewRepository(db.DB),
	})

	cleanup := func() {
		db.Close()
	}

	return router, cleanup
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}
