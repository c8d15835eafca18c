package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresController_Create(t *testing.T) {
	t.Run("creates a genre", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "POST", "/genres/list?name=Horror")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Horror"}`, w.Body.String())
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		performRequest(router, "POST", "/genres/list?name=Horror")
		w := performRequest(router, "POST", "/genres/list?name=Horror")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("requires a name", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "POST", "/genres/list")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenresController_Get(t *testing.T) {
	t.Run("returns a genre by id", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		performRequest(router, "POST", "/genres/list?name=Fantasy")
		w := performRequest(router, "GET", "/genres/1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Fantasy"}`, w.Body.String())
	})

	t.Run("returns 404 for a missing genre", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/genres/42")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for a malformed id", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/genres/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenresController_List(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	for i := 0; i < 12; i++ {
		name := url.QueryEscape(fmt.Sprintf("Genre %02d", i))
		w := performRequest(router, "POST", "/genres/list?name="+name)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("bare resource path lists the first page", func(t *testing.T) {
		w := performRequest(router, "GET", "/genres")

		assert.Equal(t, http.StatusOK, w.Code)
		var got []GenreDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 10)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("list action is equivalent", func(t *testing.T) {
		bare := performRequest(router, "GET", "/genres")
		listed := performRequest(router, "GET", "/genres/list")

		assert.Equal(t, bare.Body.String(), listed.Body.String())
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		w := performRequest(router, "GET", "/genres/list?page=2")

		var got []GenreDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, int64(11), got[0].ID)
	})

	t.Run("rejects a malformed page", func(t *testing.T) {
		w := performRequest(router, "GET", "/genres/list?page=zero")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenresController_Update(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	performRequest(router, "POST", "/genres/list?name=Hororr")
	w := performRequest(router, "POST", "/genres/1/edit?name=Horror")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Horror"}`, w.Body.String())

	got := performRequest(router, "GET", "/genres/1")
	assert.JSONEq(t, `{"id":1,"name":"Horror"}`, got.Body.String())
}

func TestGenresController_Delete(t *testing.T) {
	t.Run("deletes an unreferenced genre", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		performRequest(router, "POST", "/genres/list?name=Horror")
		w := performRequest(router, "POST", "/genres/1/delete")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, http.StatusNotFound, performRequest(router, "GET", "/genres/1").Code)
	})

	t.Run("fails while a book references the genre", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		performRequest(router, "POST", "/genres/list?name=Horror")
		performRequest(router, "POST", "/books/list?title=T1&author=A1&genreName=Horror")

		w := performRequest(router, "POST", "/genres/1/delete")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, http.StatusOK, performRequest(router, "GET", "/genres/1").Code)
		assert.Equal(t, http.StatusOK, performRequest(router, "GET", "/books/1").Code)
	})
}
