package genres

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashkov/book-catalog/internal/database"
	"github.com/dashkov/book-catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "genres_test.db")
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db.DB)

	cleanup := func() {
		db.Close()
	}

	return repo, cleanup
}

func TestRepository_Save(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	genre := &entities.Genre{Name: "Horror"}
	err := repo.Save(genre)

	require.NoError(t, err)
	assert.Equal(t, int64(1), genre.ID)
	assert.False(t, genre.CreatedAt.IsZero())
}

func TestRepository_Save_DuplicateName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Save(&entities.Genre{Name: "Horror"}))

	dup := &entities.Genre{Name: "Horror"}
	err := repo.Save(dup)

	require.Error(t, err)
	assert.True(t, database.IsConstraint(err))
	assert.Zero(t, dup.ID, "a failed save must not assign an id")
}

func TestRepository_GetByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	saved := &entities.Genre{Name: "Fantasy"}
	require.NoError(t, repo.Save(saved))

	got, err := repo.GetByID(saved.ID)

	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Fantasy", got.Name)
	assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, time.Second)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByID(42)

	assert.True(t, errors.Is(err, database.ErrNotFound))
}

func TestRepository_GetByName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	saved := &entities.Genre{Name: "Mystery"}
	require.NoError(t, repo.Save(saved))

	got, err := repo.GetByName("Mystery")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = repo.GetByName("No Such Genre")
	assert.True(t, errors.Is(err, database.ErrNotFound))
}

func TestRepository_List_Pagination(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Save(&entities.Genre{Name: fmt.Sprintf("Genre %02d", i)}))
	}

	page1, err := repo.List(1)
	require.NoError(t, err)
	require.Len(t, page1, 10)

	page2, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, page2, 2)

	// Ordering by id is stable and total across pages
	assert.Equal(t, int64(1), page1[0].ID)
	assert.Equal(t, int64(10), page1[9].ID)
	assert.Equal(t, int64(11), page2[0].ID)

	page3, err := repo.List(3)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	saved := &entities.Genre{Name: "Romanse"}
	require.NoError(t, repo.Save(saved))

	updated := &entities.Genre{Name: "Romance"}
	require.NoError(t, repo.Update(updated, saved.ID))
	assert.Equal(t, saved.ID, updated.ID)

	got, err := repo.GetByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Romance", got.Name)
}

func TestRepository_DeleteByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	saved := &entities.Genre{Name: "Satire"}
	require.NoError(t, repo.Save(saved))

	require.NoError(t, repo.DeleteByID(saved.ID))

	_, err := repo.GetByID(saved.ID)
	assert.True(t, errors.Is(err, database.ErrNotFound))
}
