package memory

import (
	"context"
	"sync"
	"testing"

	"myflix/proj/internal/domain/filters"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovies(t *testing.T) {
	ctx := context.Background()
	s := New(SeedMovies()...)

	t.Run("list all", func(t *testing.T) {
		movies, err := s.ListMovies(ctx, filters.MovieFilters{})
		require.NoError(t, err)
		assert.Len(t, movies, len(SeedMovies()))
	})
	t.Run("list filtered and sorted", func(t *testing.T) {
		featured := true
		movies, err := s.ListMovies(ctx, filters.MovieFilters{Featured: &featured, Sort: "-title"})
		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, "Inception", movies[0].Title)
		assert.Equal(t, "Fight Club", movies[1].Title)

		movies, err = s.ListMovies(ctx, filters.MovieFilters{Director: "David Fincher"})
		require.NoError(t, err)
		assert.Len(t, movies, 2)
	})
	t.Run("title lookup is exact", func(t *testing.T) {
		m, err := s.GetMovieByTitle(ctx, "Memento")
		require.NoError(t, err)
		assert.Equal(t, "Christopher Nolan", m.Director.Name)

		_, err = s.GetMovieByTitle(ctx, "memento")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
	t.Run("genre and director lookups", func(t *testing.T) {
		m, err := s.GetMovieByGenre(ctx, "Thriller")
		require.NoError(t, err)
		assert.Equal(t, "Thriller", m.Genre.Name)

		m, err = s.GetMovieByDirector(ctx, "David Fincher")
		require.NoError(t, err)
		assert.Equal(t, "David Fincher", m.Director.Name)

		_, err = s.GetMovieByDirector(ctx, "Nobody")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestProjectionPicksFirstByTitle(t *testing.T) {
	ctx := context.Background()
	noir := models.Genre{Name: "Noir", Description: "first seen"}
	s := New(
		models.Movie{ID: "3", Title: "Touch of Evil", Genre: noir, Director: models.Director{Name: "Orson Welles", Bio: "later"}},
		models.Movie{ID: "2", Title: "Chinatown", Genre: models.Genre{Name: "Noir", Description: "by title"}},
		models.Movie{ID: "1", Title: "Chinatown", Genre: models.Genre{Name: "Noir", Description: "by title and id"}},
	)

	m, err := s.GetMovieByGenre(ctx, "Noir")
	require.NoError(t, err)
	assert.Equal(t, "1", m.ID)
	assert.Equal(t, "by title and id", m.Genre.Description)

	m, err = s.GetMovieByDirector(ctx, "Orson Welles")
	require.NoError(t, err)
	assert.Equal(t, "Touch of Evil", m.Title)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := New()

	created, err := s.InsertUser(ctx, &models.User{Username: "alice123", PasswordHash: "hash", Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.FavoriteMovieIDs)

	_, err = s.InsertUser(ctx, &models.User{Username: "alice123", PasswordHash: "other"})
	assert.ErrorIs(t, err, storage.ErrConflict)
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	t.Run("favorites", func(t *testing.T) {
		_, err := s.AddFavorite(ctx, "alice123", "m1")
		require.NoError(t, err)
		u, err := s.AddFavorite(ctx, "alice123", "m1")
		require.NoError(t, err)
		assert.Equal(t, []string{"m1", "m1"}, u.FavoriteMovieIDs)

		u, err = s.RemoveFavorite(ctx, "alice123", "m1")
		require.NoError(t, err)
		assert.Empty(t, u.FavoriteMovieIDs)

		u, err = s.RemoveFavorite(ctx, "alice123", "never-added")
		require.NoError(t, err)
		assert.Empty(t, u.FavoriteMovieIDs)

		_, err = s.AddFavorite(ctx, "ghost", "m1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("returned users are copies", func(t *testing.T) {
		u, err := s.GetUser(ctx, "alice123")
		require.NoError(t, err)
		u.FavoriteMovieIDs = append(u.FavoriteMovieIDs, "leak")
		u, err = s.GetUser(ctx, "alice123")
		require.NoError(t, err)
		assert.NotContains(t, u.FavoriteMovieIDs, "leak")
	})

	t.Run("update", func(t *testing.T) {
		_, err := s.InsertUser(ctx, &models.User{Username: "bobby", PasswordHash: "h"})
		require.NoError(t, err)

		_, err = s.UpdateUser(ctx, "alice123", &models.User{Username: "bobby"})
		assert.ErrorIs(t, err, storage.ErrConflict)

		u, err := s.UpdateUser(ctx, "alice123", &models.User{Username: "alice456", PasswordHash: "h2", Email: "b@x.com"})
		require.NoError(t, err)
		assert.Equal(t, "alice456", u.Username)
		assert.Equal(t, "b@x.com", u.Email)

		_, err = s.GetUser(ctx, "alice123")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = s.UpdateUser(ctx, "alice123", &models.User{Username: "alice123"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteUser(ctx, "bobby"))
		assert.ErrorIs(t, s.DeleteUser(ctx, "bobby"), storage.ErrNotFound)
	})
}

func TestConcurrentFavorites(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.InsertUser(ctx, &models.User{Username: "carol"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddFavorite(ctx, "carol", "m")
		}()
	}
	wg.Wait()
	u, err := s.GetUser(ctx, "carol")
	require.NoError(t, err)
	assert.Len(t, u.FavoriteMovieIDs, 50)
}
