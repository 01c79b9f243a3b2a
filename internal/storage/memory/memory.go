// Package memory keeps the whole dataset in process memory. It backs the test
// suite and the "memory" storage driver for local runs.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"myflix/proj/internal/domain/filters"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"

	"github.com/google/uuid"
)

type Storage struct {
	mu     sync.RWMutex
	movies []models.Movie
	users  []models.User
}

func New(movies ...models.Movie) *Storage {
	s := &Storage{}
	for _, m := range movies {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		s.movies = append(s.movies, m)
	}
	return s
}

func cloneUser(u models.User) *models.User {
	u.FavoriteMovieIDs = slices.Clone(u.FavoriteMovieIDs)
	if u.FavoriteMovieIDs == nil {
		u.FavoriteMovieIDs = []string{}
	}
	if u.Birthday != nil {
		b := *u.Birthday
		u.Birthday = &b
	}
	return &u
}

func (s *Storage) ListMovies(ctx context.Context, f filters.MovieFilters) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	movies := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if f.Featured != nil && m.Featured != *f.Featured {
			continue
		}
		if f.Genre != "" && m.Genre.Name != f.Genre {
			continue
		}
		if f.Director != "" && m.Director.Name != f.Director {
			continue
		}
		movies = append(movies, m)
	}
	if f.IsSorted() {
		desc := f.SortDirection() == filters.DescSort
		column := f.SortColumn()
		sort.SliceStable(movies, func(i, j int) bool {
			c := compareMovies(&movies[i], &movies[j], column)
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	return movies, nil
}

func compareMovies(a, b *models.Movie, column string) int {
	switch column {
	case "featured":
		switch {
		case a.Featured == b.Featured:
			return 0
		case a.Featured:
			return 1
		default:
			return -1
		}
	case "id":
		return strings.Compare(a.ID, b.ID)
	default:
		return strings.Compare(a.Title, b.Title)
	}
}

// findMovie returns the matching movie that sorts first by title, then id.
func (s *Storage) findMovie(match func(m *models.Movie) bool) (*models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *models.Movie
	for i := range s.movies {
		m := &s.movies[i]
		if !match(m) {
			continue
		}
		if found == nil || compareMovies(m, found, "title") < 0 ||
			(m.Title == found.Title && m.ID < found.ID) {
			found = m
		}
	}
	if found == nil {
		return nil, storage.ErrNotFound
	}
	movie := *found
	return &movie, nil
}

func (s *Storage) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.findMovie(func(m *models.Movie) bool { return m.Title == title })
}

func (s *Storage) GetMovieByGenre(ctx context.Context, name string) (*models.Movie, error) {
	return s.findMovie(func(m *models.Movie) bool { return m.Genre.Name == name })
}

func (s *Storage) GetMovieByDirector(ctx context.Context, name string) (*models.Movie, error) {
	return s.findMovie(func(m *models.Movie) bool { return m.Director.Name == name })
}

// indexOf must be called with the lock held.
func (s *Storage) indexOf(username string) int {
	return slices.IndexFunc(s.users, func(u models.User) bool { return u.Username == username })
}

func (s *Storage) GetUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(username)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	return cloneUser(s.users[i]), nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

func (s *Storage) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(user.Username) >= 0 {
		return nil, storage.ErrConflict
	}
	u := cloneUser(*user)
	u.ID = uuid.NewString()
	s.users = append(s.users, *u)
	return cloneUser(*u), nil
}

func (s *Storage) UpdateUser(ctx context.Context, username string, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(username)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	if user.Username != username && s.indexOf(user.Username) >= 0 {
		return nil, storage.ErrConflict
	}
	current := &s.users[i]
	current.Username = user.Username
	current.PasswordHash = user.PasswordHash
	current.Email = user.Email
	current.Birthday = cloneUser(*user).Birthday
	return cloneUser(*current), nil
}

func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(username)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.users = slices.Delete(s.users, i, i+1)
	return nil
}

func (s *Storage) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(username)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	s.users[i].FavoriteMovieIDs = append(s.users[i].FavoriteMovieIDs, movieID)
	return cloneUser(s.users[i]), nil
}

func (s *Storage) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(username)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	s.users[i].FavoriteMovieIDs = slices.DeleteFunc(s.users[i].FavoriteMovieIDs, func(id string) bool {
		return id == movieID
	})
	return cloneUser(s.users[i]), nil
}

func (s *Storage) Close() error {
	return nil
}
