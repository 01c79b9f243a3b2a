package movies

import (
	"context"
	"errors"
	"log/slog"

	"myflix/proj/internal/domain/filters"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"
)

type MoviesStorage interface {
	ListMovies(ctx context.Context, f filters.MovieFilters) ([]models.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error)
	GetMovieByGenre(ctx context.Context, name string) (*models.Movie, error)
	GetMovieByDirector(ctx context.Context, name string) (*models.Movie, error)
}

type MovieService struct {
	log     *slog.Logger
	storage MoviesStorage
}

func New(log *slog.Logger, storage MoviesStorage) *MovieService {
	return &MovieService{
		log:     log,
		storage: storage,
	}
}

func (s *MovieService) List(ctx context.Context, f filters.MovieFilters) ([]models.Movie, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op)
	movies, err := s.storage.ListMovies(ctx, f)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	const op = "movies.MovieService.GetByTitle"
	log := s.log.With("op", op, "title", title)
	movie, err := s.storage.GetMovieByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

// GetGenre projects the genre of the first movie carrying that genre name.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	const op = "movies.MovieService.GetGenre"
	log := s.log.With("op", op, "genre", name)
	movie, err := s.storage.GetMovieByGenre(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("genre not found")
			return nil, ErrGenreNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return &movie.Genre, nil
}

func (s *MovieService) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	const op = "movies.MovieService.GetDirector"
	log := s.log.With("op", op, "director", name)
	movie, err := s.storage.GetMovieByDirector(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("director not found")
			return nil, ErrDirectorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return &movie.Director, nil
}
