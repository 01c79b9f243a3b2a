package models

import (
	"context"
	"errors"
	"fmt"

	"myflix/proj/internal/domain/filters"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movieColumns = `id::text, title, description, genre_name, genre_description,
	director_name, director_bio, image_path, featured`

type movieRow struct {
	ID               string `db:"id"`
	Title            string `db:"title"`
	Description      string `db:"description"`
	GenreName        string `db:"genre_name"`
	GenreDescription string `db:"genre_description"`
	DirectorName     string `db:"director_name"`
	DirectorBio      string `db:"director_bio"`
	ImagePath        string `db:"image_path"`
	Featured         bool   `db:"featured"`
}

func (r movieRow) toDomain() models.Movie {
	return models.Movie{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Genre:       models.Genre{Name: r.GenreName, Description: r.GenreDescription},
		Director:    models.Director{Name: r.DirectorName, Bio: r.DirectorBio},
		ImagePath:   r.ImagePath,
		Featured:    r.Featured,
	}
}

type MovieModel struct {
	DB *pgxpool.Pool
}

func (m *MovieModel) ListMovies(ctx context.Context, f filters.MovieFilters) ([]models.Movie, error) {
	sortColumn, sortDirection := "id", filters.AscSort
	if f.IsSorted() {
		sortColumn, sortDirection = f.SortColumn(), f.SortDirection()
	}
	query := fmt.Sprintf(`
	SELECT %s FROM movies
	WHERE ($1::boolean IS NULL OR featured = $1)
	AND ($2 = '' OR genre_name = $2)
	AND ($3 = '' OR director_name = $3)
	ORDER BY %s %s, id ASC
	`, movieColumns, sortColumn, sortDirection)
	rows, _ := m.DB.Query(ctx, query, f.Featured, f.Genre, f.Director)
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[movieRow])
	if err != nil {
		return nil, err
	}
	movies := make([]models.Movie, 0, len(found))
	for _, row := range found {
		movies = append(movies, row.toDomain())
	}
	return movies, nil
}

// getOne returns the first movie by title matching column = value, so
// projections of a shared genre or director are stable between calls.
func (m *MovieModel) getOne(ctx context.Context, column, value string) (*models.Movie, error) {
	query := fmt.Sprintf("SELECT %s FROM movies WHERE %s = $1 ORDER BY title, id LIMIT 1", movieColumns, column)
	rows, _ := m.DB.Query(ctx, query, value)
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[movieRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	movie := row.toDomain()
	return &movie, nil
}

func (m *MovieModel) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return m.getOne(ctx, "title", title)
}

func (m *MovieModel) GetMovieByGenre(ctx context.Context, name string) (*models.Movie, error) {
	return m.getOne(ctx, "genre_name", name)
}

func (m *MovieModel) GetMovieByDirector(ctx context.Context, name string) (*models.Movie, error) {
	return m.getOne(ctx, "director_name", name)
}
