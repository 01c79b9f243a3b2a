package models

import (
	"context"
	"errors"
	"time"

	"myflix/proj/internal/domain/fields"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"
	"myflix/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id::text, username, password_hash, email, birthday, favorite_movies"

type userRow struct {
	ID             string     `db:"id"`
	Username       string     `db:"username"`
	PasswordHash   string     `db:"password_hash"`
	Email          string     `db:"email"`
	Birthday       *time.Time `db:"birthday"`
	FavoriteMovies []string   `db:"favorite_movies"`
}

func (r userRow) toDomain() *models.User {
	user := &models.User{
		ID:               r.ID,
		Username:         r.Username,
		PasswordHash:     r.PasswordHash,
		Email:            r.Email,
		FavoriteMovieIDs: r.FavoriteMovies,
	}
	if user.FavoriteMovieIDs == nil {
		user.FavoriteMovieIDs = []string{}
	}
	if r.Birthday != nil {
		y, mon, d := r.Birthday.Date()
		user.Birthday = fields.NewDate(y, mon, d)
	}
	return user
}

func birthdayArg(d *fields.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func collectUser(rows pgx.Rows) (*models.User, error) {
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		var pgxErr *pgconn.PgError
		switch {
		case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode:
			return nil, storage.ErrConflict
		case errors.Is(err, pgx.ErrNoRows):
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

type UserModel struct {
	DB *pgxpool.Pool
}

func (m *UserModel) GetUser(ctx context.Context, username string) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	return collectUser(rows)
}

func (m *UserModel) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY username")
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(found))
	for _, row := range found {
		users = append(users, *row.toDomain())
	}
	return users, nil
}

func (m *UserModel) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO users (username, password_hash, email, birthday)
		VALUES ($1, $2, $3, $4) RETURNING `+userColumns,
		user.Username,
		user.PasswordHash,
		user.Email,
		birthdayArg(user.Birthday),
	)
	return collectUser(rows)
}

func (m *UserModel) UpdateUser(ctx context.Context, username string, user *models.User) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE users SET username = $1, password_hash = $2, email = $3, birthday = $4
		WHERE username = $5 RETURNING `+userColumns,
		user.Username,
		user.PasswordHash,
		user.Email,
		birthdayArg(user.Birthday),
		username,
	)
	return collectUser(rows)
}

func (m *UserModel) DeleteUser(ctx context.Context, username string) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM users WHERE username = $1", username)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *UserModel) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE users SET favorite_movies = array_append(favorite_movies, $1) WHERE username = $2 RETURNING "+userColumns,
		movieID,
		username,
	)
	return collectUser(rows)
}

func (m *UserModel) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE users SET favorite_movies = array_remove(favorite_movies, $1) WHERE username = $2 RETURNING "+userColumns,
		movieID,
		username,
	)
	return collectUser(rows)
}
