package users

import (
	"context"
	"errors"
	"log/slog"

	"myflix/proj/internal/domain/fields"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/mails"
	"myflix/proj/internal/storage"
)

type UsersStorage interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	InsertUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, username string, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type MailProvider interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type TaskExecutor interface {
	Add(task func()) error
}

// UserParams carries the fields accepted on registration and on update.
type UserParams struct {
	Username string
	Password string
	Email    string
	Birthday *fields.Date
}

type UserService struct {
	log          *slog.Logger
	storage      UsersStorage
	hasher       PasswordHasher
	mailer       MailProvider
	taskExecutor TaskExecutor
}

// New builds the service. mailer may be nil, in which case no welcome mail is
// sent.
func New(
	log *slog.Logger,
	storage UsersStorage,
	hasher PasswordHasher,
	mailer MailProvider,
	taskExecutor TaskExecutor,
) *UserService {
	return &UserService{
		log:          log,
		storage:      storage,
		hasher:       hasher,
		mailer:       mailer,
		taskExecutor: taskExecutor,
	}
}

func (s *UserService) sendWelcomeEmail(email, username string) {
	s.log.Info("sending welcome email", "username", username)
	err := s.mailer.Send(email, mails.WelcomeTemplate, map[string]any{"username": username})
	if err != nil {
		s.log.Error("Error sending welcome email", "errMsg", err.Error())
	}
}

func (s *UserService) Register(ctx context.Context, params UserParams) (*models.User, error) {
	const op = "users.UserService.Register"
	log := s.log.With("op", op, "username", params.Username)
	_, err := s.storage.GetUser(ctx, params.Username)
	switch {
	case err == nil:
		log.Info("username already taken")
		return nil, ErrUserAlreadyExists
	case !errors.Is(err, storage.ErrNotFound):
		log.Error(err.Error())
		return nil, err
	}
	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		log.Error("Error hashing password", "errMsg", err.Error())
		return nil, err
	}
	user, err := s.storage.InsertUser(ctx, &models.User{
		Username:     params.Username,
		PasswordHash: hash,
		Email:        params.Email,
		Birthday:     params.Birthday,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("username taken concurrently")
			return nil, ErrUserAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	if s.mailer != nil && s.taskExecutor != nil {
		email, username := user.Email, user.Username
		if err := s.taskExecutor.Add(func() { s.sendWelcomeEmail(email, username) }); err != nil {
			log.Warn("welcome email not scheduled", "errMsg", err.Error())
		}
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	const op = "users.UserService.Get"
	log := s.log.With("op", op, "username", username)
	user, err := s.storage.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	const op = "users.UserService.List"
	log := s.log.With("op", op)
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return users, nil
}

// Update replaces every mutable field of the user. Favorites are untouched.
func (s *UserService) Update(ctx context.Context, username string, params UserParams) (*models.User, error) {
	const op = "users.UserService.Update"
	log := s.log.With("op", op, "username", username, "new_username", params.Username)
	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		log.Error("Error hashing password", "errMsg", err.Error())
		return nil, err
	}
	user, err := s.storage.UpdateUser(ctx, username, &models.User{
		Username:     params.Username,
		PasswordHash: hash,
		Email:        params.Email,
		Birthday:     params.Birthday,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("user not found")
			return nil, ErrUserNotFound
		case errors.Is(err, storage.ErrConflict):
			log.Info("username already taken")
			return nil, ErrUserAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	const op = "users.UserService.Delete"
	log := s.log.With("op", op, "username", username)
	if err := s.storage.DeleteUser(ctx, username); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return ErrUserNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

// AddFavorite appends movieID as is. The id is not checked against the
// catalog.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	const op = "users.UserService.AddFavorite"
	log := s.log.With("op", op, "username", username, "movie_id", movieID)
	user, err := s.storage.AddFavorite(ctx, username, movieID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

// RemoveFavorite drops every occurrence of movieID. Removing an id that was
// never added is not an error.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	const op = "users.UserService.RemoveFavorite"
	log := s.log.With("op", op, "username", username, "movie_id", movieID)
	user, err := s.storage.RemoveFavorite(ctx, username, movieID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}
