package auth

import (
	"context"
	"errors"
	"log/slog"

	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"
)

type UsersProvider interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
}

type PasswordVerifier interface {
	Compare(hash, password string) error
}

type TokenProvider interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}

// AuthService is the login gate. Issued tokens are the only session state.
type AuthService struct {
	log    *slog.Logger
	users  UsersProvider
	hasher PasswordVerifier
	tokens TokenProvider
}

func New(log *slog.Logger, users UsersProvider, hasher PasswordVerifier, tokens TokenProvider) *AuthService {
	return &AuthService{
		log:    log,
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (a *AuthService) Login(ctx context.Context, username, password string) (*models.AuthTokens, error) {
	const op = "auth.AuthService.Login"
	log := a.log.With("op", op, "username", username)
	user, err := a.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error(err.Error())
		return nil, err
	}
	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Info("password mismatch")
		return nil, ErrInvalidCredentials
	}
	token, err := a.tokens.Issue(user.Username)
	if err != nil {
		log.Error("Error issuing token", "errMsg", err.Error())
		return nil, err
	}
	return &models.AuthTokens{User: user, Token: token}, nil
}

// VerifyToken returns the username the token was issued to.
func (a *AuthService) VerifyToken(token string) (string, error) {
	username, err := a.tokens.Verify(token)
	if err != nil {
		a.log.Debug("token rejected", "reason", err.Error())
		return "", ErrInvalidToken
	}
	return username, nil
}
