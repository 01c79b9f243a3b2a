package auth

import (
	"context"
	"testing"
	"time"

	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/lib/hasher"
	"myflix/proj/internal/lib/logger"
	"myflix/proj/internal/lib/tokens"
	"myflix/proj/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	h := hasher.NewBcrypt(bcrypt.MinCost)
	hash, err := h.Hash("hunter22")
	require.NoError(t, err)
	store := memory.New()
	_, err = store.InsertUser(context.Background(), &models.User{Username: "alice123", PasswordHash: hash, Email: "a@x.com"})
	require.NoError(t, err)
	return New(logger.Discard(), store, h, tokens.NewIssuer("secret", 7*24*time.Hour))
}

func TestLogin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	t.Run("correct password", func(t *testing.T) {
		resp, err := s.Login(ctx, "alice123", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "alice123", resp.User.Username)
		username, err := s.VerifyToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice123", username)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, "alice123", "hunter23")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Login(ctx, "bob12345", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestVerifyToken(t *testing.T) {
	s := newTestService(t)
	_, err := s.VerifyToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
