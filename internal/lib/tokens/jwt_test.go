package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("super-secret", week)
	tok, err := issuer.Issue("alice123")
	require.NoError(t, err)

	username, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice123", username)
}

func TestExpiry(t *testing.T) {
	issuedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	tok, err := NewIssuer("secret", week).WithClock(clockAt(issuedAt)).Issue("alice123")
	require.NoError(t, err)

	t.Run("just before seven days", func(t *testing.T) {
		issuer := NewIssuer("secret", week).WithClock(clockAt(issuedAt.Add(week - time.Second)))
		username, err := issuer.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "alice123", username)
	})
	t.Run("after seven days", func(t *testing.T) {
		issuer := NewIssuer("secret", week).WithClock(clockAt(issuedAt.Add(week + time.Second)))
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestVerifyRejects(t *testing.T) {
	issuer := NewIssuer("right-secret", week)

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := NewIssuer("wrong-secret", week).Issue("alice123")
		require.NoError(t, err)
		_, err = issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := issuer.Verify("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("other algorithm", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   "alice123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("right-secret"))
		require.NoError(t, err)
		_, err = issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("no expiry", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: "alice123",
		}).SignedString([]byte("right-secret"))
		require.NoError(t, err)
		_, err = issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
