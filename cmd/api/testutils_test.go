package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"myflix/proj/internal/config"
	"myflix/proj/internal/lib/logger"
	"myflix/proj/internal/lib/tokens"
	"myflix/proj/internal/storage/memory"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Storage: config.Storage{Driver: "memory"},
		Auth: config.Auth{
			Secret:     testSecret,
			TokenTTL:   168 * time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
		HTTP:  config.HTTP{NotFoundStatus: http.StatusBadRequest},
		Tasks: config.Tasks{Workers: 1, QueueSize: 10},
	}
}

// NewTestApplication builds an application over a freshly seeded in-memory
// store. cfg may be nil.
func NewTestApplication(cfg *config.Config, t *testing.T) *Application {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	return newTestApplicationWithStore(cfg, t, memory.New(memory.SeedMovies()...))
}

func newTestApplicationWithStore(cfg *config.Config, t *testing.T, store *memory.Storage) *Application {
	t.Helper()
	app := NewApplication(cfg, logger.Discard(), store)
	t.Cleanup(app.stop)
	return app
}

func testToken(t *testing.T, username string) string {
	t.Helper()
	token, err := tokens.NewIssuer(testSecret, time.Hour).Issue(username)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
