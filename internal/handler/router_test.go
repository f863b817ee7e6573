package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passboard/internal/middleware"
	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/repository"
	"github.com/vaultpass/passboard/internal/service"
)

func newTestRouter(t *testing.T, limiter *middleware.IPRateLimiter) http.Handler {
	t.Helper()
	repo := repository.NewCredentialRepository()
	require.NoError(t, repo.Seed(context.Background(), repository.SeedCredentials()))

	return NewRouter(
		service.NewVaultService(repo),
		service.NewGeneratorService(),
		service.NewStrengthService(),
		limiter,
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestHandleGenerate(t *testing.T) {
	h := newTestRouter(t, nil)

	t.Run("empty body uses defaults", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/v1/generate", "")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[model.GenerateResponse](t, w)
		assert.Equal(t, 12, resp.Length)
		assert.Len(t, resp.Password, 12)
	})

	t.Run("explicit policy", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/v1/generate",
			`{"length":20,"uppercase":false,"numbers":false,"symbols":false}`)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[model.GenerateResponse](t, w)
		assert.Len(t, resp.Password, 20)
		assert.Equal(t, strings.ToLower(resp.Password), resp.Password)
		assert.Equal(t, 40, resp.Strength)
	})

	t.Run("length out of range", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/v1/generate", `{"length":64}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "password length must be at most 32", decode[map[string]string](t, w)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/v1/generate", `{"length":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleStrength(t *testing.T) {
	h := newTestRouter(t, nil)

	w := do(t, h, http.MethodPost, "/api/v1/strength", `{"password":"P@ss1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[model.ScoreResponse](t, w)
	assert.Equal(t, 80, resp.Strength)
	assert.Equal(t, "strong", resp.Tier)

	w = do(t, h, http.MethodPost, "/api/v1/strength", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListCredentials(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		name  string
		path  string
		count int
	}{
		{"all", "/api/v1/credentials", 5},
		{"search", "/api/v1/credentials?q=SOCIAL", 1},
		{"repeated category", "/api/v1/credentials?category=Personal&category=Work", 3},
		{"comma separated category", "/api/v1/credentials?category=finance,social", 2},
		{"search and category", "/api/v1/credentials?q=shop&category=Personal", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode[[]model.CredentialResponse](t, w), tt.count)
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/v1/credentials?category=Gaming", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCredentialLifecycle(t *testing.T) {
	h := newTestRouter(t, nil)

	w := do(t, h, http.MethodPost, "/api/v1/credentials",
		`{"website":"github.com","username":"octocat","password":"Sup3r$ecret","category":"Work"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.CredentialResponse](t, w)
	assert.Equal(t, int64(6), created.ID)
	assert.Equal(t, 100, created.Strength)
	assert.Len(t, created.LastUpdated, len(model.DateLayout))

	w = do(t, h, http.MethodGet, "/api/v1/credentials/6", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "octocat", decode[model.CredentialResponse](t, w).Username)

	w = do(t, h, http.MethodPut, "/api/v1/credentials/6",
		`{"website":"github.com","username":"hubot","password":"Sup3r$ecret","category":"Work"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hubot", decode[model.CredentialResponse](t, w).Username)

	w = do(t, h, http.MethodDelete, "/api/v1/credentials/6", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/credentials/6", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/api/v1/credentials/6", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCredential_ValidationFailure(t *testing.T) {
	h := newTestRouter(t, nil)

	w := do(t, h, http.MethodPost, "/api/v1/credentials", `{"website":"a.com","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, "Username is required", body.Fields["username"])
	assert.Equal(t, "Password must be at least 8 characters long", body.Fields["password"])
}

func TestInvalidCredentialID(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, path := range []string{"/api/v1/credentials/abc", "/api/v1/credentials/0"} {
		w := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestUpdateCredential_NotFound(t *testing.T) {
	h := newTestRouter(t, nil)

	w := do(t, h, http.MethodPut, "/api/v1/credentials/99",
		`{"website":"a.com","username":"u","password":"longenough"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleStats(t *testing.T) {
	h := newTestRouter(t, nil)

	w := do(t, h, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode[model.StatsResponse](t, w)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 20, stats.SecurityScore)
	assert.Equal(t, 1, stats.ByCategory[model.CategoryFinance])
}

func TestBodyTooLarge(t *testing.T) {
	h := newTestRouter(t, nil)

	big := `{"website":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	w := do(t, h, http.MethodPost, "/api/v1/credentials", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRateLimitedAPI(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newTestRouter(t, middleware.NewIPRateLimiter(ctx, 0.001, 1))

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/stats", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/api/v1/stats", "").Code)
	// Health checks are outside the limited group.
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)
}
