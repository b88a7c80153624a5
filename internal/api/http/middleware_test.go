package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobportal-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("test-secret-at-least-32-characters!!", 60)
	mw := NewAuthMiddleware(tokens)

	claimsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := AdminFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Admin", claims.Username)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token Carries Claims To Handler", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(7, "hradmin")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.Middleware(claimsHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hradmin", rec.Header().Get("X-Admin"))
	})

	t.Run("Missing Header Rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/admin/dashboard", nil)
		rec := httptest.NewRecorder()
		mw.Middleware(claimsHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		mw.Middleware(claimsHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("No Claims Without Middleware", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/admin/dashboard", nil)
		_, ok := AdminFromContext(req.Context())
		assert.False(t, ok)
	})
}
