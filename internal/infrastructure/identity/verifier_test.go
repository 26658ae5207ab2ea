package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookkeep/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(url string) *HTTPVerifier {
	return NewHTTPVerifier(config.IdentityConfig{
		URL:     url,
		APIKey:  "test-api-key",
		Timeout: 2 * time.Second,
	})
}

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestHTTPVerifierVerify(t *testing.T) {
	const userID = "8f14e45f-ceea-4a7a-9c5d-3f2c8b1a0d42"

	t.Run("accepts a token the provider accepts", func(t *testing.T) {
		var gotAuth, gotAPIKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAPIKey = r.Header.Get("apikey")
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": userID})
		}))
		defer srv.Close()

		token := signedTestToken(t, jwt.MapClaims{"sub": userID, "role": "authenticated"})

		id, err := newTestVerifier(srv.URL).Verify(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, userID, id.UserID)
		assert.Equal(t, "Bearer "+token, gotAuth)
		assert.Equal(t, "test-api-key", gotAPIKey)
		assert.Equal(t, userID, id.Claims["sub"])
		assert.Equal(t, "authenticated", id.Claims["role"])
	})

	t.Run("rejects a token the provider rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "JWT expired"})
		}))
		defer srv.Close()

		_, err := newTestVerifier(srv.URL).Verify(context.Background(), "expired-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Contains(t, err.Error(), "JWT expired")
	})

	t.Run("provider server error maps to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := newTestVerifier(srv.URL).Verify(context.Background(), "some-token")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("unreachable provider maps to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newTestVerifier(srv.URL).Verify(context.Background(), "some-token")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("missing configuration maps to not configured", func(t *testing.T) {
		v := NewHTTPVerifier(config.IdentityConfig{})

		_, err := v.Verify(context.Background(), "some-token")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("blank token is rejected without a provider call", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		_, err := newTestVerifier(srv.URL).Verify(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrEmptyToken)
		assert.False(t, called)
	})

	t.Run("opaque token falls back to subject-only claims", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"id": userID})
		}))
		defer srv.Close()

		id, err := newTestVerifier(srv.URL).Verify(context.Background(), "not-a-jwt")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"sub": userID}, id.Claims)
	})

	t.Run("malformed provider response is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"unexpected": true}`))
		}))
		defer srv.Close()

		_, err := newTestVerifier(srv.URL).Verify(context.Background(), "some-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestIdentityClaimsJSON(t *testing.T) {
	t.Run("renders full claim set", func(t *testing.T) {
		id := Identity{
			UserID: "user-1",
			Claims: map[string]any{"sub": "user-1", "role": "authenticated"},
		}

		raw, err := id.ClaimsJSON()
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
		assert.Equal(t, "user-1", decoded["sub"])
		assert.Equal(t, "authenticated", decoded["role"])
	})

	t.Run("nil claims fall back to subject", func(t *testing.T) {
		raw, err := Identity{UserID: "user-2"}.ClaimsJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"sub":"user-2"}`, raw)
	})
}
