package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

// stubCodec verifies a single known token.
type stubCodec struct {
	valid string
	auth  user.AuthUser
}

func (s *stubCodec) CreateToken(_ *user.User) (string, error) {
	return s.valid, nil
}

func (s *stubCodec) ParseToken(token string) (user.AuthUser, error) {
	if token != s.valid {
		return user.AuthUser{}, fmt.Errorf("parsing token: %w", domain.ErrUnauthenticated)
	}
	return s.auth, nil
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	codec := &stubCodec{
		valid: "good-token",
		auth:  user.AuthUser{ID: 1, Email: "owner@example.com", Role: user.RoleUser},
	}

	var captured user.AuthUser
	var ok bool
	handler := Authenticate(codec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, ok = AuthUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token reaches the handler with identity", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/todos", nil)
		r.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !ok {
			t.Fatal("AuthUserFromContext() ok = false, want identity in context")
		}
		if captured.ID != 1 || captured.Role != user.RoleUser {
			t.Errorf("AuthUserFromContext() = %+v, want codec identity", captured)
		}
	})

	t.Run("missing header is 401", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/todos", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/todos", nil)
		r.Header.Set("Authorization", "Bearer forged")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("non-bearer scheme is 401", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/todos", nil)
		r.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("matching role passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r = r.WithContext(WithAuthUser(r.Context(), user.AuthUser{ID: 1, Role: user.RoleAdmin}))
		w := httptest.NewRecorder()

		RequireRole(user.RoleAdmin)(next).ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("wrong role is 403", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r = r.WithContext(WithAuthUser(r.Context(), user.AuthUser{ID: 1, Role: user.RoleUser}))
		w := httptest.NewRecorder()

		RequireRole(user.RoleAdmin)(next).ServeHTTP(w, r)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("unauthenticated is 401", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()

		RequireRole(user.RoleAdmin)(next).ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
