package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyeonlog/taskhub/internal/adapters/http/dto"
	"github.com/hyeonlog/taskhub/internal/adapters/http/handlers"
	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

func TestUserHandler_GetUser(t *testing.T) {
	t.Parallel()

	t.Run("200 without credential in the body", func(t *testing.T) {
		t.Parallel()
		svc := &stubUserService{
			getUser: func(_ context.Context, userID int64) (*user.User, error) {
				if userID != 1 {
					t.Errorf("GetUser(userID=%d), want 1", userID)
				}
				u := testOwner()
				u.Password = "bcrypt-hash"
				return &u, nil
			},
		}
		h := handlers.NewUserHandler(svc)

		r := httptest.NewRequest(http.MethodGet, "/users/1", nil)
		r = withChiParams(r, map[string]string{"userId": "1"})
		rec := httptest.NewRecorder()

		h.GetUser(rec, r)

		requireStatus(t, rec, http.StatusOK)
		if strings.Contains(rec.Body.String(), "bcrypt-hash") {
			t.Error("response body leaks the stored credential")
		}
		resp := decodeJSON[dto.UserResponse](t, rec)
		if resp.Email != "owner@example.com" {
			t.Errorf("Email = %q, want %q", resp.Email, "owner@example.com")
		}
	})

	t.Run("404 for missing account", func(t *testing.T) {
		t.Parallel()
		svc := &stubUserService{
			getUser: func(_ context.Context, _ int64) (*user.User, error) {
				return nil, fmt.Errorf("user 404: %w", domain.ErrNotFound)
			},
		}
		h := handlers.NewUserHandler(svc)

		r := httptest.NewRequest(http.MethodGet, "/users/404", nil)
		r = withChiParams(r, map[string]string{"userId": "404"})
		rec := httptest.NewRecorder()

		h.GetUser(rec, r)

		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestUserHandler_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("204 on success", func(t *testing.T) {
		t.Parallel()
		svc := &stubUserService{
			changePassword: func(_ context.Context, userID int64, oldPassword, newPassword string) error {
				if userID != 1 {
					t.Errorf("ChangePassword(userID=%d), want the caller's id 1", userID)
				}
				if oldPassword != "OldPassword1" || newPassword != "NewPassword1" {
					t.Errorf("ChangePassword(%q, %q), want submitted passwords", oldPassword, newPassword)
				}
				return nil
			},
		}
		h := handlers.NewUserHandler(svc)

		body := jsonBody(t, dto.ChangePasswordRequest{OldPassword: "OldPassword1", NewPassword: "NewPassword1"})
		r := httptest.NewRequest(http.MethodPut, "/users", body)
		r = withAuth(r, user.AuthUser{ID: 1, Role: user.RoleUser})
		rec := httptest.NewRecorder()

		h.ChangePassword(rec, r)

		requireStatus(t, rec, http.StatusNoContent)
	})

	t.Run("401 for wrong old password", func(t *testing.T) {
		t.Parallel()
		svc := &stubUserService{
			changePassword: func(_ context.Context, _ int64, _, _ string) error {
				return fmt.Errorf("wrong password: %w", domain.ErrUnauthenticated)
			},
		}
		h := handlers.NewUserHandler(svc)

		body := jsonBody(t, dto.ChangePasswordRequest{OldPassword: "Wrong1", NewPassword: "NewPassword1"})
		r := httptest.NewRequest(http.MethodPut, "/users", body)
		r = withAuth(r, user.AuthUser{ID: 1})
		rec := httptest.NewRecorder()

		h.ChangePassword(rec, r)

		requireStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("401 without authenticated caller", func(t *testing.T) {
		t.Parallel()
		h := handlers.NewUserHandler(&stubUserService{})

		body := jsonBody(t, dto.ChangePasswordRequest{OldPassword: "a", NewPassword: "b"})
		r := httptest.NewRequest(http.MethodPut, "/users", body)
		rec := httptest.NewRecorder()

		h.ChangePassword(rec, r)

		requireStatus(t, rec, http.StatusUnauthorized)
	})
}

func TestUserHandler_ChangeUserRole(t *testing.T) {
	t.Parallel()

	t.Run("204 on success", func(t *testing.T) {
		t.Parallel()
		svc := &stubUserService{
			changeUserRole: func(_ context.Context, userID int64, role user.Role) error {
				if userID != 2 || role != user.RoleAdmin {
					t.Errorf("ChangeUserRole(%d, %q), want (2, ADMIN)", userID, role)
				}
				return nil
			},
		}
		h := handlers.NewUserHandler(svc)

		body := jsonBody(t, dto.ChangeRoleRequest{Role: "ADMIN"})
		r := httptest.NewRequest(http.MethodPatch, "/admin/users/2", body)
		r = withChiParams(r, map[string]string{"userId": "2"})
		rec := httptest.NewRecorder()

		h.ChangeUserRole(rec, r)

		requireStatus(t, rec, http.StatusNoContent)
	})

	t.Run("400 for unknown role", func(t *testing.T) {
		t.Parallel()
		h := handlers.NewUserHandler(&stubUserService{})

		body := jsonBody(t, dto.ChangeRoleRequest{Role: "ROOT"})
		r := httptest.NewRequest(http.MethodPatch, "/admin/users/2", body)
		r = withChiParams(r, map[string]string{"userId": "2"})
		rec := httptest.NewRecorder()

		h.ChangeUserRole(rec, r)

		requireStatus(t, rec, http.StatusBadRequest)
	})
}
