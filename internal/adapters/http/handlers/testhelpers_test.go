package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hyeonlog/taskhub/internal/adapters/http/middleware"
	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withAuth stores an authenticated caller on the request, as the auth
// middleware would.
func withAuth(r *http.Request, auth user.AuthUser) *http.Request {
	return r.WithContext(middleware.WithAuthUser(r.Context(), auth))
}

func testOwner() user.User {
	return user.User{
		ID:        1,
		Email:     "owner@example.com",
		Role:      user.RoleUser,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validTodo() todo.Todo {
	owner := testOwner()
	return todo.Todo{
		ID:        10,
		Title:     "Buy groceries",
		Contents:  "Milk, eggs, bread",
		Weather:   "Sunny",
		Owner:     &owner,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// Stub services with function fields; a test assigns only what it expects
// the handler to call.

type stubManagerService struct {
	saveManager   func(ctx context.Context, auth user.AuthUser, todoID, managerUserID int64) (*todo.Manager, error)
	getManagers   func(ctx context.Context, todoID int64) ([]todo.Manager, error)
	deleteManager func(ctx context.Context, userID, todoID, managerID int64) error
}

func (s *stubManagerService) SaveManager(ctx context.Context, auth user.AuthUser, todoID, managerUserID int64) (*todo.Manager, error) {
	return s.saveManager(ctx, auth, todoID, managerUserID)
}

func (s *stubManagerService) GetManagers(ctx context.Context, todoID int64) ([]todo.Manager, error) {
	return s.getManagers(ctx, todoID)
}

func (s *stubManagerService) DeleteManager(ctx context.Context, userID, todoID, managerID int64) error {
	return s.deleteManager(ctx, userID, todoID, managerID)
}

type stubCommentService struct {
	saveComment func(ctx context.Context, auth user.AuthUser, todoID int64, contents string) (*todo.Comment, error)
	getComments func(ctx context.Context, todoID int64) ([]todo.Comment, error)
}

func (s *stubCommentService) SaveComment(ctx context.Context, auth user.AuthUser, todoID int64, contents string) (*todo.Comment, error) {
	return s.saveComment(ctx, auth, todoID, contents)
}

func (s *stubCommentService) GetComments(ctx context.Context, todoID int64) ([]todo.Comment, error) {
	return s.getComments(ctx, todoID)
}

type stubTodoService struct {
	saveTodo func(ctx context.Context, auth user.AuthUser, title, contents string) (*todo.Todo, error)
	getTodo  func(ctx context.Context, todoID int64) (*todo.Todo, error)
	getTodos func(ctx context.Context, page, size int) ([]todo.Todo, error)
}

func (s *stubTodoService) SaveTodo(ctx context.Context, auth user.AuthUser, title, contents string) (*todo.Todo, error) {
	return s.saveTodo(ctx, auth, title, contents)
}

func (s *stubTodoService) GetTodo(ctx context.Context, todoID int64) (*todo.Todo, error) {
	return s.getTodo(ctx, todoID)
}

func (s *stubTodoService) GetTodos(ctx context.Context, page, size int) ([]todo.Todo, error) {
	return s.getTodos(ctx, page, size)
}

type stubAuthService struct {
	signup func(ctx context.Context, email, password string, role user.Role) (string, error)
	signin func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password string, role user.Role) (string, error) {
	return s.signup(ctx, email, password, role)
}

func (s *stubAuthService) Signin(ctx context.Context, email, password string) (string, error) {
	return s.signin(ctx, email, password)
}

type stubUserService struct {
	getUser        func(ctx context.Context, userID int64) (*user.User, error)
	changePassword func(ctx context.Context, userID int64, oldPassword, newPassword string) error
	changeUserRole func(ctx context.Context, userID int64, role user.Role) error
}

func (s *stubUserService) GetUser(ctx context.Context, userID int64) (*user.User, error) {
	return s.getUser(ctx, userID)
}

func (s *stubUserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	return s.changePassword(ctx, userID, oldPassword, newPassword)
}

func (s *stubUserService) ChangeUserRole(ctx context.Context, userID int64, role user.Role) error {
	return s.changeUserRole(ctx, userID, role)
}
