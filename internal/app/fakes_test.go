package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Hand-written fakes with function fields: each test assigns only the
// methods it expects the service to call. An unassigned method panics,
// which surfaces unexpected store access as a test failure.

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validOwner() user.User {
	return user.User{
		ID:    1,
		Email: "owner@example.com",
		Role:  user.RoleUser,
	}
}

func validTodo() todo.Todo {
	owner := validOwner()
	return todo.Todo{
		ID:        10,
		Title:     "Buy groceries",
		Contents:  "Milk, eggs, bread",
		Weather:   "Sunny",
		Owner:     &owner,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var _ ports.UserStore = (*fakeUserStore)(nil)

type fakeUserStore struct {
	findByID      func(ctx context.Context, id int64) (*user.User, error)
	findByEmail   func(ctx context.Context, email string) (*user.User, error)
	existsByEmail func(ctx context.Context, email string) (bool, error)
	save          func(ctx context.Context, u *user.User) error
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return f.findByID(ctx, id)
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.findByEmail(ctx, email)
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.existsByEmail(ctx, email)
}

func (f *fakeUserStore) Save(ctx context.Context, u *user.User) error {
	return f.save(ctx, u)
}

var _ ports.TodoStore = (*fakeTodoStore)(nil)

type fakeTodoStore struct {
	findByID func(ctx context.Context, id int64) (*todo.Todo, error)
	findAll  func(ctx context.Context, page, size int) ([]todo.Todo, error)
	save     func(ctx context.Context, t *todo.Todo) error
}

func (f *fakeTodoStore) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	return f.findByID(ctx, id)
}

func (f *fakeTodoStore) FindAll(ctx context.Context, page, size int) ([]todo.Todo, error) {
	return f.findAll(ctx, page, size)
}

func (f *fakeTodoStore) Save(ctx context.Context, t *todo.Todo) error {
	return f.save(ctx, t)
}

var _ ports.ManagerStore = (*fakeManagerStore)(nil)

type fakeManagerStore struct {
	findByID             func(ctx context.Context, id int64) (*todo.Manager, error)
	findByTodoIDWithUser func(ctx context.Context, todoID int64) ([]todo.Manager, error)
	save                 func(ctx context.Context, m *todo.Manager) error
	delete               func(ctx context.Context, m *todo.Manager) error
}

func (f *fakeManagerStore) FindByID(ctx context.Context, id int64) (*todo.Manager, error) {
	return f.findByID(ctx, id)
}

func (f *fakeManagerStore) FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]todo.Manager, error) {
	return f.findByTodoIDWithUser(ctx, todoID)
}

func (f *fakeManagerStore) Save(ctx context.Context, m *todo.Manager) error {
	return f.save(ctx, m)
}

func (f *fakeManagerStore) Delete(ctx context.Context, m *todo.Manager) error {
	return f.delete(ctx, m)
}

var _ ports.CommentStore = (*fakeCommentStore)(nil)

type fakeCommentStore struct {
	findByTodoIDWithUser func(ctx context.Context, todoID int64) ([]todo.Comment, error)
	save                 func(ctx context.Context, c *todo.Comment) error
}

func (f *fakeCommentStore) FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]todo.Comment, error) {
	return f.findByTodoIDWithUser(ctx, todoID)
}

func (f *fakeCommentStore) Save(ctx context.Context, c *todo.Comment) error {
	return f.save(ctx, c)
}

var _ ports.WeatherClient = (*fakeWeatherClient)(nil)

type fakeWeatherClient struct {
	todayWeather func(ctx context.Context) (string, error)
}

func (f *fakeWeatherClient) TodayWeather(ctx context.Context) (string, error) {
	return f.todayWeather(ctx)
}

var _ ports.PasswordHasher = (*fakeHasher)(nil)

// fakeHasher prefixes instead of hashing so tests can assert on stored values.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) bool {
	return hash == "hashed:"+password
}

var _ ports.TokenCodec = (*fakeTokenCodec)(nil)

type fakeTokenCodec struct {
	createToken func(u *user.User) (string, error)
	parseToken  func(token string) (user.AuthUser, error)
}

func (f *fakeTokenCodec) CreateToken(u *user.User) (string, error) {
	return f.createToken(u)
}

func (f *fakeTokenCodec) ParseToken(token string) (user.AuthUser, error) {
	return f.parseToken(token)
}
