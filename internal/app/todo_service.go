package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. Creating a todo tags it with
// today's weather fetched from the downstream weather API.
type TodoService struct {
	todos   ports.TodoStore
	weather ports.WeatherClient
	logger  *slog.Logger
}

// NewTodoService creates a TodoService backed by the given store and
// weather client.
func NewTodoService(todos ports.TodoStore, weather ports.WeatherClient, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		todos:   todos,
		weather: weather,
		logger:  logger,
	}
}

// SaveTodo creates a todo owned by the calling user.
func (s *TodoService) SaveTodo(ctx context.Context, auth user.AuthUser, title, contents string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.Int64("user_id", auth.ID))

	owner := user.FromAuthUser(auth)
	td := &todo.Todo{
		Title:    title,
		Contents: contents,
		Owner:    &owner,
	}
	if err := td.Validate(); err != nil {
		return nil, err
	}

	weather, err := s.weather.TodayWeather(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch weather",
			slog.String("operation", "SaveTodo"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	td.Weather = weather

	if err := s.todos.Save(ctx, td); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist todo",
			slog.String("operation", "SaveTodo"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving todo: %w", err)
	}

	return td, nil
}

// GetTodo returns a single todo by id with its owner populated.
func (s *TodoService) GetTodo(ctx context.Context, todoID int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Int64("todo_id", todoID))

	td, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todo",
			slog.String("operation", "GetTodo"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return td, nil
}

// GetTodos returns a page of todos, newest first. Non-positive page or size
// fall back to the defaults.
func (s *TodoService) GetTodos(ctx context.Context, page, size int) ([]todo.Todo, error) {
	if page < 1 {
		page = defaultPage
	}
	if size < 1 {
		size = defaultPageSize
	}

	s.logger.InfoContext(ctx, "listing todos",
		slog.Int("page", page),
		slog.Int("size", size),
	)

	todos, err := s.todos.FindAll(ctx, page, size)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "GetTodos"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	return todos, nil
}
