package handlers

import (
	"net/http"

	"github.com/hyeonlog/taskhub/internal/adapters/http/dto"
	"github.com/hyeonlog/taskhub/internal/ports"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// TodoHandler handles HTTP requests for todo operations.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	auth, ok := authUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.SaveTodo(r.Context(), auth, req.Title, req.Contents)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /todos/{todoId}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.service.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// ListTodos handles GET /todos with page and size query parameters.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	page := parseQueryInt(r, "page", defaultPage)
	size := parseQueryInt(r, "size", defaultPageSize)

	todos, err := h.service.GetTodos(r.Context(), page, size)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}
