// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

// TokenResponse carries the signed bearer token returned by signup and signin.
type TokenResponse struct {
	BearerToken string `json:"bearer_token"`
}

// UserResponse represents an account in HTTP responses. The credential is
// never serialized.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}

// TodoResponse represents a todo in HTTP responses.
type TodoResponse struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Contents  string        `json:"contents"`
	Weather   string        `json:"weather"`
	Owner     *UserResponse `json:"owner,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Contents:  t.Contents,
		Weather:   t.Weather,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	if t.Owner != nil {
		owner := ToUserResponse(t.Owner)
		resp.Owner = &owner
	}
	return resp
}

// TodoListResponse represents a page of todos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoListResponse converts a slice of domain Todos to an HTTP list
// response DTO.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}

// ManagerResponse represents a manager assignment in HTTP responses.
type ManagerResponse struct {
	ID   int64        `json:"id"`
	User UserResponse `json:"user"`
}

// ToManagerResponse converts a domain Manager to an HTTP response DTO.
func ToManagerResponse(m *todo.Manager) ManagerResponse {
	return ManagerResponse{
		ID:   m.ID,
		User: ToUserResponse(&m.User),
	}
}

// ManagerListResponse represents the managers of a todo in HTTP responses.
type ManagerListResponse struct {
	Managers []ManagerResponse `json:"managers"`
	Count    int               `json:"count"`
}

// ToManagerListResponse converts a slice of domain Managers to an HTTP list
// response DTO.
func ToManagerListResponse(managers []todo.Manager) ManagerListResponse {
	items := make([]ManagerResponse, len(managers))
	for i := range managers {
		items[i] = ToManagerResponse(&managers[i])
	}
	return ManagerListResponse{
		Managers: items,
		Count:    len(items),
	}
}

// CommentResponse represents a comment in HTTP responses.
type CommentResponse struct {
	ID        int64        `json:"id"`
	Contents  string       `json:"contents"`
	User      UserResponse `json:"user"`
	CreatedAt string       `json:"created_at"`
}

// ToCommentResponse converts a domain Comment to an HTTP response DTO.
func ToCommentResponse(c *todo.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Contents:  c.Contents,
		User:      ToUserResponse(&c.User),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// CommentListResponse represents the comments of a todo in HTTP responses.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Count    int               `json:"count"`
}

// ToCommentListResponse converts a slice of domain Comments to an HTTP list
// response DTO.
func ToCommentListResponse(comments []todo.Comment) CommentListResponse {
	items := make([]CommentResponse, len(comments))
	for i := range comments {
		items[i] = ToCommentResponse(&comments[i])
	}
	return CommentListResponse{
		Comments: items,
		Count:    len(items),
	}
}
