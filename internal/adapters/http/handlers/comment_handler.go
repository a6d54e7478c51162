package handlers

import (
	"net/http"

	"github.com/hyeonlog/taskhub/internal/adapters/http/dto"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// CommentHandler handles HTTP requests for comments on todos.
type CommentHandler struct {
	service ports.CommentService
}

// NewCommentHandler creates a new CommentHandler with the given service port.
func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// SaveComment handles POST /todos/{todoId}/comments.
func (h *CommentHandler) SaveComment(w http.ResponseWriter, r *http.Request) {
	auth, ok := authUser(w, r)
	if !ok {
		return
	}

	todoID, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SaveCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.service.SaveComment(r.Context(), auth, todoID, req.Contents)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCommentResponse(c))
}

// GetComments handles GET /todos/{todoId}/comments.
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	todoID, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	comments, err := h.service.GetComments(r.Context(), todoID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCommentListResponse(comments))
}
