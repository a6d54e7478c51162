package handlers

import (
	"net/http"

	"github.com/hyeonlog/taskhub/internal/adapters/http/dto"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	service ports.UserService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser handles GET /users/{userId}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// ChangePassword handles PUT /users. The target account is the caller.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	auth, ok := authUser(w, r)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), auth.ID, req.OldPassword, req.NewPassword); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeUserRole handles PATCH /admin/users/{userId}. Admin-only; the role
// check runs in middleware.
func (h *UserHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChangeRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.ChangeUserRole(r.Context(), id, role); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
