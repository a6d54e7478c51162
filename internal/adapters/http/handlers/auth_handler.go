package handlers

import (
	"net/http"

	"github.com/hyeonlog/taskhub/internal/adapters/http/dto"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// AuthHandler handles HTTP requests for signup and signin.
type AuthHandler struct {
	service ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	token, err := h.service.Signup(r.Context(), req.Email, req.Password, role)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TokenResponse{BearerToken: token})
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.service.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{BearerToken: token})
}
