package handlers

import (
	"net/http"

	"github.com/hyeonlog/taskhub/internal/adapters/http/dto"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// ManagerHandler handles HTTP requests for manager assignment on todos.
type ManagerHandler struct {
	service ports.ManagerService
}

// NewManagerHandler creates a new ManagerHandler with the given service port.
func NewManagerHandler(service ports.ManagerService) *ManagerHandler {
	return &ManagerHandler{service: service}
}

// SaveManager handles POST /todos/{todoId}/managers.
func (h *ManagerHandler) SaveManager(w http.ResponseWriter, r *http.Request) {
	auth, ok := authUser(w, r)
	if !ok {
		return
	}

	todoID, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SaveManagerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.service.SaveManager(r.Context(), auth, todoID, req.ManagerUserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToManagerResponse(m))
}

// GetManagers handles GET /todos/{todoId}/managers.
func (h *ManagerHandler) GetManagers(w http.ResponseWriter, r *http.Request) {
	todoID, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	managers, err := h.service.GetManagers(r.Context(), todoID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToManagerListResponse(managers))
}

// DeleteManager handles DELETE /todos/{todoId}/managers/{managerId}.
func (h *ManagerHandler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	auth, ok := authUser(w, r)
	if !ok {
		return
	}

	todoID, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	managerID, err := parseID(r, "managerId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteManager(r.Context(), auth.ID, todoID, managerID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
