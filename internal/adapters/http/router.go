// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hyeonlog/taskhub/internal/adapters/http/handlers"
	"github.com/hyeonlog/taskhub/internal/adapters/http/middleware"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given; token authentication is
// applied per route group.
func NewRouter(
	authHandler *handlers.AuthHandler,
	todoHandler *handlers.TodoHandler,
	managerHandler *handlers.ManagerHandler,
	commentHandler *handlers.CommentHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	tokens ports.TokenCodec,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Public: account registration and token issuance.
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/signin", authHandler.Signin)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))

			r.Post("/todos", todoHandler.CreateTodo)
			r.Get("/todos", todoHandler.ListTodos)
			r.Get("/todos/{todoId}", todoHandler.GetTodo)

			r.Post("/todos/{todoId}/managers", managerHandler.SaveManager)
			r.Get("/todos/{todoId}/managers", managerHandler.GetManagers)
			r.Delete("/todos/{todoId}/managers/{managerId}", managerHandler.DeleteManager)

			r.Post("/todos/{todoId}/comments", commentHandler.SaveComment)
			r.Get("/todos/{todoId}/comments", commentHandler.GetComments)

			r.Get("/users/{userId}", userHandler.GetUser)
			r.Put("/users", userHandler.ChangePassword)

			// Admin-only operations.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleAdmin))
				r.Patch("/admin/users/{userId}", userHandler.ChangeUserRole)
			})
		})
	})

	return r
}
