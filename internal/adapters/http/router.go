// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// NewRouter creates an HTTP handler with the todo and health routes
// registered. The middleware is composed with middleware.Chain, first
// argument outermost, and installed as one chi middleware so it also wraps
// the not-found and method-not-allowed responses.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed,
			r.Method+" is not supported on "+r.URL.Path)
	})

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// The todo collection is mounted at the root.
	r.Get("/", todoHandler.ListTodos)
	r.Post("/", todoHandler.CreateTodo)
	r.Delete("/", todoHandler.DeleteCompleted)
	r.Patch("/{id}/toggle", todoHandler.ToggleTodo)

	return r
}
