package dto

import (
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// CreateTodoRequest represents the JSON body for creating a new todo. Only the
// title is accepted; id and completed are assigned by the service.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// Validate applies the todo title rule. A missing title decodes to the empty
// string and is rejected by the minimum length.
// Returns a *domain.ValidationError if the check fails.
func (r *CreateTodoRequest) Validate() error {
	if msg := todo.ValidateTitle(r.Title); msg != "" {
		return &domain.ValidationError{Fields: map[string]string{"title": msg}}
	}
	return nil
}
