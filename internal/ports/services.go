package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// CreateTodo validates the title and persists a new, not completed todo.
	// Returns domain.ErrValidation if the title fails validation; nothing is
	// written in that case.
	CreateTodo(ctx context.Context, title string) (*todo.Todo, error)

	// ListTodos returns every todo in ascending id order. An empty store
	// yields an empty slice, not an error.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// ToggleTodo flips the completed flag of the todo with the given id and
	// returns the updated entity.
	// Returns domain.ErrNotFound if the todo does not exist.
	ToggleTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// DeleteCompleted removes every completed todo and reports how many rows
	// were removed. Removing nothing is a success.
	DeleteCompleted(ctx context.Context) (int64, error)
}
