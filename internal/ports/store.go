package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoStore defines the storage port for the todo table.
// Implemented by the store adapter; called by the application layer.
type TodoStore interface {
	// Session opens a connection-scoped transaction, passes it to fn, and
	// commits when fn returns nil. Any error from fn (or a panic) rolls the
	// transaction back. The connection is released on every path, and the
	// session must not be used after fn returns.
	Session(ctx context.Context, fn func(TodoSession) error) error

	// EnsureSchema creates the todo table when it does not exist. Safe to call
	// more than once.
	EnsureSchema(ctx context.Context) error
}

// TodoSession exposes the todo table inside a single transaction.
type TodoSession interface {
	// Insert appends a row for t and returns the generated id.
	Insert(ctx context.Context, t *todo.Todo) (int64, error)

	// ListAll returns all rows in ascending id order, fully materialized.
	ListAll(ctx context.Context) ([]todo.Todo, error)

	// Get returns the row with the given id.
	// Returns domain.ErrNotFound if no such row exists.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Update writes t's title and completed flag to the row with t.ID.
	// Returns domain.ErrNotFound if no such row exists.
	Update(ctx context.Context, t *todo.Todo) error

	// DeleteCompleted removes every row whose completed flag is set, in one
	// statement, and returns the number of rows removed.
	DeleteCompleted(ctx context.Context) (int64, error)
}
