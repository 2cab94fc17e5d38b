// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService by running each use case inside a
// single store session. It handles validation and structured logging; the
// store owns transaction boundaries.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. If logger is nil, logs are discarded.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// CreateTodo validates title and persists a new, not yet completed todo.
// Invalid titles are rejected before any session is opened.
func (s *TodoService) CreateTodo(ctx context.Context, title string) (*todo.Todo, error) {
	t, err := todo.New(title)
	if err != nil {
		return nil, err
	}

	err = s.store.Session(ctx, func(sess ports.TodoSession) error {
		id, err := sess.Insert(ctx, t)
		if err != nil {
			return err
		}
		t.ID = id
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "CreateTodo", err)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "todo created", slog.Int64("id", t.ID))
	return t, nil
}

// ListTodos returns every todo in ascending id order.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var todos []todo.Todo
	err := s.store.Session(ctx, func(sess ports.TodoSession) error {
		var err error
		todos, err = sess.ListAll(ctx)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "ListTodos", err)
		return nil, err
	}

	if todos == nil {
		todos = []todo.Todo{}
	}
	return todos, nil
}

// ToggleTodo flips the completion flag of the todo with the given id and
// returns its new state. Read and write happen in the same session.
func (s *TodoService) ToggleTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	var toggled *todo.Todo
	err := s.store.Session(ctx, func(sess ports.TodoSession) error {
		t, err := sess.Get(ctx, id)
		if err != nil {
			return err
		}
		t.Toggle()
		if err := sess.Update(ctx, t); err != nil {
			return err
		}
		toggled = t
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "ToggleTodo", err, slog.Int64("id", id))
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "todo toggled",
		slog.Int64("id", toggled.ID),
		slog.Bool("completed", toggled.Completed),
	)
	return toggled, nil
}

// DeleteCompleted removes every completed todo in one statement and returns
// how many were removed.
func (s *TodoService) DeleteCompleted(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.store.Session(ctx, func(sess ports.TodoSession) error {
		var err error
		deleted, err = sess.DeleteCompleted(ctx)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "DeleteCompleted", err)
		return 0, err
	}

	s.log(ctx).InfoContext(ctx, "completed todos deleted", slog.Int64("count", deleted))
	return deleted, nil
}

// log returns the request-scoped logger when the logging middleware set one,
// so service entries carry request_id and correlation_id.
func (s *TodoService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// logFailure logs storage faults at error level. Client-caused outcomes
// (validation, not found) are logged at debug since they are not faults.
func (s *TodoService) logFailure(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	msg := "todo operation failed"
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelDebug
		msg = "todo operation rejected"
	}

	args := make([]slog.Attr, 0, len(attrs)+2)
	args = append(args, slog.String("operation", op))
	args = append(args, attrs...)
	args = append(args, slog.Any("error", err))
	s.log(ctx).LogAttrs(ctx, level, msg, args...)
}
