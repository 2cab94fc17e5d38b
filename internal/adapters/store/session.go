package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Queries use '?' placeholders and are rebound per driver.
const (
	insertTodoQuery      = `INSERT INTO todo (title, completed) VALUES (?, ?)`
	listTodosQuery       = `SELECT id, title, completed FROM todo ORDER BY id ASC`
	getTodoQuery         = `SELECT id, title, completed FROM todo WHERE id = ?`
	updateTodoQuery      = `UPDATE todo SET title = ?, completed = ? WHERE id = ?`
	deleteCompletedQuery = `DELETE FROM todo WHERE completed = ?`
)

const entityTodo = "todo"

var _ ports.TodoSession = (*session)(nil)

// session is a [ports.TodoSession] bound to one transaction.
type session struct {
	tx    *sqlx.Tx
	store *Store
}

func (s *session) Insert(ctx context.Context, t *todo.Todo) (id int64, err error) {
	ctx, done := s.store.instrument(ctx, "Insert")
	defer func() { done(err) }()

	if s.tx.DriverName() == DriverPostgres {
		q := s.tx.Rebind(insertTodoQuery + ` RETURNING id`)
		if err := s.tx.QueryRowxContext(ctx, q, t.Title, t.Completed).Scan(&id); err != nil {
			return 0, classify("Insert", err)
		}
		return id, nil
	}

	res, err := s.tx.ExecContext(ctx, s.tx.Rebind(insertTodoQuery), t.Title, t.Completed)
	if err != nil {
		return 0, classify("Insert", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, classify("Insert", err)
	}
	return id, nil
}

func (s *session) ListAll(ctx context.Context) (todos []todo.Todo, err error) {
	ctx, done := s.store.instrument(ctx, "ListAll")
	defer func() { done(err) }()

	todos = make([]todo.Todo, 0)
	if err := s.tx.SelectContext(ctx, &todos, listTodosQuery); err != nil {
		return nil, classify("ListAll", err)
	}
	return todos, nil
}

func (s *session) Get(ctx context.Context, id int64) (t *todo.Todo, err error) {
	ctx, done := s.store.instrument(ctx, "Get")
	defer func() { done(err) }()

	var row todo.Todo
	if err := s.tx.GetContext(ctx, &row, s.tx.Rebind(getTodoQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: entityTodo, ID: id}
		}
		return nil, classify("Get", err)
	}
	return &row, nil
}

func (s *session) Update(ctx context.Context, t *todo.Todo) (err error) {
	ctx, done := s.store.instrument(ctx, "Update")
	defer func() { done(err) }()

	res, err := s.tx.ExecContext(ctx, s.tx.Rebind(updateTodoQuery), t.Title, t.Completed, t.ID)
	if err != nil {
		return classify("Update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify("Update", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: entityTodo, ID: t.ID}
	}
	return nil
}

func (s *session) DeleteCompleted(ctx context.Context) (n int64, err error) {
	ctx, done := s.store.instrument(ctx, "DeleteCompleted")
	defer func() { done(err) }()

	res, err := s.tx.ExecContext(ctx, s.tx.Rebind(deleteCompletedQuery), true)
	if err != nil {
		return 0, classify("DeleteCompleted", err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		return 0, classify("DeleteCompleted", err)
	}
	return n, nil
}
