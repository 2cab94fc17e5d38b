package store

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

const (
	pgCheckViolation    = "23514"
	mysqlCheckViolation = 3819
)

// classify converts a driver error into the domain taxonomy. Constraint
// violations on the title column become validation errors; everything else is
// a storage failure.
func classify(op string, err error) error {
	if isCheckViolation(err) {
		return &domain.ValidationError{Fields: map[string]string{
			"title": fmt.Sprintf("must be %d-%d characters long", todo.MinTitleLength, todo.MaxTitleLength),
		}}
	}
	return &domain.StorageError{Op: op, Err: err}
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCheckViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlCheckViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintCheck
	}

	return false
}
