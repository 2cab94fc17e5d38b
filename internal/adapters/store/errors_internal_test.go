package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		wantValidation bool
	}{
		{
			name:           "postgres check violation",
			err:            &pgconn.PgError{Code: pgCheckViolation},
			wantValidation: true,
		},
		{
			name: "postgres unique violation",
			err:  &pgconn.PgError{Code: "23505"},
		},
		{
			name:           "mysql check violation",
			err:            &mysql.MySQLError{Number: mysqlCheckViolation},
			wantValidation: true,
		},
		{
			name: "mysql deadlock",
			err:  &mysql.MySQLError{Number: 1213},
		},
		{
			name:           "sqlite check violation",
			err:            sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			wantValidation: true,
		},
		{
			name: "sqlite not null violation",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
		},
		{
			name:           "wrapped check violation",
			err:            fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgCheckViolation}),
			wantValidation: true,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classify("Insert", tt.err)

			if tt.wantValidation {
				if !errors.Is(got, domain.ErrValidation) {
					t.Fatalf("classify() = %v, want ErrValidation", got)
				}
				return
			}

			if !errors.Is(got, domain.ErrStorage) {
				t.Fatalf("classify() = %v, want ErrStorage", got)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("classify() does not wrap the driver error %v", tt.err)
			}
		})
	}
}

func TestNormalizeDSN(t *testing.T) {
	t.Parallel()

	t.Run("mysql gains clientFoundRows", func(t *testing.T) {
		t.Parallel()

		got, err := normalizeDSN(DriverMySQL, "todo:secret@tcp(localhost:3306)/todo")
		if err != nil {
			t.Fatalf("normalizeDSN() error = %v", err)
		}
		if !strings.Contains(got, "clientFoundRows=true") {
			t.Errorf("normalizeDSN() = %q, want clientFoundRows=true", got)
		}
		if !strings.Contains(got, "parseTime=true") {
			t.Errorf("normalizeDSN() = %q, want parseTime=true", got)
		}
	})

	t.Run("mysql invalid dsn", func(t *testing.T) {
		t.Parallel()

		if _, err := normalizeDSN(DriverMySQL, "not a dsn"); err == nil {
			t.Fatal("normalizeDSN() expected error for invalid mysql dsn")
		}
	})

	t.Run("other drivers unchanged", func(t *testing.T) {
		t.Parallel()

		for _, driver := range []string{DriverSQLite, DriverPostgres} {
			const dsn = "file:todo.db?_busy_timeout=5000"
			got, err := normalizeDSN(driver, dsn)
			if err != nil {
				t.Fatalf("normalizeDSN(%s) error = %v", driver, err)
			}
			if got != dsn {
				t.Errorf("normalizeDSN(%s) = %q, want %q", driver, got, dsn)
			}
		}
	})
}

func TestToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want uint32
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 3, want: 3},
	}

	for _, tt := range tests {
		if got := toUint32(tt.in); got != tt.want {
			t.Errorf("toUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
