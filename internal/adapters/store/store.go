// Package store provides the relational adapter for the todo table. It
// implements [ports.TodoStore] on top of sqlx with one transaction per
// session, and guards session acquisition with a circuit breaker so that an
// unreachable database fails fast instead of piling up blocked requests.
//
// Construction:
//
//	st, err := store.Open(ctx, &cfg.Database, metrics, logger)
//	defer st.Close()
//	err = st.EnsureSchema(ctx)
//
// Usage from the application layer:
//
//	err := st.Session(ctx, func(s ports.TodoSession) error {
//	    t, err := s.Get(ctx, id)
//	    ...
//	    return s.Update(ctx, t)
//	})
package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
)

const healthCheckName = "database"

//go:embed schema/*.sql
var schemaFS embed.FS

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is the sqlx-backed implementation of [ports.TodoStore].
type Store struct {
	db      *sqlx.DB
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open connects to the database described by cfg, applies pool settings, and
// verifies connectivity with a ping. The caller owns the returned Store and
// must Close it.
func Open(ctx context.Context, cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	dsn, err := normalizeDSN(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	if cfg.Driver == DriverSQLite {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY between
		// concurrent transactions of this process.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}

	return New(db, cfg.CircuitBreaker, metrics, logger), nil
}

// New wraps an already opened database handle. If metrics is nil, metric
// recording is skipped. If logger is nil, logs are discarded.
func New(db *sqlx.DB, cb config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        healthCheckName,
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return cb.MaxFailures > 0 && int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		db:      db,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// Session runs fn inside a single transaction. The transaction commits when
// fn returns nil and rolls back otherwise, including when fn panics. While
// the circuit breaker is open, Session returns an error wrapping
// domain.ErrUnavailable without contacting the database.
func (s *Store) Session(ctx context.Context, fn func(ports.TodoSession) error) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.runTx(ctx, fn)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: database circuit breaker: %w", domain.ErrUnavailable, err)
	}
	return err
}

func (s *Store) runTx(ctx context.Context, fn func(ports.TodoSession) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return classify("BeginTx", err)
	}

	finished := false
	defer func() {
		if !finished {
			s.rollback(ctx, tx)
		}
	}()

	if err := fn(&session{tx: tx, store: s}); err != nil {
		return err
	}

	finished = true
	if err := tx.Commit(); err != nil {
		return classify("Commit", err)
	}
	return nil
}

func (s *Store) rollback(ctx context.Context, tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil {
		s.logger.ErrorContext(ctx, "failed to roll back transaction",
			slog.String("operation", "Session"),
			slog.Any("error", err),
		)
	}
}

// EnsureSchema creates the todo table if it does not already exist, using the
// schema file embedded for the active driver.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl, err := schemaFS.ReadFile("schema/" + s.db.DriverName() + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for driver %q: %w", s.db.DriverName(), err)
	}

	if _, err := s.db.ExecContext(ctx, string(ddl)); err != nil {
		return classify("EnsureSchema", err)
	}

	s.logger.InfoContext(ctx, "todo schema ensured", slog.String("driver", s.db.DriverName()))
	return nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string {
	return healthCheckName
}

// HealthCheck implements [ports.HealthChecker] by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// isBreakerSuccess reports whether a session outcome should count as a
// success for the circuit breaker. Client-caused outcomes never trip it.
func isBreakerSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled)
}

// normalizeDSN adjusts driver-specific DSN options the store relies on.
// For MySQL, clientFoundRows makes UPDATE report matched rather than changed
// rows so that an unchanged row is not mistaken for a missing one.
func normalizeDSN(driver, dsn string) (string, error) {
	if driver != DriverMySQL {
		return dsn, nil
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parsing mysql dsn: %w", err)
	}
	cfg.ClientFoundRows = true
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// toUint32 clamps n to the uint32 range used by gobreaker settings.
func toUint32(n int) uint32 {
	switch {
	case n <= 0:
		return 0
	case uint64(n) > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(n)
	}
}
