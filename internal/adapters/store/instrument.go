package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/todo-service/internal/adapters/store"

// dbSystem maps a driver name to the OpenTelemetry db.system value.
func dbSystem(driver string) string {
	switch driver {
	case DriverPostgres:
		return "postgresql"
	case DriverMySQL:
		return "mysql"
	case DriverSQLite:
		return "sqlite"
	default:
		return driver
	}
}

// instrument starts a client span for a store operation and returns a
// function that ends the span and records duration and count metrics.
// Not-found and validation outcomes are recorded as "miss", not "error".
func (s *Store) instrument(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	system := dbSystem(s.db.DriverName())

	ctx, span := otel.Tracer(tracerName).Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", system),
			attribute.String("db.operation", op),
		),
	)

	return ctx, func(err error) {
		defer span.End()

		result := "success"
		switch {
		case err == nil:
		case isBreakerSuccess(err):
			result = "miss"
		default:
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		if s.metrics == nil {
			return
		}

		attrs := metric.WithAttributes(
			telemetry.AttrDBSystem.String(system),
			telemetry.AttrDBOperation.String(op),
			telemetry.AttrResult.String(result),
		)
		s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
	}
}
