package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"

// unmatchedRoute labels requests that no route matched.
const unmatchedRoute = "unmatched"

// OpenTelemetry returns middleware that creates a trace span for each incoming
// request and records server request metrics. It extracts W3C Trace Context
// from incoming headers so that distributed traces are connected.
//
// Spans and metrics are labelled with the chi route pattern (for example
// "/{id}/toggle") rather than the raw path, so todo ids do not become
// metric dimensions. Request and correlation IDs from earlier middleware are
// attached to the span.
//
// If metrics is nil, metric recording is skipped (safe nil check).
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
					attribute.String("request_id", RequestIDFromContext(ctx)),
					attribute.String("correlation_id", CorrelationIDFromContext(ctx)),
				),
			)
			defer span.End()

			rw := wrapResponseWriter(w)
			finish := func(status int) {
				route := routePattern(r)
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(
					attribute.String("http.route", route),
					attribute.Int("http.status_code", status),
					attribute.Int64("http.response.body.size", rw.written),
				)
				if status >= http.StatusInternalServerError {
					span.SetStatus(codes.Error, http.StatusText(status))
				}
				recordServerMetrics(ctx, metrics, r.Method, route, start, status)
			}

			// A panic is reported as a 500 here and then handed on to Recovery.
			defer func() {
				if v := recover(); v != nil {
					span.RecordError(fmt.Errorf("panic: %v", v))
					finish(http.StatusInternalServerError)
					panic(v)
				}
			}()

			next.ServeHTTP(rw, r.WithContext(ctx))
			finish(rw.statusCode)
		})
	}
}

// routePattern returns the matched chi route pattern. chi fills the route
// context in place while routing, so the pattern is available once the
// downstream handler has returned.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}

// recordServerMetrics records server request duration and count metrics.
// Safe to call with nil metrics.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, duration, attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
