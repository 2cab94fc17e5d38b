// Package middleware provides the HTTP middleware that wraps every todo and
// health route.
//
// The router installs the pipeline in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler. Chain composes them
// so that the first argument is the outermost layer.
package middleware
