package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

// errHandlerPanic is what the client sees when a handler panics. dto hides
// the detail of 5xx responses, so only the status and title reach the client.
var errHandlerPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a panic anywhere below it into a 500
// problem response. A store session that panics has already rolled back its
// transaction by the time the panic arrives here.
//
// The panic value and stack are logged together with the request ID, which is
// read from the X-Request-ID response header because Recovery runs before the
// request ID is placed in the context. If the response was already started,
// only the log entry is written. A panic with http.ErrAbortHandler is passed
// on so that net/http aborts the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrapResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errHandlerPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
