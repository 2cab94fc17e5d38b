package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

const timeoutDetail = "the request did not complete before its deadline"

// Timeout returns middleware that bounds each request by d. The handler's
// context carries the deadline, so store sessions it opens are cut off too.
// If the handler has not returned when the deadline passes, the client gets
// a 504 problem response and later handler writes fail with
// http.ErrHandlerTimeout.
//
// The handler runs on its own goroutine against a buffered writer; only one
// of the handler's response or the 504 reaches the client. A panic on that
// goroutine is re-raised on the serving goroutine so Recovery handles it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := newTimeoutWriter()
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
						return
					}
					close(done)
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.commit(w)
			case <-ctx.Done():
				tw.expire()
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, timeoutDetail)
			}
		})
	}
}

// timeoutWriter holds the handler's response until the middleware decides
// whether it or the 504 is sent.
type timeoutWriter struct {
	header http.Header

	mu      sync.Mutex
	body    bytes.Buffer
	status  int
	expired bool
}

func newTimeoutWriter() *timeoutWriter {
	return &timeoutWriter{header: make(http.Header)}
}

func (tw *timeoutWriter) Header() http.Header { return tw.header }

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.status == 0 && !tw.expired {
		tw.status = code
	}
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	return tw.body.Write(b)
}

// commit copies the buffered response to w. The handler has returned, so
// its header map is no longer being written.
func (tw *timeoutWriter) commit(w http.ResponseWriter) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	maps.Copy(w.Header(), tw.header)
	if tw.status != 0 {
		w.WriteHeader(tw.status)
	}
	_, _ = w.Write(tw.body.Bytes())
}

func (tw *timeoutWriter) expire() {
	tw.mu.Lock()
	tw.expired = true
	tw.mu.Unlock()
}
