package middleware

import "net/http"

// Chain composes middleware into one, with the first argument outermost:
//
//	Chain(Recovery(logger), RequestID(), Logging(logger))(handler)
//
// is Recovery(RequestID(Logging(handler))). The router installs the whole
// pipeline as a single chi middleware built with Chain.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
