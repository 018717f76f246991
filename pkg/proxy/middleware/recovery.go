package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"mercator-hq/botchat/pkg/proxy"
)

// RecoveryMiddleware turns a panic into a 500 envelope:
//
//	{"error":"Internal Server Error","message":"<panic value>","timestamp":"..."}
//
// The stack trace is logged, never returned. If the handler had already
// started writing, the response is left as is.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slog.ErrorContext(r.Context(), "panic in handler",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			if rw.written {
				return
			}

			envelope := proxy.NewErrorEnvelope(proxy.ErrMsgInternal, fmt.Sprint(rec))
			proxy.WriteErrorResponse(rw, http.StatusInternalServerError, envelope)
		}()

		next.ServeHTTP(rw, r)
	})
}
