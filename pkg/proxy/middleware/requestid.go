package middleware

import (
	"net/http"

	"mercator-hq/botchat/pkg/proxy"
	"mercator-hq/botchat/pkg/telemetry/logging"

	"github.com/google/uuid"
)

// maxRequestIDLength bounds client-supplied IDs.
const maxRequestIDLength = 128

// RequestIDMiddleware puts a request ID in the context and the X-Request-ID
// response header. A client-supplied X-Request-ID is reused; otherwise a
// random UUID is generated.
//
// Example usage:
//
//	handler = RequestIDMiddleware(handler)
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(proxy.RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		ctx := logging.WithRequestID(r.Context(), requestID)
		w.Header().Set(proxy.RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
