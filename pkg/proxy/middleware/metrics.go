package middleware

import (
	"net/http"
	"time"

	"mercator-hq/botchat/pkg/telemetry/metrics"
)

// routeOther labels every path outside the known routes, keeping label
// cardinality bounded.
const routeOther = "other"

// MetricsMiddleware records request count, latency and in-flight requests.
// Paths not listed in routes are recorded as "other".
func MetricsMiddleware(collector *metrics.Collector, routes ...string) func(http.Handler) http.Handler {
	known := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		known[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if !collector.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if _, ok := known[route]; !ok {
				route = routeOther
			}

			done := collector.TrackInFlight()
			defer done()

			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			collector.RecordHTTPRequest(route, r.Method, rw.statusCode, time.Since(start))
		})
	}
}
