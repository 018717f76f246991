package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"mercator-hq/botchat/pkg/config"
)

// CORSMiddleware sets the cross-origin headers on every response, before the
// wrapped handler runs, so success, error and recovered-panic responses all
// carry them. Preflight OPTIONS requests are answered with 204 and never
// reach the handler.
//
// With the default configuration every response carries:
//
//	Access-Control-Allow-Origin: *
//	Access-Control-Allow-Methods: POST, OPTIONS
//	Access-Control-Allow-Headers: Content-Type, Authorization
func CORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if cfg.AllowedOrigin != "" {
				h.Set("Access-Control-Allow-Origin", cfg.AllowedOrigin)
				if cfg.AllowedOrigin != "*" {
					h.Add("Vary", "Origin")
				}
			}
			if methods != "" {
				h.Set("Access-Control-Allow-Methods", methods)
			}
			if headers != "" {
				h.Set("Access-Control-Allow-Headers", headers)
			}

			if r.Method == http.MethodOptions {
				if cfg.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
