// Package middleware provides the HTTP middleware of the BotChat proxy.
//
// # Middleware Chain
//
// The server applies them in this order, outermost first:
//
//	Recovery → CORS → RequestID → Tracing → Logging → Metrics → mux
//
// Recovery is outermost so a panic anywhere below still becomes an
// envelope. CORS comes next and sets its headers before anything else runs,
// so every outcome, including the recovered 500 and the 405, carries them.
// RequestID runs before Logging so the access log line has the ID.
//
// Use Chain to compose them:
//
//	handler := middleware.Chain(mux,
//	    middleware.RecoveryMiddleware,
//	    middleware.CORSMiddleware(cfg.Server.CORS),
//	    middleware.RequestIDMiddleware,
//	    tracing.HTTPMiddleware(tracer),
//	    middleware.LoggingMiddleware,
//	    middleware.MetricsMiddleware(collector, cfg.Server.ChatPath),
//	)
package middleware
