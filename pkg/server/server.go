package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"mercator-hq/botchat/pkg/config"
	"mercator-hq/botchat/pkg/proxy/handlers"
	"mercator-hq/botchat/pkg/proxy/middleware"
	"mercator-hq/botchat/pkg/security/secrets"
	"mercator-hq/botchat/pkg/telemetry/health"
	"mercator-hq/botchat/pkg/telemetry/metrics"
	"mercator-hq/botchat/pkg/telemetry/tracing"
)

// Dependencies are the components the server routes to.
type Dependencies struct {
	// Credentials supplies the upstream API key. Required.
	Credentials secrets.CredentialProvider

	// Upstream forwards completions. Required.
	Upstream handlers.Upstream

	// Metrics is optional; a nil collector records nothing.
	Metrics *metrics.Collector

	// Tracer is optional; a nil tracer creates no spans.
	Tracer *tracing.Tracer

	// Version is served on /version.
	Version health.VersionInfo
}

// Server is the BotChat proxy HTTP server.
type Server struct {
	config     *config.Config
	deps       Dependencies
	checker    *health.Checker
	httpServer *http.Server

	mu        sync.RWMutex
	isRunning bool
	addr      string
}

// NewServer creates a proxy server. It does not start listening.
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	return &Server{
		config:  cfg,
		deps:    deps,
		checker: handlers.NewHealthChecker(deps.Credentials, deps.Upstream),
	}
}

// Start listens on server.listen_address and serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.ListenAddress, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within server.shutdown_timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		_ = ln.Close()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.addr = ln.Addr().String()
	s.httpServer = &http.Server{
		Handler:        s.Handler(),
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting proxy server",
			"address", s.addr,
			"chat_path", s.config.Server.ChatPath,
			"metrics", s.deps.Metrics.Enabled(),
			"tracing", s.deps.Tracer.Enabled(),
		)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err, ok := <-errChan:
		s.setRunning(false)
		if !ok {
			return nil
		}
		return err
	}
}

// Shutdown stops accepting connections and waits for in-flight requests up
// to server.shutdown_timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	httpServer := s.httpServer
	running := s.isRunning
	s.mu.RUnlock()

	if !running || httpServer == nil {
		return nil
	}

	slog.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during server shutdown", "error", err)
		shutdownErr = fmt.Errorf("server shutdown error: %w", err)
	}

	s.setRunning(false)
	slog.Info("proxy server stopped")
	return shutdownErr
}

func (s *Server) setRunning(running bool) {
	s.mu.Lock()
	s.isRunning = running
	s.mu.Unlock()
}

// Handler builds the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	chatHandler := handlers.NewChatHandler(s.deps.Credentials, s.deps.Upstream,
		handlers.WithMetrics(s.deps.Metrics),
		handlers.WithTracer(s.deps.Tracer),
	)
	mux.Handle(s.config.Server.ChatPath, chatHandler)
	health.Register(mux, s.checker, s.deps.Version)

	routes := []string{s.config.Server.ChatPath, "/health", "/ready", "/version"}
	if s.deps.Metrics.Enabled() {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.deps.Metrics.Handler())
		routes = append(routes, s.config.Telemetry.Metrics.Path)
	}

	return middleware.Chain(mux,
		middleware.RecoveryMiddleware,
		middleware.CORSMiddleware(s.config.Server.CORS),
		middleware.RequestIDMiddleware,
		tracing.HTTPMiddleware(s.deps.Tracer),
		middleware.LoggingMiddleware,
		middleware.MetricsMiddleware(s.deps.Metrics, routes...),
	)
}

// IsRunning returns true if the server is serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Addr returns the address the server listens on once serving.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Health reports whether the server is serving and ready.
func (s *Server) Health(ctx context.Context) error {
	if !s.IsRunning() {
		return fmt.Errorf("server is not running")
	}
	if status := s.checker.CheckReadiness(ctx); !status.Ready() {
		return fmt.Errorf("server is not ready: %s", status.Status)
	}
	return nil
}
