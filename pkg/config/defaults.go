package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultChatPath        = "/api/chat"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 75 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSAllowedOrigin = "*"

	// Upstream defaults
	DefaultUpstreamBaseURL     = "https://api.deepseek.com/v1"
	DefaultUpstreamModel       = "deepseek-chat"
	DefaultUpstreamTemperature = 0.7
	DefaultUpstreamMaxTokens   = 2000
	DefaultUpstreamTimeout     = 60 * time.Second
	DefaultUpstreamAPIKeyEnv   = "DEEPSEEK_API_KEY"

	// MinUpstreamTimeout is the smallest accepted upstream bound.
	MinUpstreamTimeout = 30 * time.Second

	// Client defaults
	DefaultClientProxyURL      = "http://127.0.0.1:8080/api/chat"
	DefaultClientTimeout       = 90 * time.Second
	DefaultClientMaxAttempts   = 3
	DefaultClientBackoffStep   = time.Second
	DefaultClientLocale        = "zh"
	DefaultClientMarkdownStyle = "dark"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "botchat"

	// Tracing defaults
	DefaultTracingSampler     = "ratio"
	DefaultTracingSampleRatio = 1.0
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingServiceName = "botchat"
)

// DefaultCORSAllowedMethods is the default Access-Control-Allow-Methods list.
var DefaultCORSAllowedMethods = []string{"POST", "OPTIONS"}

// DefaultCORSAllowedHeaders is the default Access-Control-Allow-Headers list.
var DefaultCORSAllowedHeaders = []string{"Content-Type", "Authorization"}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ChatPath == "" {
		cfg.Server.ChatPath = DefaultChatPath
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	// CORS defaults
	if cfg.Server.CORS.AllowedOrigin == "" {
		cfg.Server.CORS.AllowedOrigin = DefaultCORSAllowedOrigin
	}
	if len(cfg.Server.CORS.AllowedMethods) == 0 {
		cfg.Server.CORS.AllowedMethods = append([]string(nil), DefaultCORSAllowedMethods...)
	}
	if len(cfg.Server.CORS.AllowedHeaders) == 0 {
		cfg.Server.CORS.AllowedHeaders = append([]string(nil), DefaultCORSAllowedHeaders...)
	}

	// Upstream defaults
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = DefaultUpstreamBaseURL
	}
	if cfg.Upstream.Model == "" {
		cfg.Upstream.Model = DefaultUpstreamModel
	}
	if cfg.Upstream.Temperature == 0 {
		cfg.Upstream.Temperature = DefaultUpstreamTemperature
	}
	if cfg.Upstream.MaxTokens == 0 {
		cfg.Upstream.MaxTokens = DefaultUpstreamMaxTokens
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = DefaultUpstreamTimeout
	}
	if cfg.Upstream.APIKeyEnv == "" {
		cfg.Upstream.APIKeyEnv = DefaultUpstreamAPIKeyEnv
	}

	// Client defaults
	if cfg.Client.ProxyURL == "" {
		cfg.Client.ProxyURL = DefaultClientProxyURL
	}
	if cfg.Client.Timeout == 0 {
		cfg.Client.Timeout = DefaultClientTimeout
	}
	if cfg.Client.MaxAttempts == 0 {
		cfg.Client.MaxAttempts = DefaultClientMaxAttempts
	}
	if cfg.Client.BackoffStep == 0 {
		cfg.Client.BackoffStep = DefaultClientBackoffStep
	}
	if cfg.Client.Locale == "" {
		cfg.Client.Locale = DefaultClientLocale
	}
	if cfg.Client.MarkdownStyle == "" {
		cfg.Client.MarkdownStyle = DefaultClientMarkdownStyle
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 {
		cfg.Telemetry.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingServiceName
	}
}
