package config

import "time"

// Config is the root configuration structure for BotChat.
// It contains the settings for the proxy server, the upstream completion API,
// the terminal chat client, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, the chat route, and CORS headers.
	Server ServerConfig `yaml:"server"`

	// Upstream contains configuration for the third-party chat completion API
	// the proxy forwards transcripts to.
	Upstream UpstreamConfig `yaml:"upstream"`

	// Client contains configuration for the chat client request cycle.
	Client ClientConfig `yaml:"client"`

	// Telemetry contains the observability configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP proxy server.
type ServerConfig struct {
	// ListenAddress is the address and port for the proxy to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ChatPath is the route of the chat proxy endpoint.
	// Default: "/api/chat"
	ChatPath string `yaml:"chat_path"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the host ceiling for writing a response. It must be
	// larger than upstream.timeout so the upstream bound fires first.
	// Default: 75s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS contains the cross-origin headers attached to every response.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains the cross-origin headers written on every response.
type CORSConfig struct {
	// AllowedOrigin is the value of Access-Control-Allow-Origin.
	// Default: "*"
	AllowedOrigin string `yaml:"allowed_origin"`

	// AllowedMethods is the list of methods for Access-Control-Allow-Methods.
	// Default: ["POST", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is the list of headers for Access-Control-Allow-Headers.
	// Default: ["Content-Type", "Authorization"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// MaxAge is the preflight cache lifetime in seconds. Zero omits the header.
	MaxAge int `yaml:"max_age"`
}

// UpstreamConfig contains configuration for the upstream completion API.
type UpstreamConfig struct {
	// BaseURL is the base URL of the OpenAI-compatible API.
	// The proxy posts to BaseURL + "/chat/completions".
	// Default: "https://api.deepseek.com/v1"
	BaseURL string `yaml:"base_url"`

	// Model is the model identifier sent with every request.
	// Default: "deepseek-chat"
	Model string `yaml:"model"`

	// Temperature is the sampling temperature sent with every request.
	// Default: 0.7
	Temperature float64 `yaml:"temperature"`

	// MaxTokens is the completion token ceiling sent with every request.
	// Default: 2000
	MaxTokens int `yaml:"max_tokens"`

	// Timeout bounds a single upstream call. Must be at least 30s.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// APIKeyEnv is the environment variable holding the API credential.
	// Default: "DEEPSEEK_API_KEY"
	APIKeyEnv string `yaml:"api_key_env"`

	// APIKeyFile is an optional file holding the API credential. It is
	// consulted when the environment variable is empty.
	APIKeyFile string `yaml:"api_key_file"`
}

// ClientConfig contains configuration for the chat client request cycle.
type ClientConfig struct {
	// ProxyURL is the full URL of the proxy chat endpoint.
	// Default: "http://127.0.0.1:8080/api/chat"
	ProxyURL string `yaml:"proxy_url"`

	// Timeout bounds the whole request cycle including retries.
	// Default: 90s
	Timeout time.Duration `yaml:"timeout"`

	// MaxAttempts is the number of attempts made on transport failures.
	// Default: 3
	MaxAttempts int `yaml:"max_attempts"`

	// BackoffStep is the linear backoff unit; attempt n waits n*BackoffStep.
	// Default: 1s
	BackoffStep time.Duration `yaml:"backoff_step"`

	// Locale selects the language of synthesized error turns (BCP 47).
	// Default: "zh"
	Locale string `yaml:"locale"`

	// MarkdownStyle is the glamour style used to render assistant turns.
	// Use "notty" to disable styling.
	// Default: "dark"
	MarkdownStyle string `yaml:"markdown_style"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains OpenTelemetry tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Path is the HTTP path of the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace prefixes every metric name.
	// Default: "botchat"
	Namespace string `yaml:"namespace"`
}

// IsEnabled reports whether metrics are enabled. An unset value means enabled.
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether spans are recorded and exported.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler is the sampling strategy: "always", "never" or "ratio".
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample when Sampler is "ratio".
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector address.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "botchat"
	ServiceName string `yaml:"service_name"`
}
