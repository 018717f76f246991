package config

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
//
// The API credential is deliberately not validated here: a missing key is
// reported per request by the proxy endpoint instead of refusing to start.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateUpstream(&cfg.Upstream)...)
	errs = append(errs, validateClient(&cfg.Client)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	// The host write ceiling must outlive the upstream bound.
	if cfg.Server.WriteTimeout > 0 && cfg.Upstream.Timeout > 0 && cfg.Server.WriteTimeout <= cfg.Upstream.Timeout {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: fmt.Sprintf("write timeout (%s) must exceed upstream.timeout (%s)", cfg.Server.WriteTimeout, cfg.Upstream.Timeout),
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	}

	if !strings.HasPrefix(cfg.ChatPath, "/") {
		errs = append(errs, FieldError{
			Field:   "server.chat_path",
			Message: "chat path must start with '/'",
		})
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must be positive",
		})
	}
	if cfg.IdleTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.idle_timeout",
			Message: "idle timeout must be positive",
		})
	}

	if cfg.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes must be non-negative",
		})
	}
	if cfg.MaxHeaderBytes > 10*1024*1024 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes exceeds reasonable limit (10MB)",
		})
	}

	if cfg.CORS.MaxAge < 0 {
		errs = append(errs, FieldError{
			Field:   "server.cors.max_age",
			Message: "max age must be non-negative",
		})
	}

	return errs
}

// validateUpstream validates upstream API configuration.
func validateUpstream(cfg *UpstreamConfig) []FieldError {
	var errs []FieldError

	if cfg.BaseURL == "" {
		errs = append(errs, FieldError{
			Field:   "upstream.base_url",
			Message: "base URL is required",
		})
	} else if u, err := url.Parse(cfg.BaseURL); err != nil {
		errs = append(errs, FieldError{
			Field:   "upstream.base_url",
			Message: fmt.Sprintf("invalid URL format: %v", err),
		})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, FieldError{
			Field:   "upstream.base_url",
			Message: fmt.Sprintf("unsupported scheme %q: must be http or https", u.Scheme),
		})
	}

	if cfg.Model == "" {
		errs = append(errs, FieldError{
			Field:   "upstream.model",
			Message: "model is required",
		})
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		errs = append(errs, FieldError{
			Field:   "upstream.temperature",
			Message: "temperature must be between 0 and 2",
		})
	}

	if cfg.MaxTokens <= 0 {
		errs = append(errs, FieldError{
			Field:   "upstream.max_tokens",
			Message: "max tokens must be positive",
		})
	}

	if cfg.Timeout < MinUpstreamTimeout {
		errs = append(errs, FieldError{
			Field:   "upstream.timeout",
			Message: fmt.Sprintf("timeout must be at least %s", MinUpstreamTimeout),
		})
	}

	if cfg.APIKeyEnv == "" && cfg.APIKeyFile == "" {
		errs = append(errs, FieldError{
			Field:   "upstream.api_key_env",
			Message: "an environment variable or file for the API key is required",
		})
	}

	return errs
}

// validateClient validates chat client configuration.
func validateClient(cfg *ClientConfig) []FieldError {
	var errs []FieldError

	if cfg.ProxyURL == "" {
		errs = append(errs, FieldError{
			Field:   "client.proxy_url",
			Message: "proxy URL is required",
		})
	} else if _, err := url.ParseRequestURI(cfg.ProxyURL); err != nil {
		errs = append(errs, FieldError{
			Field:   "client.proxy_url",
			Message: fmt.Sprintf("invalid URL format: %v", err),
		})
	}

	if cfg.Timeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "client.timeout",
			Message: "timeout must be positive",
		})
	}

	if cfg.MaxAttempts < 1 {
		errs = append(errs, FieldError{
			Field:   "client.max_attempts",
			Message: "max attempts must be at least 1",
		})
	}
	if cfg.MaxAttempts > 10 {
		errs = append(errs, FieldError{
			Field:   "client.max_attempts",
			Message: "max attempts exceeds reasonable limit (10)",
		})
	}

	if cfg.BackoffStep < 0 {
		errs = append(errs, FieldError{
			Field:   "client.backoff_step",
			Message: "backoff step must be non-negative",
		})
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid log level %q: must be one of debug, info, warn, error", cfg.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid log format %q: must be 'json' or 'text'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.IsEnabled() && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: "metrics path must start with '/'",
		})
	}

	if cfg.Tracing.Enabled {
		switch cfg.Tracing.Sampler {
		case "always", "never", "ratio":
		default:
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sampler",
				Message: fmt.Sprintf("invalid sampler %q: must be one of always, never, ratio", cfg.Tracing.Sampler),
			})
		}
		if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sample_ratio",
				Message: "sample ratio must be between 0 and 1",
			})
		}
		if cfg.Tracing.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.endpoint",
				Message: "endpoint is required when tracing is enabled",
			})
		}
	}

	return errs
}
