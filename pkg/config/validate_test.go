package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "missing listen address",
			mutate:    func(c *Config) { c.Server.ListenAddress = "" },
			wantField: "server.listen_address",
		},
		{
			name:      "relative chat path",
			mutate:    func(c *Config) { c.Server.ChatPath = "api/chat" },
			wantField: "server.chat_path",
		},
		{
			name:      "oversized header limit",
			mutate:    func(c *Config) { c.Server.MaxHeaderBytes = 11 * 1024 * 1024 },
			wantField: "server.max_header_bytes",
		},
		{
			name:      "write timeout not above upstream timeout",
			mutate:    func(c *Config) { c.Server.WriteTimeout = 60 * time.Second },
			wantField: "server.write_timeout",
		},
		{
			name:      "unsupported base url scheme",
			mutate:    func(c *Config) { c.Upstream.BaseURL = "ftp://api.example.com" },
			wantField: "upstream.base_url",
		},
		{
			name:      "temperature out of range",
			mutate:    func(c *Config) { c.Upstream.Temperature = 2.5 },
			wantField: "upstream.temperature",
		},
		{
			name:      "negative max tokens",
			mutate:    func(c *Config) { c.Upstream.MaxTokens = -1 },
			wantField: "upstream.max_tokens",
		},
		{
			name:      "upstream timeout below floor",
			mutate:    func(c *Config) { c.Upstream.Timeout = 29 * time.Second },
			wantField: "upstream.timeout",
		},
		{
			name: "no credential source",
			mutate: func(c *Config) {
				c.Upstream.APIKeyEnv = ""
				c.Upstream.APIKeyFile = ""
			},
			wantField: "upstream.api_key_env",
		},
		{
			name:      "unparsable proxy url",
			mutate:    func(c *Config) { c.Client.ProxyURL = "not a url" },
			wantField: "client.proxy_url",
		},
		{
			name:      "zero attempts",
			mutate:    func(c *Config) { c.Client.MaxAttempts = 0 },
			wantField: "client.max_attempts",
		},
		{
			name:      "too many attempts",
			mutate:    func(c *Config) { c.Client.MaxAttempts = 11 },
			wantField: "client.max_attempts",
		},
		{
			name:      "negative backoff",
			mutate:    func(c *Config) { c.Client.BackoffStep = -time.Second },
			wantField: "client.backoff_step",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Telemetry.Logging.Level = "verbose" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "unknown log format",
			mutate:    func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			wantField: "telemetry.logging.format",
		},
		{
			name: "unknown tracing sampler",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Sampler = "sometimes"
			},
			wantField: "telemetry.tracing.sampler",
		},
		{
			name:      "relative metrics path",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			wantField: "telemetry.metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatalf("expected validation error for %s", tt.wantField)
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}

			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected error on %s, got %v", tt.wantField, verr.Errors)
			}
		})
	}
}

func TestValidate_FileOnlyCredential(t *testing.T) {
	cfg := Default()
	cfg.Upstream.APIKeyEnv = ""
	cfg.Upstream.APIKeyFile = "/run/secrets/deepseek"

	if err := Validate(cfg); err != nil {
		t.Errorf("file credential source should be enough, got: %v", err)
	}
}

func TestValidate_MetricsPathIgnoredWhenDisabled(t *testing.T) {
	cfg := Default()
	disabled := false
	cfg.Telemetry.Metrics.Enabled = &disabled
	cfg.Telemetry.Metrics.Path = "metrics"

	if err := Validate(cfg); err != nil {
		t.Errorf("disabled metrics should skip path check, got: %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errs     []FieldError
		contains string
	}{
		{
			name:     "no errors",
			contains: "configuration validation failed",
		},
		{
			name:     "single error",
			errs:     []FieldError{{Field: "upstream.model", Message: "model is required"}},
			contains: "configuration validation failed: upstream.model: model is required",
		},
		{
			name: "multiple errors",
			errs: []FieldError{
				{Field: "upstream.model", Message: "model is required"},
				{Field: "client.timeout", Message: "timeout must be positive"},
			},
			contains: "with 2 errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidationError{Errors: tt.errs}.Error()
			if !strings.Contains(msg, tt.contains) {
				t.Errorf("expected %q in %q", tt.contains, msg)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Upstream.Model = ""
	cfg.Client.ProxyURL = ""
	cfg.Telemetry.Logging.Level = "loud"

	err := Validate(cfg)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
}
