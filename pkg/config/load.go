package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "BOTCHAT_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// An empty path yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention BOTCHAT_SECTION_FIELD (e.g., BOTCHAT_SERVER_LISTEN_ADDRESS).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file (optional)
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables that are already set are left untouched and
// missing files are skipped. With no arguments it reads ".env".
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %q: %w", file, err)
		}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	setString(&cfg.Server.ListenAddress, "SERVER_LISTEN_ADDRESS")
	setString(&cfg.Server.ChatPath, "SERVER_CHAT_PATH")
	setDuration(&cfg.Server.ReadTimeout, "SERVER_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT")
	setDuration(&cfg.Server.IdleTimeout, "SERVER_IDLE_TIMEOUT")
	setDuration(&cfg.Server.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT")
	setInt(&cfg.Server.MaxHeaderBytes, "SERVER_MAX_HEADER_BYTES")
	setString(&cfg.Server.CORS.AllowedOrigin, "SERVER_CORS_ALLOWED_ORIGIN")
	setList(&cfg.Server.CORS.AllowedMethods, "SERVER_CORS_ALLOWED_METHODS")
	setList(&cfg.Server.CORS.AllowedHeaders, "SERVER_CORS_ALLOWED_HEADERS")

	// Upstream overrides
	setString(&cfg.Upstream.BaseURL, "UPSTREAM_BASE_URL")
	setString(&cfg.Upstream.Model, "UPSTREAM_MODEL")
	setFloat(&cfg.Upstream.Temperature, "UPSTREAM_TEMPERATURE")
	setInt(&cfg.Upstream.MaxTokens, "UPSTREAM_MAX_TOKENS")
	setDuration(&cfg.Upstream.Timeout, "UPSTREAM_TIMEOUT")
	setString(&cfg.Upstream.APIKeyEnv, "UPSTREAM_API_KEY_ENV")
	setString(&cfg.Upstream.APIKeyFile, "UPSTREAM_API_KEY_FILE")

	// Client overrides
	setString(&cfg.Client.ProxyURL, "CLIENT_PROXY_URL")
	setDuration(&cfg.Client.Timeout, "CLIENT_TIMEOUT")
	setInt(&cfg.Client.MaxAttempts, "CLIENT_MAX_ATTEMPTS")
	setDuration(&cfg.Client.BackoffStep, "CLIENT_BACKOFF_STEP")
	setString(&cfg.Client.Locale, "CLIENT_LOCALE")
	setString(&cfg.Client.MarkdownStyle, "CLIENT_MARKDOWN_STYLE")

	// Telemetry overrides
	setString(&cfg.Telemetry.Logging.Level, "TELEMETRY_LOGGING_LEVEL")
	setString(&cfg.Telemetry.Logging.Format, "TELEMETRY_LOGGING_FORMAT")
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = &b
		}
	}
	setString(&cfg.Telemetry.Metrics.Path, "TELEMETRY_METRICS_PATH")
	if val := os.Getenv(EnvPrefix + "TELEMETRY_TRACING_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Tracing.Enabled = b
		}
	}
	setString(&cfg.Telemetry.Tracing.Endpoint, "TELEMETRY_TRACING_ENDPOINT")
	setString(&cfg.Telemetry.Tracing.Sampler, "TELEMETRY_TRACING_SAMPLER")
	setFloat(&cfg.Telemetry.Tracing.SampleRatio, "TELEMETRY_TRACING_SAMPLE_RATIO")
}

func setString(dst *string, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		*dst = val
	}
}

func setDuration(dst *time.Duration, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}

func setInt(dst *int, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}

func setFloat(dst *float64, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*dst = f
		}
	}
}

// setList parses a comma separated list, e.g. "POST, OPTIONS".
func setList(dst *[]string, key string) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return
	}

	var items []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) > 0 {
		*dst = items
	}
}
