package config

import "sync/atomic"

// current is the process-wide configuration installed by Initialize.
var current atomic.Pointer[Config]

// Initialize loads the given dotenv files (".env" when none are named), then
// the YAML file at path with BOTCHAT_* overrides, and installs the result as
// the process configuration. An empty path uses the defaults.
//
// Each successful call replaces the installed configuration; a failed call
// leaves it untouched.
func Initialize(path string, envFiles ...string) (*Config, error) {
	if err := LoadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, err
	}

	current.Store(cfg)
	return cfg, nil
}

// GetConfig returns the installed configuration, or nil before Initialize.
//
// Library packages take a *Config or a section explicitly; only the CLI
// reads the global.
func GetConfig() *Config {
	return current.Load()
}

// SetConfig installs cfg as the process configuration. Tests use it to
// reset state.
func SetConfig(cfg *Config) {
	current.Store(cfg)
}
