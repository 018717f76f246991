package secrets

import (
	"context"
	"errors"
	"log/slog"

	"mercator-hq/botchat/pkg/config"
)

// CredentialProvider hands out the upstream API key. It is resolved once at
// process start and never changes afterwards.
type CredentialProvider interface {
	// APIKey returns the key and whether one is configured.
	APIKey() (string, bool)
}

// StaticCredential is an immutable credential snapshot.
type StaticCredential struct {
	key string
}

// NewStaticCredential wraps key. An empty key means "not configured".
func NewStaticCredential(key string) *StaticCredential {
	return &StaticCredential{key: key}
}

// APIKey implements CredentialProvider.
func (c *StaticCredential) APIKey() (string, bool) {
	if c == nil || c.key == "" {
		return "", false
	}
	return c.key, true
}

// Configured reports whether a key is present.
func (c *StaticCredential) Configured() bool {
	_, ok := c.APIKey()
	return ok
}

// LoadCredential resolves the upstream key from the environment variable
// named by cfg.APIKeyEnv, falling back to cfg.APIKeyFile.
//
// A missing key is not an error: the proxy starts and reports the absence
// per request. Only a broken secret file (wrong permissions, unreadable) is.
func LoadCredential(ctx context.Context, cfg config.UpstreamConfig) (*StaticCredential, error) {
	providers := []SecretProvider{NewEnvProvider("")}
	if cfg.APIKeyFile != "" {
		providers = append(providers, NewFileProvider(cfg.APIKeyFile))
	}

	key, err := NewManager(providers...).GetSecret(ctx, cfg.APIKeyEnv)
	if err != nil {
		if errors.Is(err, ErrSecretNotFound) {
			slog.WarnContext(ctx, "upstream API key is not configured",
				"env", cfg.APIKeyEnv,
				"file", cfg.APIKeyFile,
			)
			return NewStaticCredential(""), nil
		}
		return nil, err
	}

	return NewStaticCredential(key), nil
}
