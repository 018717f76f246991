package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Manager tries providers in order until one returns a value.
type Manager struct {
	providers []SecretProvider
}

// NewManager creates a manager over providers, highest priority first.
func NewManager(providers ...SecretProvider) *Manager {
	return &Manager{providers: providers}
}

// GetSecret returns the value from the first provider that has one.
// A provider failing with anything other than ErrSecretNotFound stops the
// search, so a misconfigured file is reported instead of silently skipped.
func (m *Manager) GetSecret(ctx context.Context, name string) (string, error) {
	for _, provider := range m.providers {
		value, err := provider.GetSecret(ctx, name)
		if err == nil {
			slog.DebugContext(ctx, "secret resolved",
				"provider", provider.Provider(),
				"name", redactSecretName(name),
			)
			return value, nil
		}

		if !errors.Is(err, ErrSecretNotFound) {
			return "", fmt.Errorf("%s provider: %w", provider.Provider(), err)
		}

		slog.DebugContext(ctx, "secret not found in provider",
			"provider", provider.Provider(),
			"name", redactSecretName(name),
		)
	}

	return "", fmt.Errorf("%w: %q", ErrSecretNotFound, name)
}

// redactSecretName shortens a secret name for logging.
func redactSecretName(name string) string {
	if len(name) <= 4 {
		return "***"
	}
	return name[:2] + "..." + name[len(name)-2:]
}
