package secrets

import (
	"context"
	"errors"
)

// ErrSecretNotFound is returned by a provider that has no value for a name.
// Chains move on to the next provider when they see it.
var ErrSecretNotFound = errors.New("secret not found")

// SecretProvider retrieves secrets from a backend.
type SecretProvider interface {
	// GetSecret retrieves a secret by name. A missing secret is reported
	// with an error wrapping ErrSecretNotFound.
	GetSecret(ctx context.Context, name string) (string, error)

	// Provider returns the provider name (env, file).
	Provider() string
}
