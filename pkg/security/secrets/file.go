package secrets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FileProvider serves a single secret stored in a file, in the style of a
// mounted Kubernetes secret. Every name resolves to the file contents.
//
// The file must be a regular file readable only by its owner (0600 or 0400).
type FileProvider struct {
	Path string
}

// NewFileProvider creates a provider reading path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// GetSecret reads and trims the file.
func (p *FileProvider) GetSecret(ctx context.Context, name string) (string, error) {
	if p.Path == "" {
		return "", fmt.Errorf("%w: no secret file configured", ErrSecretNotFound)
	}

	info, err := os.Stat(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: secret file %s does not exist", ErrSecretNotFound, p.Path)
		}
		return "", fmt.Errorf("failed to stat secret file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("secret path is not a regular file: %s", p.Path)
	}

	mode := info.Mode().Perm()
	if mode != 0600 && mode != 0400 {
		return "", fmt.Errorf("insecure permissions on %s: %o (expected 0600 or 0400)", p.Path, mode)
	}

	// #nosec G304 - path comes from operator configuration
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file: %w", err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%w: secret file %s is empty", ErrSecretNotFound, p.Path)
	}

	return value, nil
}

// Provider returns the provider name.
func (p *FileProvider) Provider() string {
	return "file"
}
