package secrets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mercator-hq/botchat/pkg/config"
)

func writeSecret(t *testing.T, value string, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "api-key")
	if err := os.WriteFile(path, []byte(value), perm); err != nil {
		t.Fatal(err)
	}
	// WriteFile is subject to umask
	if err := os.Chmod(path, perm); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEnvProvider_GetSecret(t *testing.T) {
	t.Setenv("BOTCHAT_TEST_API_KEY", "  sk-env  ")

	p := NewEnvProvider("")
	for _, name := range []string{"BOTCHAT_TEST_API_KEY", "botchat-test-api-key"} {
		value, err := p.GetSecret(context.Background(), name)
		if err != nil {
			t.Fatalf("GetSecret(%q) error = %v", name, err)
		}
		if value != "sk-env" {
			t.Errorf("GetSecret(%q) = %q, want sk-env", name, value)
		}
	}

	prefixed := NewEnvProvider("BOTCHAT_TEST_")
	if value, err := prefixed.GetSecret(context.Background(), "api-key"); err != nil || value != "sk-env" {
		t.Errorf("prefixed GetSecret = %q, %v", value, err)
	}
}

func TestEnvProvider_Missing(t *testing.T) {
	t.Setenv("BOTCHAT_TEST_BLANK", "   ")

	p := NewEnvProvider("")
	for _, name := range []string{"BOTCHAT_TEST_BLANK", "BOTCHAT_TEST_UNSET_VARIABLE"} {
		_, err := p.GetSecret(context.Background(), name)
		if !errors.Is(err, ErrSecretNotFound) {
			t.Errorf("GetSecret(%q) error = %v, want ErrSecretNotFound", name, err)
		}
	}
}

func TestFileProvider_GetSecret(t *testing.T) {
	path := writeSecret(t, "sk-file\n", 0600)

	value, err := NewFileProvider(path).GetSecret(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "sk-file" {
		t.Errorf("expected trimmed value sk-file, got %q", value)
	}
}

func TestFileProvider_Errors(t *testing.T) {
	tests := []struct {
		name         string
		path         func(t *testing.T) string
		wantNotFound bool
	}{
		{"unset path", func(t *testing.T) string { return "" }, true},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") }, true},
		{"empty file", func(t *testing.T) string { return writeSecret(t, "\n", 0600) }, true},
		{"insecure permissions", func(t *testing.T) string { return writeSecret(t, "sk-x", 0644) }, false},
		{"directory", func(t *testing.T) string { return t.TempDir() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileProvider(tt.path(t)).GetSecret(context.Background(), "k")
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrSecretNotFound) != tt.wantNotFound {
				t.Errorf("errors.Is(ErrSecretNotFound) = %v, want %v (err: %v)", !tt.wantNotFound, tt.wantNotFound, err)
			}
		})
	}
}

func TestManager_Priority(t *testing.T) {
	t.Setenv("BOTCHAT_TEST_KEY", "sk-env")
	path := writeSecret(t, "sk-file", 0600)

	m := NewManager(NewEnvProvider(""), NewFileProvider(path))
	value, err := m.GetSecret(context.Background(), "BOTCHAT_TEST_KEY")
	if err != nil || value != "sk-env" {
		t.Errorf("expected env to win, got %q, %v", value, err)
	}

	value, err = m.GetSecret(context.Background(), "BOTCHAT_TEST_OTHER_KEY")
	if err != nil || value != "sk-file" {
		t.Errorf("expected file fallback, got %q, %v", value, err)
	}
}

func TestManager_StopsOnHardError(t *testing.T) {
	path := writeSecret(t, "sk-file", 0644)

	_, err := NewManager(NewEnvProvider(""), NewFileProvider(path)).GetSecret(context.Background(), "BOTCHAT_TEST_UNSET_VARIABLE")
	if err == nil || errors.Is(err, ErrSecretNotFound) {
		t.Errorf("expected permission error, got %v", err)
	}
}

func TestLoadCredential(t *testing.T) {
	t.Run("from env", func(t *testing.T) {
		t.Setenv("BOTCHAT_TEST_DEEPSEEK", "sk-env")

		cred, err := LoadCredential(context.Background(), config.UpstreamConfig{APIKeyEnv: "BOTCHAT_TEST_DEEPSEEK"})
		if err != nil {
			t.Fatal(err)
		}
		if key, ok := cred.APIKey(); !ok || key != "sk-env" {
			t.Errorf("APIKey() = %q, %v", key, ok)
		}
	})

	t.Run("from file", func(t *testing.T) {
		path := writeSecret(t, "sk-file", 0400)

		cred, err := LoadCredential(context.Background(), config.UpstreamConfig{
			APIKeyEnv:  "BOTCHAT_TEST_UNSET_VARIABLE",
			APIKeyFile: path,
		})
		if err != nil {
			t.Fatal(err)
		}
		if key, _ := cred.APIKey(); key != "sk-file" {
			t.Errorf("APIKey() = %q, want sk-file", key)
		}
	})

	t.Run("missing is not an error", func(t *testing.T) {
		cred, err := LoadCredential(context.Background(), config.UpstreamConfig{APIKeyEnv: "BOTCHAT_TEST_UNSET_VARIABLE"})
		if err != nil {
			t.Fatal(err)
		}
		if cred.Configured() {
			t.Error("expected unconfigured credential")
		}
	})

	t.Run("broken file is an error", func(t *testing.T) {
		path := writeSecret(t, "sk-file", 0666)

		_, err := LoadCredential(context.Background(), config.UpstreamConfig{
			APIKeyEnv:  "BOTCHAT_TEST_UNSET_VARIABLE",
			APIKeyFile: path,
		})
		if err == nil {
			t.Error("expected error for insecure file")
		}
	})
}

func TestStaticCredential(t *testing.T) {
	var nilCred *StaticCredential
	if _, ok := nilCred.APIKey(); ok {
		t.Error("nil credential should not be configured")
	}
	if NewStaticCredential("").Configured() {
		t.Error("empty credential should not be configured")
	}
	if !NewStaticCredential("sk-x").Configured() {
		t.Error("expected configured credential")
	}
}
