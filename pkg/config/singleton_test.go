package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })

	path := writeFile(t, "botchat.yaml", "upstream:\n  model: \"deepseek-reasoner\"\n")

	cfg, err := Initialize(path)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if GetConfig() != cfg {
		t.Fatal("Initialize did not install the config")
	}
	if cfg.Upstream.Model != "deepseek-reasoner" {
		t.Errorf("expected model %q, got %q", "deepseek-reasoner", cfg.Upstream.Model)
	}

	// A later call replaces the installed config.
	next, err := Initialize("")
	if err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
	if GetConfig() != next || next.Upstream.Model != DefaultUpstreamModel {
		t.Error("second Initialize did not replace the config")
	}
}

func TestInitialize_DotEnv(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })
	t.Setenv("BOTCHAT_SERVER_CHAT_PATH", "")
	os.Unsetenv("BOTCHAT_SERVER_CHAT_PATH")

	envFile := writeFile(t, "test.env", "BOTCHAT_SERVER_CHAT_PATH=/botfreechat/api/chat\n")

	cfg, err := Initialize("", envFile)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if cfg.Server.ChatPath != "/botfreechat/api/chat" {
		t.Errorf("dotenv override not applied, got %q", cfg.Server.ChatPath)
	}
}

func TestInitialize_ErrorKeepsPrevious(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })

	prev := Default()
	SetConfig(prev)

	if _, err := Initialize(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if GetConfig() != prev {
		t.Error("failed Initialize replaced the config")
	}
}
