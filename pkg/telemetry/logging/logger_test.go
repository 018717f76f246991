package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"mercator-hq/botchat/pkg/config"

	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		wantErr bool
	}{
		{"defaults", config.LoggingConfig{}, false},
		{"json debug", config.LoggingConfig{Level: "debug", Format: "json"}, false},
		{"text warn", config.LoggingConfig{Level: "warn", Format: "text"}, false},
		{"bad level", config.LoggingConfig{Level: "loud"}, true},
		{"bad format", config.LoggingConfig{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, &bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Fatal("expected logger")
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}

func TestNew_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("upstream call",
		"api_key", "sk-abcdef123456",
		"header", "Authorization: Bearer sk-abcdef123456",
		"error", errors.New("rejected key sk-abcdef123456"),
	)

	out := buf.String()
	if strings.Contains(out, "abcdef123456") {
		t.Fatalf("credential leaked into log: %s", out)
	}

	entry := decodeLine(t, &buf)
	if entry["api_key"] != "sk-a***" {
		t.Errorf("api_key = %v, want sk-a***", entry["api_key"])
	}
	if entry["header"] != "Authorization: Bearer ***" {
		t.Errorf("header = %v", entry["header"])
	}
}

func TestNew_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	ctx := WithRequestID(context.Background(), "req-123")
	ctx = trace.ContextWithSpanContext(ctx, sc)

	logger.With("component", "test").InfoContext(ctx, "hello")

	entry := decodeLine(t, &buf)
	if entry["request_id"] != "req-123" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
	if entry["trace_id"] != traceID.String() {
		t.Errorf("trace_id = %v", entry["trace_id"])
	}
	if entry["component"] != "test" {
		t.Errorf("component = %v", entry["component"])
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	if _, err := Setup(config.LoggingConfig{Format: "text"}, &buf); err != nil {
		t.Fatal(err)
	}

	slog.Info("via default")
	if !strings.Contains(buf.String(), "msg=\"via default\"") {
		t.Errorf("default logger not installed: %q", buf.String())
	}
}

func TestRedactAPIKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "***"},
		{"sk-1234567890", "sk-1***"},
	}
	for _, tt := range tests {
		if got := RedactAPIKey(tt.in); got != tt.want {
			t.Errorf("RedactAPIKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRedactor_RedactString(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		in   string
		want string
	}{
		{"nothing to hide", "nothing to hide"},
		{"Bearer abc.def", "Bearer ***"},
		{"key=sk-abcd1234", "key=sk-***"},
		{"password=hunter2", "password: ***"},
	}
	for _, tt := range tests {
		if got := r.RedactString(tt.in); got != tt.want {
			t.Errorf("RedactString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
