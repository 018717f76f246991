package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextFormatter_Map(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatText).FormatTo(&buf, map[string]string{
		"version": "1.0.0",
		"commit":  "abc",
	})
	if err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	want := "commit:   abc\nversion:  1.0.0\n"
	if buf.String() != want {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_Value(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(FormatText).FormatTo(&buf, "configuration is valid"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "configuration is valid\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"version": "1.0.0"}
	if err := NewFormatter(FormatJSON).FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["version"] != "1.0.0" {
		t.Errorf("unexpected decoded value %v", decoded)
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  ")) {
		t.Error("expected indented JSON")
	}
}
