package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mercator-hq/botchat/pkg/providers"
)

func TestParseChatRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr bool
	}{
		{"valid", `{"messages":[{"role":"user","content":"hello"}]}`, 1, false},
		{"extra fields ignored", `{"messages":[],"model":"gpt-4","stream":true}`, 0, false},
		{"empty transcript", `{"messages":[]}`, 0, false},
		{"missing messages", `{}`, 0, true},
		{"not json", `hello`, 0, true},
		{"empty body", ``, 0, true},
		{"wrong type", `{"messages":"hi"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			req, err := ParseChatRequest(r)

			if tt.wantErr {
				var reqErr *RequestError
				if !errors.As(err, &reqErr) {
					t.Fatalf("expected RequestError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(req.Messages) != tt.wantLen {
				t.Errorf("expected %d messages, got %d", tt.wantLen, len(req.Messages))
			}
		})
	}
}

func TestParseChatRequest_TooLarge(t *testing.T) {
	body := `{"messages":[{"role":"user","content":"` + strings.Repeat("a", MaxRequestBodySize) + `"}]}`
	r := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))

	_, err := ParseChatRequest(r)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || !strings.Contains(reqErr.Message, "exceeds maximum size") {
		t.Errorf("expected size error, got %v", err)
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantKind   string
	}{
		{"missing credential", ErrMissingCredential, 500, ErrMsgMissingCredential, KindMissingCredential},
		{"method", &MethodError{Method: "GET"}, 405, ErrMsgMethodNotAllowed, KindMethodNotAllowed},
		{"bad body", &RequestError{Message: "invalid JSON"}, 500, ErrMsgInvalidRequest, KindBadRequest},
		{"upstream 429", &providers.UpstreamError{StatusCode: 429, Body: []byte(`{"error":"slow down"}`)}, 429, ErrMsgUpstream, KindUpstreamStatus},
		{"upstream 401 wrapped", fmt.Errorf("forward: %w", &providers.UpstreamError{StatusCode: 401}), 401, ErrMsgUpstream, KindUpstreamStatus},
		{"malformed", &providers.MalformedResponseError{RawResponse: []byte(`{"choices":[]}`)}, 500, ErrMsgInvalidResponse, KindMalformed},
		{"timeout", &providers.TransportError{Timeout: true, Limit: time.Minute, Cause: context.DeadlineExceeded}, 500, ErrMsgUpstreamTimeout, KindTimeout},
		{"transport", &providers.TransportError{Cause: errors.New("connection refused")}, 500, ErrMsgUpstream, KindTransport},
		{"unknown", errors.New("boom"), 500, ErrMsgInternal, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := HandleError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, status)
			}
			if env.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, env.Error)
			}
			if _, err := time.Parse(time.RFC3339, env.Timestamp); err != nil {
				t.Errorf("timestamp %q is not RFC 3339: %v", env.Timestamp, err)
			}
			if !strings.HasSuffix(env.Timestamp, "Z") {
				t.Errorf("timestamp %q is not UTC", env.Timestamp)
			}
			if got := ErrorKind(tt.err); got != tt.wantKind {
				t.Errorf("ErrorKind() = %q, want %q", got, tt.wantKind)
			}
		})
	}
}

func TestHandleError_MissingCredentialShape(t *testing.T) {
	_, env := HandleError(ErrMissingCredential)

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if len(fields) != 2 || fields["error"] != ErrMsgMissingCredential || fields["timestamp"] == nil {
		t.Errorf("unexpected envelope %s", data)
	}
}

func TestHandleError_UpstreamDetails(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want string
	}{
		{"json body", []byte(`{"error":{"message":"Rate limit exceeded"}}`), `{"error":{"message":"Rate limit exceeded"}}`},
		{"text body", []byte("overloaded"), `"overloaded"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := HandleError(&providers.UpstreamError{StatusCode: 503, Body: tt.body})
			if env.Status != 503 {
				t.Errorf("expected status field 503, got %d", env.Status)
			}

			data, err := json.Marshal(env.Details)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("details = %s, want %s", data, tt.want)
			}
		})
	}

	_, env := HandleError(&providers.UpstreamError{StatusCode: 502})
	if env.Details != nil {
		t.Errorf("expected no details for empty body, got %v", env.Details)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	status := WriteError(rec, &providers.UpstreamError{StatusCode: 429, Body: []byte(`{"error":"rate"}`)})

	if status != 429 || rec.Code != 429 {
		t.Fatalf("expected 429, got %d / %d", status, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var env ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Error != ErrMsgUpstream || env.Status != 429 {
		t.Errorf("unexpected envelope %+v", env)
	}
}

func TestWriteRawJSON(t *testing.T) {
	body := []byte(`{"choices":[{"message":{"role":"assistant","content":"hi"}}],"x":1}`)

	rec := httptest.NewRecorder()
	WriteRawJSON(rec, http.StatusOK, body)

	if rec.Body.String() != string(body) {
		t.Errorf("body changed: %s", rec.Body.String())
	}
}
