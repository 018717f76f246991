package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// CompletionsPath is the route the mock upstream answers on.
const CompletionsPath = "/chat/completions"

// MockServer is a mock OpenAI-compatible upstream for proxy tests.
// It counts and records requests and replays scripted responses.
type MockServer struct {
	server    *httptest.Server
	responses map[string]MockResponse
	queue     []MockResponse
	requests  []RecordedRequest
	mu        sync.Mutex
}

// MockResponse defines a mock response configuration.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	Delay      time.Duration
	Headers    map[string]string

	// Hijack drops the connection without answering.
	Hijack bool
}

// RecordedRequest is a request received by the mock server.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// NewMockServer creates a new mock server. Until configured it answers
// CompletionsPath with a "hi there" completion.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: map[string]MockResponse{
			CompletionsPath: {StatusCode: http.StatusOK, Body: MockCompletionResponse("hi there", "deepseek-chat")},
		},
	}

	ms.server = httptest.NewServer(http.HandlerFunc(ms.handler))

	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse sets the response for every request to path.
func (ms *MockServer) SetResponse(path string, response MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.responses[path] = response
}

// Enqueue adds one-shot responses served in order before the per-path
// response.
func (ms *MockServer) Enqueue(responses ...MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.queue = append(ms.queue, responses...)
}

// GetRequestCount returns the number of requests received.
func (ms *MockServer) GetRequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return len(ms.requests)
}

// Requests returns a copy of the recorded requests.
func (ms *MockServer) Requests() []RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return append([]RecordedRequest(nil), ms.requests...)
}

// LastRequest returns the most recent request. It panics if none arrived.
func (ms *MockServer) LastRequest() RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.requests[len(ms.requests)-1]
}

// handler handles incoming HTTP requests.
func (ms *MockServer) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.requests = append(ms.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})
	response, ok := ms.responses[r.URL.Path]
	if len(ms.queue) > 0 {
		response, ok = ms.queue[0], true
		ms.queue = ms.queue[1:]
	}
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	// Apply delay, giving up early if the caller goes away
	if response.Delay > 0 {
		select {
		case <-time.After(response.Delay):
		case <-r.Context().Done():
			return
		}
	}

	if response.Hijack {
		if hj, ok := w.(http.Hijacker); ok {
			if conn, _, err := hj.Hijack(); err == nil {
				_ = conn.Close()
				return
			}
		}
		panic(http.ErrAbortHandler)
	}

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(response.StatusCode)

	if response.Body != nil {
		switch v := response.Body.(type) {
		case string:
			_, _ = w.Write([]byte(v))
		case []byte:
			_, _ = w.Write(v)
		default:
			_ = json.NewEncoder(w).Encode(response.Body)
		}
	}
}

// MockCompletionResponse creates an OpenAI-style chat completion body.
func MockCompletionResponse(content string, model string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]interface{}{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

// MockErrorResponse creates an upstream error response.
func MockErrorResponse(statusCode int, message string) MockResponse {
	body := map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"type":    "invalid_request_error",
			"code":    statusCode,
		},
	}

	return MockResponse{
		StatusCode: statusCode,
		Body:       body,
	}
}

// MockAuthError creates a 401 authentication error response.
func MockAuthError() MockResponse {
	return MockErrorResponse(http.StatusUnauthorized, "Authentication Fails, Your api key is invalid")
}

// MockRateLimitError creates a 429 rate limit error response.
func MockRateLimitError(retryAfter int) MockResponse {
	response := MockErrorResponse(http.StatusTooManyRequests, "Rate limit reached")
	response.Headers = map[string]string{
		"Retry-After": fmt.Sprintf("%d", retryAfter),
	}
	return response
}

// MockServerError creates a 500 internal server error response.
func MockServerError() MockResponse {
	return MockErrorResponse(http.StatusInternalServerError, "Internal server error")
}

// MockEmptyChoices creates a 200 response without any choice.
func MockEmptyChoices() MockResponse {
	return MockResponse{StatusCode: http.StatusOK, Body: `{"choices":[]}`}
}

// MockSlowResponse creates a successful response delivered after delay.
func MockSlowResponse(delay time.Duration) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       MockCompletionResponse("late", "deepseek-chat"),
		Delay:      delay,
	}
}

// ExpectHeader checks if a request has a specific header value.
func ExpectHeader(r RecordedRequest, key, value string) error {
	actual := r.Header.Get(key)
	if !strings.Contains(actual, value) {
		return fmt.Errorf("header %q mismatch: expected %q, got %q", key, value, actual)
	}
	return nil
}
