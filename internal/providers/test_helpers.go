package providers

import (
	"encoding/json"
	"testing"
	"time"

	"mercator-hq/botchat/pkg/chat"
	"mercator-hq/botchat/pkg/config"
)

// TestUpstreamConfig returns an upstream configuration pointing at baseURL
// with the production model defaults.
func TestUpstreamConfig(baseURL string) config.UpstreamConfig {
	return config.UpstreamConfig{
		BaseURL:     baseURL,
		Model:       config.DefaultUpstreamModel,
		Temperature: config.DefaultUpstreamTemperature,
		MaxTokens:   config.DefaultUpstreamMaxTokens,
		Timeout:     5 * time.Second,
		APIKeyEnv:   config.DefaultUpstreamAPIKeyEnv,
	}
}

// TestTranscript builds an alternating user/assistant transcript starting
// with a user turn.
func TestTranscript(contents ...string) []chat.Turn {
	turns := make([]chat.Turn, 0, len(contents))
	for i, content := range contents {
		if i%2 == 0 {
			turns = append(turns, chat.UserTurn(content))
		} else {
			turns = append(turns, chat.AssistantTurn(content))
		}
	}
	return turns
}

// UpstreamBody is the decoded body the proxy sent upstream.
type UpstreamBody struct {
	Model       string      `json:"model"`
	Messages    []chat.Turn `json:"messages"`
	Temperature float64     `json:"temperature"`
	MaxTokens   int         `json:"max_tokens"`
}

// DecodeUpstreamBody decodes a recorded request body.
func DecodeUpstreamBody(t *testing.T, r RecordedRequest) UpstreamBody {
	t.Helper()

	var body UpstreamBody
	if err := json.Unmarshal(r.Body, &body); err != nil {
		t.Fatalf("failed to decode upstream body %q: %v", r.Body, err)
	}
	return body
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
