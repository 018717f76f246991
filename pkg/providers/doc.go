// Package providers implements the client for the upstream chat completion
// API.
//
// # Overview
//
// The upstream is any OpenAI-compatible endpoint; the default is DeepSeek at
// https://api.deepseek.com/v1 with the deepseek-chat model. The proxy sends
// the client transcript with a fixed model, temperature and token ceiling and
// relays the answer byte for byte.
//
// # Basic Usage
//
//	client := providers.NewClient(cfg.Upstream)
//	defer client.Close()
//
//	completion, err := client.SendCompletion(ctx, apiKey, client.NewRequest(turns))
//	if err != nil {
//	    return err
//	}
//	w.Write(completion.Body)
//
// # Attempts and Timeouts
//
// SendCompletion makes exactly one HTTP attempt, bounded by
// upstream.timeout. Callers that must survive client disconnects pass a
// context detached with context.WithoutCancel.
//
// # Error Handling
//
// Every failure is one of three types:
//
//   - TransportError: no response (connection failure or timeout)
//   - UpstreamError: a non-2xx status with the raw body
//   - MalformedResponseError: a 2xx body without choices[0].message
//
// Callers dispatch with errors.As:
//
//	var upErr *providers.UpstreamError
//	if errors.As(err, &upErr) {
//	    status = upErr.StatusCode
//	}
//
// # Health
//
// The client derives a passive health view from its own calls. Three
// consecutive failures mark the upstream unhealthy until the next success.
package providers
