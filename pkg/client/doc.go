// Package client is the HTTP transport between a chat session and the
// BotChat proxy.
//
//	session := chat.NewSession(client.New(cfg.Client.ProxyURL), chat.Options{
//	    Timeout:     cfg.Client.Timeout,
//	    MaxAttempts: cfg.Client.MaxAttempts,
//	    BackoffStep: cfg.Client.BackoffStep,
//	})
//	reply, err := session.Submit(ctx, "hello")
//
// TransportError reports itself retryable and ResponseError exposes the
// proxy envelope's error label; the session uses both without importing
// this package.
package client
