// Package handlers provides the HTTP handlers of the BotChat proxy.
//
// ChatHandler is the proxy endpoint. For every POST it:
//
//  1. checks that a credential is configured (500 and no upstream call otherwise)
//  2. decodes {"messages": [...]} from the body
//  3. posts the transcript upstream once, detached from client cancellation
//  4. returns the upstream body unchanged on success, or an error envelope
//
// NewHealthChecker builds the /ready checks from the same credential and
// upstream the handler uses.
//
// Example:
//
//	upstream := providers.NewClient(cfg.Upstream)
//	mux.Handle(cfg.Server.ChatPath, handlers.NewChatHandler(credential, upstream,
//	    handlers.WithMetrics(collector),
//	    handlers.WithTracer(tracer),
//	))
package handlers
