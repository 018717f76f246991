// Package chat holds the client side of a BotChat conversation.
//
// A Session keeps the transcript in memory and drives one request cycle per
// Submit: the user's turn is appended at once, the full transcript goes out
// through a Sender, and the cycle closes with the assistant's reply or a
// localized error turn. Transport failures are retried with linear backoff;
// everything else, timeouts included, ends the cycle.
//
//	session := chat.NewSession(proxyClient, chat.Options{
//		Timeout: 90 * time.Second,
//		Catalog: chat.NewCatalog("en"),
//	})
//	reply, err := session.Submit(ctx, "hello")
//
// The transcript is never persisted.
package chat
