/*
Package security holds the credential handling of the BotChat proxy.

The only secret is the upstream API key. It is resolved once at startup by
package secrets, from an environment variable or a permission-checked file,
and handed to the proxy handler as a read-only CredentialProvider:

	credential, err := secrets.LoadCredential(ctx, cfg.Upstream)
	if err != nil {
		return err
	}
	handler := handlers.NewChatHandler(credential, upstream)

The key never appears in responses, and the logging package redacts it from
log records.
*/
package security
