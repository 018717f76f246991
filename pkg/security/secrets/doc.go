// Package secrets resolves the upstream API credential.
//
// Providers are chained by a Manager in priority order:
//
//  1. EnvProvider: the variable named by upstream.api_key_env
//     (DEEPSEEK_API_KEY by default, possibly populated from .env)
//  2. FileProvider: upstream.api_key_file, if set (0600 or 0400 only)
//
// LoadCredential runs the chain once at start and returns an immutable
// StaticCredential. The proxy handler receives it as a CredentialProvider,
// so tests can inject a credential without touching the environment:
//
//	handler := handlers.NewChatHandler(secrets.NewStaticCredential("sk-test"), upstream, opts)
//
// Secret values are never logged.
package secrets
