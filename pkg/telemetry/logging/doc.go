// Package logging configures log/slog for BotChat.
//
// # Usage
//
//	logger, err := logging.Setup(cfg.Telemetry.Logging, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	logger.InfoContext(ctx, "request forwarded", "status", 200)
//
// Records logged with a context pick up the request ID stored by
// WithRequestID and the active OpenTelemetry trace ID.
//
// # Redaction
//
// The upstream credential must never reach the logs:
//
//   - values under keys such as api_key, authorization or token keep only
//     their first four characters: sk-abc123 → sk-a***
//   - bearer tokens inside any string: Bearer abc → Bearer ***
//   - sk- prefixed keys inside any string: sk-abc123 → sk-***
package logging
