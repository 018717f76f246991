// Package config provides configuration management for BotChat.
//
// Configuration is read from an optional YAML file, completed with defaults,
// overridden from the environment, and validated.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfigWithEnvOverrides("botchat.yaml")
//
// An empty path skips the file and starts from defaults.
//
// The CLI uses Initialize, which also loads dotenv files and installs the
// result for GetConfig:
//
//	cfg, err := config.Initialize(path, ".env")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention BOTCHAT_SECTION_FIELD:
//
//   - BOTCHAT_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - BOTCHAT_UPSTREAM_TIMEOUT overrides upstream.timeout
//   - BOTCHAT_CLIENT_PROXY_URL overrides client.proxy_url
//   - BOTCHAT_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// LoadDotEnv reads a .env file into the environment first, which is where the
// upstream API key (DEEPSEEK_API_KEY by default) usually lives. The key itself
// is never part of Config.
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example
//
//	server:
//	  listen_address: "0.0.0.0:8080"
//	  chat_path: "/botfreechat/api/chat"
//	upstream:
//	  base_url: "https://api.deepseek.com/v1"
//	  model: "deepseek-chat"
//	  timeout: "60s"
//	client:
//	  proxy_url: "http://127.0.0.1:8080/botfreechat/api/chat"
//	  max_attempts: 3
//	  locale: "en"
package config
