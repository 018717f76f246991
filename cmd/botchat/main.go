// BotChat is a terminal chat client and a stateless proxy in front of an
// OpenAI-compatible chat-completion API.
//
// Usage:
//
//	# Start the proxy (the API key comes from DEEPSEEK_API_KEY)
//	botchat serve
//
//	# Chat through a running proxy
//	botchat chat --proxy-url http://127.0.0.1:8080/api/chat
//
//	# Check a configuration file
//	botchat validate --config botchat.yaml
//
//	# Show version information
//	botchat version
package main

import "os"

func main() {
	os.Exit(Execute())
}
