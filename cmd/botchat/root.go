package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"mercator-hq/botchat/pkg/cli"
	"mercator-hq/botchat/pkg/config"
	"mercator-hq/botchat/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile  string
	envFiles []string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "botchat",
	Short: "BotChat - terminal chat client and LLM proxy",
	Long: `BotChat keeps a conversation in memory and sends the whole transcript to a
small proxy on every turn. The proxy holds the API key and forwards the
transcript to an OpenAI-compatible chat-completion endpoint.

Configuration is read from an optional YAML file, then BOTCHAT_* environment
variables. Missing values use built-in defaults.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files loaded before the configuration (default: .env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

// loadConfig loads dotenv files, the YAML configuration and environment
// overrides, then installs the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Initialize(cfgFile, envFiles...)
	if err != nil {
		return nil, cli.NewConfigError(configField(cfgFile), err.Error())
	}

	if logLevel != "" {
		cfg.Telemetry.Logging.Level = logLevel
	}
	if _, err := logging.Setup(cfg.Telemetry.Logging, os.Stderr); err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}

	return cfg, nil
}

func configField(path string) string {
	if path == "" {
		return "environment"
	}
	return path
}
