package main

import (
	"github.com/spf13/cobra"
	"mercator-hq/botchat/pkg/cli"
	"mercator-hq/botchat/pkg/config"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Load the configuration exactly as serve and chat do and report problems.

Every invalid field is listed. The exit code is 2 when the configuration is
invalid. The API key is not required here: a proxy without one still starts.

Examples:
  botchat validate --config botchat.yaml
  botchat validate --output json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.format, "output", "o", "text", "output format: text, json")
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(validateFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), summarize(cfg))
}

// summarize lists the effective settings worth checking by eye.
func summarize(cfg *config.Config) map[string]string {
	return map[string]string{
		"status":           "valid",
		"listen_address":   cfg.Server.ListenAddress,
		"chat_path":        cfg.Server.ChatPath,
		"upstream":         cfg.Upstream.BaseURL,
		"model":            cfg.Upstream.Model,
		"upstream_timeout": cfg.Upstream.Timeout.String(),
		"api_key_env":      cfg.Upstream.APIKeyEnv,
		"proxy_url":        cfg.Client.ProxyURL,
		"client_timeout":   cfg.Client.Timeout.String(),
		"locale":           cfg.Client.Locale,
	}
}
