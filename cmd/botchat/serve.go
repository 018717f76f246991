package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"mercator-hq/botchat/pkg/cli"
	"mercator-hq/botchat/pkg/providers"
	"mercator-hq/botchat/pkg/security/secrets"
	"mercator-hq/botchat/pkg/server"
	"mercator-hq/botchat/pkg/telemetry/health"
	"mercator-hq/botchat/pkg/telemetry/logging"
	"mercator-hq/botchat/pkg/telemetry/metrics"
	"mercator-hq/botchat/pkg/telemetry/tracing"
)

var serveFlags struct {
	listenAddress string
	chatPath      string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat proxy",
	Long: `Start the stateless chat proxy.

The API key is read once at startup from the environment variable named by
upstream.api_key_env (default DEEPSEEK_API_KEY) or from upstream.api_key_file.
Without a key the proxy still starts; every chat request then fails with
"API key is not configured" and /ready reports not_ready.

Examples:
  # Start with defaults on 127.0.0.1:8080
  botchat serve

  # Custom config and listen address
  botchat serve --config botchat.yaml --listen 0.0.0.0:8080

  # Serve under a path prefix
  botchat serve --chat-path /botfreechat/api/chat`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.chatPath, "chat-path", "", "override the chat route")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.chatPath != "" {
		cfg.Server.ChatPath = serveFlags.chatPath
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	credential, err := secrets.LoadCredential(ctx, cfg.Upstream)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	if key, ok := credential.APIKey(); ok {
		slog.Info("upstream credential loaded", "api_key", logging.RedactAPIKey(key))
	}

	tracer, err := tracing.New(cfg.Telemetry.Tracing)
	if err != nil {
		return cli.NewCommandError("serve", fmt.Errorf("failed to initialize tracing: %w", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("tracer shutdown failed", "error", err)
		}
	}()

	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)

	upstream := providers.NewClient(cfg.Upstream, providers.WithTracer(tracer))
	defer upstream.Close()

	srv := server.NewServer(cfg, server.Dependencies{
		Credentials: credential,
		Upstream:    upstream,
		Metrics:     collector,
		Tracer:      tracer,
		Version:     health.NewVersionInfo(Version, GitCommit, BuildDate),
	})

	fmt.Fprintf(cmd.OutOrStdout(), "BotChat %s\n", Version)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Chat endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Server.ChatPath)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Upstream: %s (%s)\n", upstream.Endpoint(), upstream.Model())
	if collector.Enabled() {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Metrics: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Server stopped")
	return nil
}
