package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"mercator-hq/botchat/pkg/chat"
	"mercator-hq/botchat/pkg/cli"
	"mercator-hq/botchat/pkg/client"
)

var chatFlags struct {
	proxyURL string
	locale   string
	style    string
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat through a running proxy",
	Long: `Start an interactive chat session against a BotChat proxy.

The conversation lives only in memory. Every message sends the whole
transcript; replies are rendered as markdown.

Commands:
  /reset   start a new conversation
  /quit    leave (Ctrl+D works too)

Examples:
  botchat chat
  botchat chat --proxy-url http://127.0.0.1:8080/api/chat --locale en`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatFlags.proxyURL, "proxy-url", "", "override client.proxy_url")
	chatCmd.Flags().StringVar(&chatFlags.locale, "locale", "", "override client.locale (zh, en)")
	chatCmd.Flags().StringVar(&chatFlags.style, "style", "", "override client.markdown_style (dark, light, notty)")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if chatFlags.proxyURL != "" {
		cfg.Client.ProxyURL = chatFlags.proxyURL
	}
	if chatFlags.locale != "" {
		cfg.Client.Locale = chatFlags.locale
	}
	if chatFlags.style != "" {
		cfg.Client.MarkdownStyle = chatFlags.style
	}

	style := cfg.Client.MarkdownStyle
	render := func(markdown string) (string, error) {
		return glamour.Render(markdown, style)
	}
	if _, err := render("BotChat"); err != nil {
		return cli.NewConfigError("client.markdown_style", err.Error())
	}

	catalog := chat.NewCatalog(cfg.Client.Locale)
	session := chat.NewSession(client.New(cfg.Client.ProxyURL), chat.Options{
		Timeout:     cfg.Client.Timeout,
		MaxAttempts: cfg.Client.MaxAttempts,
		BackoffStep: cfg.Client.BackoffStep,
		Catalog:     catalog,
	})

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	r := &repl{
		session:   session,
		input:     line,
		out:       cmd.OutOrStdout(),
		render:    render,
		indicator: cli.NewIndicator(os.Stderr, catalog.Thinking),
	}
	return r.run(ctx)
}

// lineReader is the part of liner.State the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// repl drives one chat session from a line reader.
type repl struct {
	session   *chat.Session
	input     lineReader
	out       io.Writer
	render    func(markdown string) (string, error)
	indicator *cli.Indicator
}

const promptText = "> "

func (r *repl) run(ctx context.Context) error {
	catalog := r.session.Catalog()
	fmt.Fprintf(r.out, "%s · %s\n%s\n\n", catalog.Title, catalog.Tagline, catalog.Prompt)

	for {
		text, err := r.input.Prompt(promptText)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			return fmt.Errorf("read error: %w", err)
		}

		text = strings.TrimSpace(text)
		switch text {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			if err := r.session.Reset(); err != nil {
				fmt.Fprintln(r.out, catalog.Busy)
			}
			continue
		}
		r.input.AppendHistory(text)

		if err := r.submit(ctx, text); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (r *repl) submit(ctx context.Context, text string) error {
	if r.indicator != nil {
		r.indicator.Start()
	}
	reply, err := r.session.Submit(ctx, text)
	if r.indicator != nil {
		r.indicator.Stop()
	}

	switch {
	case errors.Is(err, chat.ErrRequestInFlight):
		fmt.Fprintln(r.out, r.session.Catalog().Busy)
		return nil
	case errors.Is(err, chat.ErrEmptyInput):
		return nil
	}

	rendered, renderErr := r.render(reply.Content)
	if renderErr != nil {
		rendered = reply.Content + "\n"
	}
	_, werr := fmt.Fprint(r.out, rendered)
	return werr
}
