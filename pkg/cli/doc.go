/*
Package cli provides helpers shared by the botchat commands.

Output Formatting:

The validate and version commands print text or JSON:

	format, err := cli.ParseFormat(outputFlag)
	if err != nil {
		return err
	}
	return cli.NewFormatter(format).FormatTo(os.Stdout, info)

Loading Indicator:

The chat REPL animates a waiting line while a request is in flight:

	ind := cli.NewIndicator(os.Stderr, catalog.Thinking)
	ind.Start()
	reply, err := session.Submit(ctx, line)
	ind.Stop()

Signal Handling:

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

Exit Codes:

ExitCode maps a command error to 0, 1 (runtime failure) or 2 (invalid
configuration).
*/
package cli
