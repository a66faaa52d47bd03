package cli

func runBrowse(ctx *Context, args []string) int {
	fs := newFlagSet("browse", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("browse")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	if ctx.Global.DryRun {
		return writeDryRun(ctx, "toggle the service window", nil)
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	requestID, err := ctx.Client.ToggleWindow(reqCtx)
	ctx.RequestID = requestID
	if err != nil {
		return writeError(ctx, err)
	}
	return writeSimpleResult(ctx, map[string]string{"action": "window-toggled"}, "toggled the service window")
}
