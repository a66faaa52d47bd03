package cli

import (
	"fmt"

	"github.com/agisilaos/gtd-cli/internal/app/reports"
	"github.com/agisilaos/gtd-cli/internal/output"
)

func runOverview(ctx *Context, args []string) int {
	fs := newFlagSet("overview", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("overview")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}

	windowArg := ""
	if fs.NArg() > 0 {
		windowArg = fs.Arg(0)
	}
	days := reports.WindowDays(windowArg)
	tokens := reports.Translate("")

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	tasks, requestID, err := ctx.Client.ListTasks(reqCtx, tokens)
	if err != nil {
		ctx.RequestID = requestID
		return writeError(ctx, err)
	}
	ctx.RequestID = requestID

	overview, err := reports.Overview(days, tasks, ctx.Now())
	if err != nil {
		return writeError(ctx, err)
	}
	return renderOverview(ctx, overview)
}

func renderOverview(ctx *Context, days []reports.OverviewDay) int {
	switch ctx.Mode {
	case output.ModeJSON:
		if err := output.WriteJSON(ctx.Stdout, days, output.Meta{RequestID: ctx.RequestID, Count: len(days)}); err != nil {
			return writeError(ctx, err)
		}
	case output.ModeNDJSON:
		items := make([]any, 0, len(days))
		for _, d := range days {
			items = append(items, d)
		}
		if err := output.WriteNDJSON(ctx.Stdout, items); err != nil {
			return writeError(ctx, err)
		}
	case output.ModePlain:
		rows := make([][]string, 0)
		for _, d := range days {
			for _, title := range d.Titles {
				rows = append(rows, []string{d.Label, title})
			}
		}
		if err := output.WritePlain(ctx.Stdout, rows); err != nil {
			return writeError(ctx, err)
		}
	default:
		color := colorEnabled(ctx)
		for i, d := range days {
			if i > 0 {
				fmt.Fprintln(ctx.Stdout)
			}
			fmt.Fprintln(ctx.Stdout, output.DayLabel(d.Label, color))
			if len(d.Titles) == 0 {
				fmt.Fprintln(ctx.Stdout, output.Muted("  (nothing)", color))
				continue
			}
			for _, title := range d.Titles {
				fmt.Fprintf(ctx.Stdout, "  %s\n", title)
			}
		}
	}
	return exitOK
}
