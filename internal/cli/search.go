package cli

import (
	"fmt"
	"strings"

	"github.com/agisilaos/gtd-cli/internal/api"
	"github.com/agisilaos/gtd-cli/internal/output"
)

func runSearch(ctx *Context, args []string) int {
	fs := newFlagSet("search", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("search")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		fmt.Fprintln(ctx.Stderr, "gtd: search needs a query")
		return exitUsage
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	results, requestID, err := ctx.Client.SearchTasks(reqCtx, query)
	ctx.RequestID = requestID
	if err != nil {
		return writeError(ctx, err)
	}
	return renderSearch(ctx, results)
}

func renderSearch(ctx *Context, results []api.Task) int {
	switch ctx.Mode {
	case output.ModeJSON:
		if err := output.WriteJSON(ctx.Stdout, results, output.Meta{RequestID: ctx.RequestID, Count: len(results)}); err != nil {
			return writeError(ctx, err)
		}
	case output.ModeNDJSON:
		items := make([]any, 0, len(results))
		for _, t := range results {
			items = append(items, t)
		}
		if err := output.WriteNDJSON(ctx.Stdout, items); err != nil {
			return writeError(ctx, err)
		}
	case output.ModePlain:
		rows := make([][]string, 0, len(results))
		for _, t := range results {
			rows = append(rows, []string{t.ID, t.Status, t.Title})
		}
		if err := output.WritePlain(ctx.Stdout, rows); err != nil {
			return writeError(ctx, err)
		}
	default:
		if len(results) == 0 {
			if !ctx.Global.Quiet {
				fmt.Fprintln(ctx.Stdout, output.Muted("no matches", colorEnabled(ctx)))
			}
			return exitOK
		}
		rows := make([][]string, 0, len(results))
		for _, t := range results {
			rows = append(rows, []string{t.ID, t.Status, t.Title})
		}
		if err := output.WriteTable(ctx.Stdout, []string{"ID", "Status", "Title"}, rows); err != nil {
			return writeError(ctx, err)
		}
	}
	return exitOK
}
