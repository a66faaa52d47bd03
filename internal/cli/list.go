package cli

import (
	"fmt"
	"strings"

	"github.com/agisilaos/gtd-cli/internal/app/reports"
	"github.com/agisilaos/gtd-cli/internal/output"
)

func runList(ctx *Context, args []string) int {
	fs := newFlagSet("list", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("list")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}

	criteria := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(criteria) == "" {
		criteria = ctx.Config.DefaultCriteria
	}
	tokens := reports.Translate(criteria)

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	tasks, requestID, err := ctx.Client.ListTasks(reqCtx, tokens)
	if err != nil {
		ctx.RequestID = requestID
		return writeError(ctx, err)
	}
	ctx.RequestID = requestID

	groups, err := reports.Listing(tasks, tokens)
	if err != nil {
		return writeError(ctx, err)
	}
	return renderListing(ctx, groups)
}

func renderListing(ctx *Context, groups []reports.ListingGroup) int {
	switch ctx.Mode {
	case output.ModeJSON:
		count := 0
		for _, g := range groups {
			count += len(g.Rows)
		}
		if err := output.WriteJSON(ctx.Stdout, groups, output.Meta{RequestID: ctx.RequestID, Count: count}); err != nil {
			return writeError(ctx, err)
		}
	case output.ModeNDJSON:
		items := make([]any, 0)
		for _, g := range groups {
			for _, row := range g.Rows {
				items = append(items, map[string]string{"group": g.Header, "id": row.ID, "title": row.Title})
			}
		}
		if err := output.WriteNDJSON(ctx.Stdout, items); err != nil {
			return writeError(ctx, err)
		}
	case output.ModePlain:
		rows := make([][]string, 0)
		for _, g := range groups {
			for _, row := range g.Rows {
				rows = append(rows, []string{g.Header, row.ID, row.Title})
			}
		}
		if err := output.WritePlain(ctx.Stdout, rows); err != nil {
			return writeError(ctx, err)
		}
	default:
		renderListingHuman(ctx, groups)
	}
	return exitOK
}

func renderListingHuman(ctx *Context, groups []reports.ListingGroup) {
	color := colorEnabled(ctx)
	width := tableWidth(ctx)
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(ctx.Stdout)
		}
		if g.Header != "" {
			fmt.Fprintln(ctx.Stdout, output.GroupHeader(g.Header, color))
		}
		for _, row := range g.Rows {
			lines := output.Wrap(row.Title, width, output.WrapIndent)
			if len(lines) == 0 {
				lines = []string{""}
			}
			fmt.Fprintf(ctx.Stdout, "  %-*s%s\n", output.WrapIndent-2, row.ID, lines[0])
			for _, cont := range lines[1:] {
				fmt.Fprintln(ctx.Stdout, cont)
			}
		}
	}
	if len(groups) == 0 && !ctx.Global.Quiet {
		fmt.Fprintln(ctx.Stdout, output.Muted("no tasks", color))
	}
}
