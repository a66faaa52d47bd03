package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agisilaos/gtd-cli/internal/app/reports"
	"github.com/agisilaos/gtd-cli/internal/output"
)

func runSummary(ctx *Context, args []string) int {
	fs := newFlagSet("summary", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("summary")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}

	criteria := strings.Join(fs.Args(), " ")
	fetchCriteria := reports.SummaryCriteria(criteria)
	tokens := reports.Translate(fetchCriteria)

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	tasks, requestID, err := ctx.Client.ListTasks(reqCtx, tokens)
	if err != nil {
		ctx.RequestID = requestID
		return writeError(ctx, err)
	}
	ctx.RequestID = requestID

	rows, err := reports.Summary(tasks, criteria, ctx.Now())
	if err != nil {
		return writeError(ctx, err)
	}
	return renderSummary(ctx, rows)
}

func renderSummary(ctx *Context, rows []reports.SummaryRow) int {
	switch ctx.Mode {
	case output.ModeJSON:
		if err := output.WriteJSON(ctx.Stdout, rows, output.Meta{RequestID: ctx.RequestID, Count: len(rows)}); err != nil {
			return writeError(ctx, err)
		}
	case output.ModeNDJSON:
		items := make([]any, 0, len(rows))
		for _, r := range rows {
			items = append(items, r)
		}
		if err := output.WriteNDJSON(ctx.Stdout, items); err != nil {
			return writeError(ctx, err)
		}
	case output.ModePlain:
		plain := make([][]string, 0, len(rows))
		for _, r := range rows {
			plain = append(plain, []string{r.Label, strconv.Itoa(r.Starting), strconv.Itoa(r.Due)})
		}
		if err := output.WritePlain(ctx.Stdout, plain); err != nil {
			return writeError(ctx, err)
		}
	default:
		table := make([][]string, 0, len(rows))
		for _, r := range rows {
			table = append(table, []string{r.Label, strconv.Itoa(r.Starting), strconv.Itoa(r.Due)})
		}
		if err := output.WriteTable(ctx.Stdout, []string{"Day", "Starting", "Due"}, table); err != nil {
			return writeError(ctx, err)
		}
		if len(rows) == 0 && !ctx.Global.Quiet {
			fmt.Fprintln(ctx.Stdout, output.Muted("nothing scheduled", colorEnabled(ctx)))
		}
	}
	return exitOK
}
