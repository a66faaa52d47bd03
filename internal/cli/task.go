package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agisilaos/gtd-cli/internal/api"
	"github.com/agisilaos/gtd-cli/internal/app/tasks"
	"github.com/agisilaos/gtd-cli/internal/output"
)

func runAdd(ctx *Context, args []string) int {
	fs := newFlagSet("add", ctx.Stderr)
	help := bindHelpFlag(fs)
	start := fs.String("start", "", "start date (YYYY-MM-DD, someday, never)")
	due := fs.String("due", "", "due date (YYYY-MM-DD, someday, never)")
	text := fs.String("text", "", "notes body")
	var tags multiValue
	fs.Var(&tags, "tag", "tag to attach (repeatable)")
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("add")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	title := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if title == "" {
		fmt.Fprintln(ctx.Stderr, "gtd: add needs a task title")
		return exitUsage
	}

	startDate, err := tasks.NormalizeDate(*start)
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "gtd: %v\n", err)
		return exitUsage
	}
	dueDate, err := tasks.NormalizeDate(*due)
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "gtd: %v\n", err)
		return exitUsage
	}
	task := api.Task{
		Title:     title,
		Text:      *text,
		Tags:      normalizeTags(tags),
		StartDate: startDate,
		DueDate:   dueDate,
		Status:    api.StatusActive,
	}
	if ctx.Global.DryRun {
		return writeDryRun(ctx, fmt.Sprintf("create task %q", title), task)
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	created, requestID, err := ctx.Client.CreateTask(reqCtx, task)
	ctx.RequestID = requestID
	if err != nil {
		return writeError(ctx, err)
	}
	return writeSimpleResult(ctx, created, fmt.Sprintf("created %s %q", created.ID, created.Title))
}

// normalizeTags prefixes bare tag names so "--tag home" and "--tag @home"
// mean the same thing.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "@") {
			tag = "@" + tag
		}
		out = append(out, tag)
	}
	return out
}

func runShow(ctx *Context, args []string) int {
	fs := newFlagSet("show", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("show")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(ctx.Stderr, "gtd: show needs exactly one task id")
		return exitUsage
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	task, requestID, err := ctx.Client.GetTask(reqCtx, fs.Arg(0))
	ctx.RequestID = requestID
	if err != nil {
		return writeError(ctx, err)
	}
	return renderTask(ctx, task)
}

func renderTask(ctx *Context, task api.Task) int {
	switch ctx.Mode {
	case output.ModeJSON:
		if err := output.WriteJSON(ctx.Stdout, task, output.Meta{RequestID: ctx.RequestID, Count: 1}); err != nil {
			return writeError(ctx, err)
		}
	case output.ModeNDJSON:
		if err := output.WriteNDJSON(ctx.Stdout, []any{task}); err != nil {
			return writeError(ctx, err)
		}
	case output.ModePlain:
		rows := [][]string{{task.ID, task.Title, task.Status, task.StartDate, task.DueDate, strings.Join(task.Tags, ",")}}
		if err := output.WritePlain(ctx.Stdout, rows); err != nil {
			return writeError(ctx, err)
		}
	default:
		color := colorEnabled(ctx)
		fmt.Fprintln(ctx.Stdout, output.GroupHeader(task.Title, color))
		fmt.Fprintf(ctx.Stdout, "  %-10s%s\n", "id", task.ID)
		fmt.Fprintf(ctx.Stdout, "  %-10s%s\n", "status", task.Status)
		if task.StartDate != "" {
			fmt.Fprintf(ctx.Stdout, "  %-10s%s\n", "start", task.StartDate)
		}
		if task.DueDate != "" {
			fmt.Fprintf(ctx.Stdout, "  %-10s%s\n", "due", task.DueDate)
		}
		if len(task.Tags) > 0 {
			fmt.Fprintf(ctx.Stdout, "  %-10s%s\n", "tags", strings.Join(task.Tags, " "))
		}
		if task.Text != "" {
			fmt.Fprintln(ctx.Stdout)
			fmt.Fprintln(ctx.Stdout, task.Text)
		}
	}
	return exitOK
}

func runEdit(ctx *Context, args []string) int {
	fs := newFlagSet("edit", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("edit")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(ctx.Stderr, "gtd: edit needs exactly one task id")
		return exitUsage
	}
	if ctx.Global.DryRun {
		return writeDryRun(ctx, fmt.Sprintf("open task %s in the editor", fs.Arg(0)), nil)
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	requestID, err := ctx.Client.OpenEditor(reqCtx, fs.Arg(0))
	ctx.RequestID = requestID
	if err != nil {
		return writeError(ctx, err)
	}
	return writeSimpleResult(ctx, map[string]string{"id": fs.Arg(0), "action": "editor"}, fmt.Sprintf("opened %s in the editor", fs.Arg(0)))
}

func runDone(ctx *Context, args []string) int {
	fs := newFlagSet("done", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("done")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(ctx.Stderr, "gtd: done needs at least one task id")
		return exitUsage
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	for _, id := range fs.Args() {
		task, requestID, err := ctx.Client.GetTask(reqCtx, id)
		ctx.RequestID = requestID
		if err != nil {
			return writeError(ctx, err)
		}
		closed := tasks.Close(task)
		if ctx.Global.DryRun {
			writeDryRun(ctx, fmt.Sprintf("mark %s %q done", id, task.Title), closed)
			continue
		}
		updated, requestID, err := ctx.Client.ReplaceTask(reqCtx, id, closed)
		ctx.RequestID = requestID
		if err != nil {
			return writeError(ctx, err)
		}
		if code := writeSimpleResult(ctx, updated, fmt.Sprintf("done %s %q", updated.ID, updated.Title)); code != exitOK {
			return code
		}
	}
	return exitOK
}

func runPostpone(ctx *Context, args []string) int {
	fs := newFlagSet("postpone", ctx.Stderr)
	help := bindHelpFlag(fs)
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("postpone")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(ctx.Stderr, "gtd: postpone needs a task id and a date")
		return exitUsage
	}
	id, date := fs.Arg(0), fs.Arg(1)

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	task, requestID, err := ctx.Client.GetTask(reqCtx, id)
	ctx.RequestID = requestID
	if err != nil {
		return writeError(ctx, err)
	}
	moved, err := tasks.Postpone(task, date)
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "gtd: %v\n", err)
		return exitUsage
	}
	if ctx.Global.DryRun {
		return writeDryRun(ctx, fmt.Sprintf("move %s %q to %s", id, task.Title, date), moved)
	}
	updated, requestID, err := ctx.Client.ReplaceTask(reqCtx, id, moved)
	ctx.RequestID = requestID
	if err != nil {
		return writeError(ctx, err)
	}
	return writeSimpleResult(ctx, updated, fmt.Sprintf("postponed %s %q to %s", updated.ID, updated.Title, updated.StartDate))
}

func runRemove(ctx *Context, args []string) int {
	fs := newFlagSet("rm", ctx.Stderr)
	help := bindHelpFlag(fs)
	yes := fs.Bool("yes", false, "confirm the deletion")
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("rm")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(ctx.Stderr, "gtd: rm needs at least one task id")
		return exitUsage
	}
	if !*yes && !ctx.Global.Force {
		return writeError(ctx, &CodeError{Code: exitUsage, Err: errors.New("rm is destructive; pass --yes (or --force) to confirm")})
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()
	for _, id := range fs.Args() {
		if ctx.Global.DryRun {
			writeDryRun(ctx, fmt.Sprintf("delete task %s", id), nil)
			continue
		}
		requestID, err := ctx.Client.DeleteTask(reqCtx, id)
		ctx.RequestID = requestID
		if err != nil {
			return writeError(ctx, err)
		}
		if code := writeSimpleResult(ctx, map[string]string{"id": id, "action": "deleted"}, fmt.Sprintf("deleted %s", id)); code != exitOK {
			return code
		}
	}
	return exitOK
}
