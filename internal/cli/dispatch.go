package cli

import (
	"fmt"
)

type command struct {
	name    string
	aliases []string
	summary string
	run     func(ctx *Context, args []string) int
}

// commands is populated in init: the handlers consult the table for their
// --help output, so a package-level literal would be an initialization cycle.
var commands []command

func init() {
	commands = []command{
		{name: "list", aliases: []string{"ls"}, summary: "List tasks grouped by tag", run: runList},
		{name: "summary", summary: "Show per-day starting and due counts", run: runSummary},
		{name: "overview", summary: "Show upcoming tasks day by day", run: runOverview},
		{name: "add", aliases: []string{"new"}, summary: "Create a task", run: runAdd},
		{name: "show", summary: "Show a task", run: runShow},
		{name: "edit", summary: "Open a task in the service editor", run: runEdit},
		{name: "done", aliases: []string{"close"}, summary: "Mark a task done", run: runDone},
		{name: "postpone", summary: "Move a task's due date", run: runPostpone},
		{name: "rm", aliases: []string{"del", "delete"}, summary: "Delete a task", run: runRemove},
		{name: "search", summary: "Search tasks by text", run: runSearch},
		{name: "auth", summary: "Store a service token for a profile", run: runAuth},
		{name: "browse", summary: "Toggle the service window", run: runBrowse},
		{name: "version", summary: "Print version information", run: runVersion},
		{name: "help", summary: "Show help for a command", run: runHelp},
	}
}

func findCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
		for _, alias := range cmd.aliases {
			if alias == name {
				return cmd, true
			}
		}
	}
	return command{}, false
}

func dispatch(ctx *Context, args []string) int {
	name := args[0]
	cmd, ok := findCommand(name)
	if !ok {
		fmt.Fprintf(ctx.Stderr, "gtd: unknown command %q\n", name)
		printRootHelp(ctx.Stderr)
		return exitUsage
	}
	return cmd.run(ctx, args[1:])
}

func runVersion(ctx *Context, args []string) int {
	fmt.Fprintf(ctx.Stdout, "gtd %s (%s) %s\n", Version, Commit, Date)
	return exitOK
}

func runHelp(ctx *Context, args []string) int {
	if len(args) == 0 {
		printRootHelp(ctx.Stdout)
		return exitOK
	}
	cmd, ok := findCommand(args[0])
	if !ok {
		fmt.Fprintf(ctx.Stderr, "gtd: unknown command %q\n", args[0])
		return exitUsage
	}
	printCommandHelp(ctx.Stdout, cmd)
	return exitOK
}
