package cli

import (
	"fmt"
	"io"
	"strings"
)

func printRootHelp(out io.Writer) {
	fmt.Fprintln(out, "gtd is a command-line front end for a personal task tracker.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  gtd [global flags] <command> [args]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range commands {
		name := cmd.name
		if len(cmd.aliases) > 0 {
			name += " (" + strings.Join(cmd.aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-24s %s\n", name, cmd.summary)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Global flags:")
	fmt.Fprintln(out, "  --json            machine-readable JSON output")
	fmt.Fprintln(out, "  --plain           tab-separated output")
	fmt.Fprintln(out, "  --ndjson          newline-delimited JSON output")
	fmt.Fprintln(out, "  --no-color        disable styled output")
	fmt.Fprintln(out, "  --quiet, -q       suppress non-essential output")
	fmt.Fprintln(out, "  --verbose, -v     extra diagnostics on stderr")
	fmt.Fprintln(out, "  --dry-run, -n     show what a mutation would do")
	fmt.Fprintln(out, "  --force, -f       skip confirmation prompts")
	fmt.Fprintln(out, "  --timeout <sec>   request timeout in seconds")
	fmt.Fprintln(out, "  --config <path>   config file path")
	fmt.Fprintln(out, "  --profile <name>  credentials profile")
	fmt.Fprintln(out, "  --base-url <url>  service base URL")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gtd help <command>' for command details.")
}

func printCommandHelp(out io.Writer, cmd command) {
	fmt.Fprintf(out, "gtd %s: %s\n", cmd.name, cmd.summary)
	if len(cmd.aliases) > 0 {
		fmt.Fprintf(out, "Aliases: %s\n", strings.Join(cmd.aliases, ", "))
	}
	switch cmd.name {
	case "list":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd list [criteria...]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Criteria words select which tasks the service returns. An empty")
		fmt.Fprintln(out, "criteria or the word 'all' lists active tasks. The word 'today'")
		fmt.Fprintln(out, "narrows to the working view for the current day. Words starting")
		fmt.Fprintln(out, "with '@' also group the output by that tag, in the order given.")
	case "summary":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd summary [criteria...]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Prints a per-day table of how many tasks start and fall due.")
		fmt.Fprintln(out, "Defaults to workable tasks over the next three weeks; 'today'")
		fmt.Fprintln(out, "narrows the table to a single day.")
	case "overview":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd overview [days]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Lists task titles under each of the next N days (default 7).")
	case "add":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd add [--start <date>] [--due <date>] [--tag <tag>]... [--text <notes>] <title>")
	case "show":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd show <id>")
	case "edit":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd edit <id>")
	case "done":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd done <id>...")
	case "postpone":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd postpone <id> <date>")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Date is YYYY-MM-DD, 'someday', 'never', or empty to clear.")
	case "rm":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd rm --yes <id>...")
	case "search":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd search <query>")
	case "auth":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd auth <token> | gtd auth --clear")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Stores the token under the active profile (--profile, GTD_PROFILE,")
		fmt.Fprintln(out, "or the configured default).")
	case "browse":
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: gtd browse")
	}
}
