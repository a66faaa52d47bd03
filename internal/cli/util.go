package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/agisilaos/gtd-cli/internal/output"
)

func writeError(ctx *Context, err error) int {
	code := toExitCode(err)
	if ctx.Mode == output.ModeJSON || ctx.Mode == output.ModeNDJSON {
		payload := map[string]any{"error": err.Error()}
		_ = output.WriteJSON(ctx.Stderr, payload, output.Meta{RequestID: ctx.RequestID})
	} else {
		fmt.Fprintf(ctx.Stderr, "gtd: %v\n", err)
	}
	return code
}

func writeSimpleResult(ctx *Context, data any, human string) int {
	switch ctx.Mode {
	case output.ModeJSON:
		if err := output.WriteJSON(ctx.Stdout, data, output.Meta{RequestID: ctx.RequestID}); err != nil {
			return writeError(ctx, err)
		}
	case output.ModeNDJSON:
		if err := output.WriteNDJSON(ctx.Stdout, []any{data}); err != nil {
			return writeError(ctx, err)
		}
	default:
		if !ctx.Global.Quiet {
			fmt.Fprintln(ctx.Stdout, human)
		}
	}
	return exitOK
}

func writeDryRun(ctx *Context, action string, data any) int {
	if ctx.Mode == output.ModeJSON {
		payload := map[string]any{"dry_run": true, "action": action, "task": data}
		if err := output.WriteJSON(ctx.Stdout, payload, output.Meta{}); err != nil {
			return writeError(ctx, err)
		}
		return exitOK
	}
	fmt.Fprintf(ctx.Stdout, "dry run: would %s\n", action)
	return exitOK
}

func colorEnabled(ctx *Context) bool {
	if ctx.Global.NoColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return ctx.Mode == output.ModeHuman && isTTYFile(ctx.Stdout)
}

func terminalWidth() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if v, err := strconv.Atoi(cols); err == nil && v > 0 {
			return v
		}
	}
	return 120
}

func tableWidth(ctx *Context) int {
	if ctx.Config.TableWidth > 0 {
		return ctx.Config.TableWidth
	}
	return terminalWidth()
}
