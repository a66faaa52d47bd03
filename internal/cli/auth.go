package cli

import (
	"fmt"

	"github.com/agisilaos/gtd-cli/internal/config"
)

// runAuth stores a service token for the active profile. The token never
// lives in config.yaml; credentials.yaml is written with owner-only
// permissions.
func runAuth(ctx *Context, args []string) int {
	fs := newFlagSet("auth", ctx.Stderr)
	help := bindHelpFlag(fs)
	clear := fs.Bool("clear", false, "remove the stored token for the profile")
	if err := parseFlagSetInterspersed(fs, args); err != nil {
		return exitUsage
	}
	if *help {
		cmd, _ := findCommand("auth")
		printCommandHelp(ctx.Stdout, cmd)
		return exitOK
	}

	credsPath := config.CredentialsPathFromConfig(ctx.ConfigPath)
	creds, _, err := config.LoadCredentials(credsPath)
	if err != nil {
		return writeError(ctx, err)
	}
	if creds.Profiles == nil {
		creds.Profiles = map[string]config.Credential{}
	}

	if *clear {
		if fs.NArg() != 0 {
			fmt.Fprintln(ctx.Stderr, "gtd: auth --clear takes no arguments")
			return exitUsage
		}
		delete(creds.Profiles, ctx.Profile)
		if err := config.SaveCredentials(credsPath, creds); err != nil {
			return writeError(ctx, err)
		}
		return writeSimpleResult(ctx, map[string]string{"profile": ctx.Profile, "action": "cleared"},
			fmt.Sprintf("cleared token for profile %q", ctx.Profile))
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(ctx.Stderr, "gtd: auth needs exactly one token argument")
		return exitUsage
	}
	creds.Profiles[ctx.Profile] = config.Credential{Token: fs.Arg(0)}
	if err := config.SaveCredentials(credsPath, creds); err != nil {
		return writeError(ctx, err)
	}
	return writeSimpleResult(ctx, map[string]string{"profile": ctx.Profile, "action": "saved"},
		fmt.Sprintf("saved token for profile %q", ctx.Profile))
}
