package cli

import (
	"flag"
	"io"
	"strings"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {}
	return fs
}

func bindHelpFlag(fs *flag.FlagSet) *bool {
	help := fs.Bool("help", false, "show help")
	fs.BoolVar(help, "h", false, "show help")
	return help
}

// parseFlagSetInterspersed lets flags appear after positional arguments,
// which the stdlib parser stops at. Arguments are reordered so all flags
// come first, then parsed once behind a "--" barrier so positionals that
// look like flags stay positional.
func parseFlagSetInterspersed(fs *flag.FlagSet, args []string) error {
	flags := make([]string, 0, len(args))
	positionals := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		flags = append(flags, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if bv, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bv.IsBoolFlag() {
			continue
		}
		if i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	reordered := append(flags, "--")
	return fs.Parse(append(reordered, positionals...))
}

// multiValue collects a repeatable string flag.
type multiValue []string

func (m *multiValue) String() string {
	return strings.Join(*m, ",")
}

func (m *multiValue) Set(value string) error {
	*m = append(*m, value)
	return nil
}
