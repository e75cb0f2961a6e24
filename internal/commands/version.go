package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"listdeck/internal/exitcode"
	"listdeck/internal/export"
	"listdeck/internal/record"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd prints the release and, with --verbose, what this build
// supports.
type VersionCmd struct {
	verbose bool
}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "version [--verbose]" }
func (c *VersionCmd) NeedsAuth() bool   { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "Also print runtime, modes and export formats")
	fs.BoolVar(&c.verbose, "v", false, "Shorthand for --verbose")
}

func (c *VersionCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	fmt.Fprintf(out, "listdeck %s\n", releaseVersion())
	if !c.verbose {
		return exitcode.Success
	}

	keys := make([]string, len(record.Modes))
	for i, m := range record.Modes {
		keys[i] = m.Key()
	}
	fmt.Fprintf(out, "go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "modes:   %s\n", strings.Join(keys, ", "))
	fmt.Fprintf(out, "export:  %s\n", strings.Join(export.Formats, ", "))
	fmt.Fprintf(out, "config:  %s\n", env.Config.Dir)
	return exitcode.Success
}

// releaseVersion prefers the module version stamped by `go install`.
func releaseVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	return Version
}
