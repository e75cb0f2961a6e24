package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"listdeck/internal/exitcode"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string                   { return "clear" }
func (c *ClearCmd) Aliases() []string              { return nil }
func (c *ClearCmd) Synopsis() string               { return "Remove every entry of the active list" }
func (c *ClearCmd) Usage() string                  { return "clear" }
func (c *ClearCmd) NeedsAuth() bool                { return false }
func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	ctl := env.Controller
	n := ctl.Clear()
	if !env.Config.Quiet {
		fmt.Fprintf(out, "cleared %d %s\n", n, plural(n, "entry", "entries"))
		fmt.Fprintln(out, ctl.Summary())
	}
	return exitcode.Success
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
