package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"listdeck/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string                   { return "rm" }
func (c *RmCmd) Aliases() []string              { return []string{"delete"} }
func (c *RmCmd) Synopsis() string               { return "Remove an entry from the active list" }
func (c *RmCmd) Usage() string                  { return "rm <n>" }
func (c *RmCmd) NeedsAuth() bool                { return false }
func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	pos, ok := parsePositionArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	ctl := env.Controller
	removed, err := ctl.Remove(pos)
	if err != nil {
		return reportError(errOut, pos, err)
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "removed: %s\n", removed.Heading())
		fmt.Fprintln(out, ctl.Summary())
	}
	return exitcode.Success
}
