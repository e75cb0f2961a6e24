package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"listdeck/internal/exitcode"
	"listdeck/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command. The full-screen view works on the same
// session the shell does; quitting it returns to the shell.
type UICmd struct{}

func (c *UICmd) Name() string                   { return "ui" }
func (c *UICmd) Aliases() []string              { return nil }
func (c *UICmd) Synopsis() string               { return "Open the full-screen view" }
func (c *UICmd) Usage() string                  { return "ui" }
func (c *UICmd) NeedsAuth() bool                { return false }
func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	opts := tui.Options{DateFormat: env.Config.Settings.DateFormat}
	if err := tui.Run(ctx, env.Controller, opts, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
