package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"listdeck/internal/exitcode"
	"listdeck/internal/record"
)

func init() {
	Register(&ModeCmd{})
}

// ModeCmd implements the mode command.
type ModeCmd struct{}

func (c *ModeCmd) Name() string                   { return "mode" }
func (c *ModeCmd) Aliases() []string              { return nil }
func (c *ModeCmd) Synopsis() string               { return "Show or switch the active list" }
func (c *ModeCmd) Usage() string                  { return "mode [students|cart|tasks]" }
func (c *ModeCmd) NeedsAuth() bool                { return false }
func (c *ModeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ModeCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	ctl := env.Controller
	if len(args) == 0 {
		fmt.Fprintln(out, ctl.Mode())
		return exitcode.Success
	}

	mode, err := record.ParseMode(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	ctl.SetMode(mode)

	if !env.Config.Quiet {
		fmt.Fprintln(out, ctl.Mode())
		fmt.Fprintln(out, ctl.Summary())
	}
	return exitcode.Success
}
