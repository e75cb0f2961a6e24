package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"listdeck/internal/controller"
	"listdeck/internal/exitcode"
	"listdeck/internal/output"
)

func init() {
	Register(&SelectCmd{})
}

// SelectCmd implements the select command: show a student, show a cart
// item's details, or toggle a task.
type SelectCmd struct{}

func (c *SelectCmd) Name() string                   { return "select" }
func (c *SelectCmd) Aliases() []string              { return []string{"tap"} }
func (c *SelectCmd) Synopsis() string               { return "Activate an entry (details / toggle task)" }
func (c *SelectCmd) Usage() string                  { return "select <n>" }
func (c *SelectCmd) NeedsAuth() bool                { return false }
func (c *SelectCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SelectCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	pos, ok := parsePositionArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	ctl := env.Controller
	sel, err := ctl.Activate(pos)
	if err != nil {
		return reportError(errOut, pos, err)
	}

	// Selections are the output itself, so --quiet only drops the summary.
	switch sel.Kind {
	case controller.SelectDetail:
		output.FormatDetail(out, sel.Detail, ctl.Currency(), env.Config.Settings.DateFormat)
	case controller.SelectToggled:
		fmt.Fprintln(out, sel.Message)
		if !env.Config.Quiet {
			fmt.Fprintln(out, ctl.Summary())
		}
	default:
		fmt.Fprintln(out, sel.Message)
	}
	return exitcode.Success
}
