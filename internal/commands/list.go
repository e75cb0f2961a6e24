package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"listdeck/internal/exitcode"
	"listdeck/internal/output"
)

func init() {
	Register(&ListCmd{})
	Register(&SummaryCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string                   { return "list" }
func (c *ListCmd) Aliases() []string              { return []string{"ls"} }
func (c *ListCmd) Synopsis() string               { return "Show the active list" }
func (c *ListCmd) Usage() string                  { return "list" }
func (c *ListCmd) NeedsAuth() bool                { return false }
func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	ctl := env.Controller
	if !env.Config.Quiet {
		output.FormatModeHeader(out, ctl.Mode())
	}
	output.FormatList(out, ctl.Entries(), ctl.Currency())
	if !env.Config.Quiet {
		fmt.Fprintln(out, ctl.Summary())
	}
	return exitcode.Success
}

// SummaryCmd implements the summary command.
type SummaryCmd struct{}

func (c *SummaryCmd) Name() string                   { return "summary" }
func (c *SummaryCmd) Aliases() []string              { return nil }
func (c *SummaryCmd) Synopsis() string               { return "Show the active list's totals" }
func (c *SummaryCmd) Usage() string                  { return "summary" }
func (c *SummaryCmd) NeedsAuth() bool                { return false }
func (c *SummaryCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SummaryCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, env.Controller.Summary())
	return exitcode.Success
}
