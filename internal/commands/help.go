package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"listdeck/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  listdeck                                   Start the interactive shell
  listdeck <command> [args]                  Run one command on a fresh session

Commands:
  mode [students|cart|tasks]                 Show or switch the active list
  add [--price <p>] [--qty <n>] <name...>    Add a student or cart item
  add [--desc <text>] [--priority <p>] <title...>
                                             Add a task (priority low|medium|high)
  rm <n>                                     Remove entry n (alias: delete)
  clear                                      Remove every entry of the active list
  select <n>                                 Show a student, a cart item's details,
                                             or toggle a task (alias: tap)
  list                                       Show the active list (alias: ls)
  summary                                    Show the active list's totals
  export [--format json|csv|pdf] <file>      Write the active list to a file
  push [--list <name>] [--create]            Publish tasks to Google Tasks
  login                                      Authenticate with Google
  logout [--client]                          Remove the stored token (and the OAuth client)
  ui                                         Open the full-screen view
  config [--init]                            Show settings or write a default config.yaml
  help
  version [--verbose]                        Print version (plus runtime, modes, formats)

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

In the shell, type quit or exit (or press Ctrl-D) to leave.
`
