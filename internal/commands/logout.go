package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"listdeck/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd forgets the Google account push publishes to. Local lists are
// never touched.
type LogoutCmd struct {
	client bool
}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove stored credentials" }
func (c *LogoutCmd) Usage() string     { return "logout [--client]" }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.client, "client", false, "Also remove oauth_client.json")
}

func (c *LogoutCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	removed, err := env.Config.RemoveCredentials(c.client)
	for _, p := range removed {
		env.Log.Debug("credential removed", zap.String("path", p))
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to remove credentials: %v\n", err)
		return exitcode.AuthError
	}

	if env.Config.Quiet {
		return exitcode.Success
	}
	if len(removed) == 0 {
		fmt.Fprintln(out, "not logged in")
		return exitcode.Success
	}
	fmt.Fprintln(out, "ok")
	return exitcode.Success
}
