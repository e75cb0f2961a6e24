package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"listdeck/internal/config"
	"listdeck/internal/exitcode"
)

func init() {
	Register(&ConfigCmd{})
}

// ConfigCmd prints the effective settings, or writes a default config.yaml
// with --init.
type ConfigCmd struct {
	init bool
}

func (c *ConfigCmd) Name() string      { return "config" }
func (c *ConfigCmd) Aliases() []string { return nil }
func (c *ConfigCmd) Synopsis() string  { return "Show settings or write a default config.yaml" }
func (c *ConfigCmd) Usage() string     { return "config [--init]" }
func (c *ConfigCmd) NeedsAuth() bool   { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.init, "init", false, "")
}

func (c *ConfigCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	cfg := env.Config

	if !c.init {
		if !cfg.Quiet {
			fmt.Fprintf(out, "# %s\n", cfg.SettingsPath())
		}
		if err := yaml.NewEncoder(out).Encode(cfg.Settings); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.AuthError
		}
		return exitcode.Success
	}

	path := cfg.SettingsPath()
	if cfg.HasSettings() {
		fmt.Fprintf(errOut, "error: %s already exists\n", path)
		return exitcode.UserError
	}
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := config.DefaultSettings().Save(path); err != nil {
		fmt.Fprintf(errOut, "error: failed to write settings: %v\n", err)
		return exitcode.AuthError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	return exitcode.Success
}
