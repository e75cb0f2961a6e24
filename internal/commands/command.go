// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"go.uber.org/zap"

	"listdeck/internal/config"
	"listdeck/internal/controller"
	"listdeck/internal/service"
)

// Env is what a command runs against.
type Env struct {
	// Config is always provided (config dir, settings, quiet/debug).
	Config *config.Config

	// Controller owns the session's lists. Shared by every command of a
	// session.
	Controller *controller.Controller

	// Service is nil unless NeedsAuth returns true.
	Service service.Service

	// Log is never nil.
	Log *zap.Logger
}

// Command defines the interface for shell commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags. It runs before every
	// parse, so flag defaults reset the command's fields.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing and returns an exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
