// Package cli parses command lines and dispatches them to commands, one at
// a time or as an interactive shell over a single session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"

	"listdeck/internal/backend/googletasks"
	"listdeck/internal/commands"
	"listdeck/internal/config"
	"listdeck/internal/controller"
	"listdeck/internal/exitcode"
	"listdeck/internal/logging"
	"listdeck/internal/service"
)

// ErrAuth marks a ServiceFactory failure caused by missing or unusable
// credentials.
var ErrAuth = errors.New("auth error")

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// GoogleTasks is the production ServiceFactory.
func GoogleTasks(ctx context.Context, cfg *config.Config) (service.Service, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: oauth_client.json not found in %s (run: listdeck login)", ErrAuth, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, fmt.Errorf("%w: not logged in (run: listdeck login)", ErrAuth)
	}
	c, err := googletasks.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return c, nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	ctl      *controller.Controller
	log      *zap.Logger
	level    zap.AtomicLevel

	// Prompt is written before each shell line. Empty disables it.
	Prompt string
}

// NewDispatcher creates a dispatcher whose commands all act on ctl. level
// is the logger's level; --debug raises it for one command.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, ctl *controller.Controller, log *zap.Logger, level zap.AtomicLevel) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		ctl:      ctl,
		log:      log,
		level:    level,
	}
}

// Run dispatches one command line and returns its exit code. An empty line
// lists the active list.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// Flags require a command.
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

// Shell reads command lines from in until EOF, quit or exit and returns the
// exit code of the last command.
func (d *Dispatcher) Shell(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	code := exitcode.Success
	scanner := bufio.NewScanner(in)
	for {
		if d.Prompt != "" {
			fmt.Fprint(out, d.Prompt)
		}
		if !scanner.Scan() || ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			code = exitcode.UserError
			continue
		}
		if len(args) == 1 && (args[0] == "quit" || args[0] == "exit") {
			break
		}
		code = d.Run(ctx, args, out, errOut)
		d.log.Debug("shell command", zap.String("command", args[0]), zap.Int("exit", code))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return code
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below

	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	restore := logging.Raise(d.level, debug)
	defer restore()

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.AuthError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	env := &commands.Env{Config: cfg, Controller: d.ctl, Log: d.log}

	if cmd.NeedsAuth() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: auth error: no backend configured")
			return exitcode.AuthError
		}
		svc, err := d.factory(ctx, cfg)
		if err != nil {
			if errors.Is(err, ErrAuth) {
				fmt.Fprintf(errOut, "error: %s\n", err)
				return exitcode.AuthError
			}
			fmt.Fprintf(errOut, "error: backend error: %s\n", err)
			return exitcode.BackendError
		}
		env.Service = svc
	}

	d.log.Debug("dispatch", zap.String("command", cmd.Name()), zap.Strings("args", positional))
	return cmd.Run(ctx, env, positional, out, errOut)
}

// parseInterleaved parses flags that may appear before, between or after
// positional arguments. Everything after "--" is positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := args[:len(args)-len(rest)]
		if len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	msg := err.Error()
	if name, ok := strings.CutPrefix(msg, "flag provided but not defined: "); ok {
		return "unknown flag: " + name
	}
	if name, ok := strings.CutPrefix(msg, "flag needs an argument: "); ok {
		return "flag needs an argument: " + name
	}
	return msg
}

// ConfigDirFromArgs returns the value of a --config flag in args, or "".
// The session is configured from it before any command is parsed.
func ConfigDirFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		for _, prefix := range []string{"--config", "-config"} {
			if arg == prefix && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, prefix+"="); ok {
				return v
			}
		}
	}
	return ""
}
