// Package main is the entry point for the listdeck CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"listdeck/internal/cli"
	"listdeck/internal/commands"
	"listdeck/internal/config"
	"listdeck/internal/controller"
	"listdeck/internal/exitcode"
	"listdeck/internal/logging"
)

const shellPrompt = "listdeck> "

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := logging.NewLevel(false)
	log := logging.New(os.Stderr, level)
	defer func() { _ = log.Sync() }()

	// The session is built once from the settings file; commands reload
	// settings on every dispatch.
	cfg, err := config.New(cli.ConfigDirFromArgs(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.AuthError
	}
	mode, err := cfg.Settings.Mode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.AuthError
	}

	ctl := controller.New(log, controller.Options{
		Currency: cfg.Settings.Currency,
		Mode:     mode,
	})
	if cfg.Settings.Seed {
		if err := ctl.Seed(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.GoogleTasks, ctl, log, level)
	if len(args) > 0 {
		return dispatcher.Run(ctx, args, os.Stdout, os.Stderr)
	}

	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		dispatcher.Prompt = shellPrompt
		fmt.Fprintf(os.Stdout, "listdeck %s - type help for commands, quit to leave\n", commands.Version)
	}

	// The shell blocks on stdin, so an interrupt ends the session from here.
	done := make(chan int, 1)
	go func() {
		done <- dispatcher.Shell(ctx, os.Stdin, os.Stdout, os.Stderr)
	}()
	select {
	case code := <-done:
		return code
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
		return exitcode.Success
	}
}
