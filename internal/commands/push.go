package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"listdeck/internal/exitcode"
	"listdeck/internal/record"
	"listdeck/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command: it publishes the task list, in
// order, to a Google Tasks list.
type PushCmd struct {
	list   string
	create bool
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Publish tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "push [--list <name>] [--create]" }
func (c *PushCmd) NeedsAuth() bool   { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.list, "list", "", "")
	fs.StringVar(&c.list, "l", "", "")
	fs.BoolVar(&c.create, "create", false, "")
}

func (c *PushCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := env.Controller.Tasks()
	if len(tasks) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks to push")
		}
		return exitcode.Success
	}

	name := strings.TrimSpace(c.list)
	if name == "" {
		name = strings.TrimSpace(env.Config.Settings.PushList)
	}
	target, code := c.resolveTarget(ctx, env.Service, name, errOut)
	if code != exitcode.Success {
		return code
	}

	for i, t := range tasks {
		if err := env.Service.CreateTask(ctx, target.ID, remoteTask(t)); err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v (pushed %d of %d)\n", err, i, len(tasks))
			return exitcode.BackendError
		}
		env.Log.Debug("task pushed", zap.String("list", target.ID), zap.String("title", t.Title))
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "pushed %d %s to %s\n", len(tasks), plural(len(tasks), "task", "tasks"), target.Title)
	}
	return exitcode.Success
}

// resolveTarget returns the named list, or the default list when name is
// empty. With --create a missing list is created.
func (c *PushCmd) resolveTarget(ctx context.Context, svc service.Service, name string, errOut io.Writer) (service.TaskList, int) {
	if name == "" {
		l, err := svc.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.TaskList{}, exitcode.BackendError
		}
		return l, exitcode.Success
	}

	l, err := svc.ResolveList(ctx, name)
	switch {
	case err == nil:
		return l, exitcode.Success
	case errors.Is(err, service.ErrListNotFound) && c.create:
		l, err = svc.CreateList(ctx, name)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.TaskList{}, exitcode.BackendError
		}
		return l, exitcode.Success
	case errors.Is(err, service.ErrListNotFound), errors.Is(err, service.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.TaskList{}, exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return service.TaskList{}, exitcode.BackendError
	}
}

func remoteTask(t record.Task) service.Task {
	notes := "[" + t.Priority.String() + "]"
	if t.Description != "" {
		notes += " " + t.Description
	}
	return service.Task{Title: t.Title, Notes: notes, Completed: t.Completed}
}
