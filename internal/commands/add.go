package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"listdeck/internal/controller"
	"listdeck/internal/exitcode"
	"listdeck/internal/output"
	"listdeck/internal/record"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	price       string
	quantity    string
	description string
	priority    string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add an entry to the active list" }
func (c *AddCmd) Usage() string {
	return "add [--price <p>] [--qty <n>] [--desc <text>] [--priority low|medium|high] <text...>"
}
func (c *AddCmd) NeedsAuth() bool { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.price, "price", "", "")
	fs.StringVar(&c.price, "p", "", "")
	fs.StringVar(&c.quantity, "qty", "", "")
	fs.StringVar(&c.quantity, "q", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	priority, err := record.ParsePriority(c.priority)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ctl := env.Controller
	res, err := ctl.Add(strings.Join(args, " "), controller.Fields{
		PriceRaw:    c.price,
		QuantityRaw: c.quantity,
		Description: c.description,
		Priority:    priority,
	})
	if err != nil {
		return reportError(errOut, 0, err)
	}

	if !env.Config.Quiet {
		output.FormatEntry(out, res.Position+1, res.Entry, ctl.Currency())
		fmt.Fprintln(out, ctl.Summary())
	}
	return exitcode.Success
}
