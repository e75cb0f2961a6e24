package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"listdeck/internal/exitcode"
	"listdeck/internal/export"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write the active list to a file" }
func (c *ExportCmd) Usage() string     { return "export [--format json|csv|pdf] <file>" }
func (c *ExportCmd) NeedsAuth() bool   { return false }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "", "")
	fs.StringVar(&c.format, "f", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: file required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}
	path := args[0]

	format := strings.ToLower(c.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	if !slices.Contains(export.Formats, format) {
		fmt.Fprintf(errOut, "error: unknown format: %s (want %s)\n", format, strings.Join(export.Formats, ", "))
		return exitcode.UserError
	}

	data, err := export.NewExporter(env.Controller).
		WithFont(env.Config.Settings.PDFFont).
		Export(format)
	if err != nil {
		fmt.Fprintf(errOut, "error: export failed: %v\n", err)
		return exitcode.BackendError
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	env.Log.Debug("exported",
		zap.String("format", format),
		zap.String("path", path),
		zap.Int("bytes", len(data)))

	if !env.Config.Quiet {
		n := env.Controller.Len()
		fmt.Fprintf(out, "exported %d %s to %s\n", n, plural(n, "entry", "entries"), path)
	}
	return exitcode.Success
}
