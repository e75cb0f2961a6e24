package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"listdeck/internal/cli"
	"listdeck/internal/commands"
	"listdeck/internal/config"
	"listdeck/internal/controller"
	"listdeck/internal/exitcode"
	"listdeck/internal/logging"
	"listdeck/internal/record"
	"listdeck/internal/service"
	"listdeck/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

func newDispatcher(t *testing.T, factory cli.ServiceFactory) (*cli.Dispatcher, *controller.Controller) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	ctl := controller.New(nil, controller.Options{})
	if err := ctl.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return cli.NewDispatcher(commands.DefaultRegistry, factory, ctl, zap.NewNop(), logging.NewLevel(false)), ctl
}

func run(d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d, _ := newDispatcher(t, nil)

	_, stderr, code := run(d, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	d, _ := newDispatcher(t, nil)

	_, stderr, code := run(d, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	d, _ := newDispatcher(t, nil)

	stdout, _, code := run(d)
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.Contains(stdout, "   1  KIM\n") {
		t.Errorf("expected the student list, got %q", stdout)
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	d, _ := newDispatcher(t, nil)

	stdout, stderr, code := run(d, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "listdeck 0.1.0\n" {
		t.Errorf("expected 'listdeck 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_FlagErrors(t *testing.T) {
	d, _ := newDispatcher(t, nil)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"help", "--unknown"}, "error: unknown flag: -unknown\n"},
		{[]string{"add", "--price"}, "error: flag needs an argument: -price\n"},
	}
	for _, tt := range tests {
		_, stderr, code := run(d, tt.args...)
		if code != exitcode.UserError {
			t.Errorf("%v: expected exit code %d, got %d", tt.args, exitcode.UserError, code)
		}
		if stderr != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.want, stderr)
		}
	}
}

func TestDispatcher_FlagsAfterPositionals(t *testing.T) {
	d, ctl := newDispatcher(t, nil)
	ctl.SetMode(record.ModeCart)

	stdout, stderr, code := run(d, "add", "Milk", "--price", "1.5", "--qty", "2", "--quiet")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (%s)", code, stderr)
	}
	if stdout != "" {
		t.Errorf("expected quiet output, got %q", stdout)
	}
	if ctl.Summary() != "Items: 7 | Total: $11.00" {
		t.Errorf("unexpected summary %q", ctl.Summary())
	}
}

func TestDispatcher_DoubleDash(t *testing.T) {
	d, ctl := newDispatcher(t, nil)

	_, stderr, code := run(d, "add", "--", "--weird-name")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (%s)", code, stderr)
	}
	entries := ctl.Entries()
	if entries[len(entries)-1].Heading() != "--weird-name" {
		t.Errorf("expected literal name, got %q", entries[len(entries)-1].Heading())
	}
}

func TestDispatcher_SessionSharedAcrossCommands(t *testing.T) {
	d, _ := newDispatcher(t, nil)

	run(d, "mode", "tasks")
	run(d, "add", "--priority", "high", "Exam")
	stdout, _, _ := run(d, "summary")

	if stdout != "Tasks: 3 pending, 1 completed | High: 2\n" {
		t.Errorf("unexpected summary %q", stdout)
	}
}

func TestDispatcher_ConfigDir(t *testing.T) {
	d, _ := newDispatcher(t, nil)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("date_format: \"2006-01-02\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run(d, "mode", "cart")

	stdout, stderr, code := run(d, "select", "--config", dir, "1")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (%s)", code, stderr)
	}
	if !strings.Contains(stdout, "Added: ") || strings.Contains(stdout, "/") {
		t.Errorf("expected the configured date format, got %q", stdout)
	}
}

func TestDispatcher_BadConfig(t *testing.T) {
	d, _ := newDispatcher(t, nil)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, code := run(d, "list", "--config", dir)
	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
}

func TestDispatcher_Push(t *testing.T) {
	svc := testutil.NewFakeService()
	d, _ := newDispatcher(t, testFactory(svc))

	stdout, stderr, code := run(d, "push")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (%s)", code, stderr)
	}
	if stdout != "pushed 3 tasks to My Tasks\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestDispatcher_FactoryErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: not logged in", cli.ErrAuth), exitcode.AuthError},
		{errors.New("dial tcp: timeout"), exitcode.BackendError},
	}
	for _, tt := range tests {
		factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
			return nil, tt.err
		}
		d, _ := newDispatcher(t, factory)
		_, _, code := run(d, "push")
		if code != tt.want {
			t.Errorf("%v: expected exit code %d, got %d", tt.err, tt.want, code)
		}
	}

	d, _ := newDispatcher(t, nil)
	if _, _, code := run(d, "push"); code != exitcode.AuthError {
		t.Errorf("expected auth error without a backend, got %d", code)
	}
}

func TestGoogleTasks_NotLoggedIn(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	_, err := cli.GoogleTasks(context.Background(), cfg)
	if !errors.Is(err, cli.ErrAuth) || !strings.Contains(err.Error(), "oauth_client.json not found") {
		t.Errorf("expected missing client error, got %v", err)
	}

	if err := os.WriteFile(cfg.OAuthClientPath(), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = cli.GoogleTasks(context.Background(), cfg)
	if !errors.Is(err, cli.ErrAuth) || !strings.Contains(err.Error(), "not logged in") {
		t.Errorf("expected not logged in error, got %v", err)
	}
}

func TestDispatcher_DebugRaisesLevelForOneCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var logs bytes.Buffer
	level := logging.NewLevel(false)
	log := logging.New(&logs, level)
	ctl := controller.New(log, controller.Options{})
	d := cli.NewDispatcher(commands.DefaultRegistry, nil, ctl, log, level)

	run(d, "add", "--debug", "KIM")
	if !strings.Contains(logs.String(), "entry added") {
		t.Errorf("expected debug log, got %q", logs.String())
	}
	if level.Level() != zapcore.WarnLevel {
		t.Errorf("expected level restored to warn, got %v", level.Level())
	}

	logs.Reset()
	run(d, "add", "LEE")
	if logs.Len() != 0 {
		t.Errorf("expected no debug logs without --debug, got %q", logs.String())
	}
}

func TestShell(t *testing.T) {
	d, ctl := newDispatcher(t, nil)

	in := strings.NewReader(`
# comment lines are skipped
mode cart
add --price 0.5 --qty 4 "Green Tea"
rm 9
quit
add never-reached
`)
	var stdout, stderr bytes.Buffer
	code := d.Shell(context.Background(), in, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected the last command's exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr.String() != "error: position out of range: 9\n" {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "   3  Green Tea (x4) - $2.00\n") {
		t.Errorf("expected quoted name to stay one word, got %q", stdout.String())
	}
	if ctl.Len() != 3 {
		t.Errorf("expected 3 cart items, got %d", ctl.Len())
	}
}

func TestShell_PromptAndBadQuoting(t *testing.T) {
	d, _ := newDispatcher(t, nil)
	d.Prompt = "> "

	var stdout, stderr bytes.Buffer
	code := d.Shell(context.Background(), strings.NewReader("add \"unterminated\n"), &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.HasPrefix(stderr.String(), "error: ") {
		t.Errorf("expected a parse error, got %q", stderr.String())
	}
	if stdout.String() != "> > " {
		t.Errorf("expected a prompt per read, got %q", stdout.String())
	}
}

func TestConfigDirFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"list", "--config", "/tmp/a"}, "/tmp/a"},
		{[]string{"list", "--config=/tmp/b"}, "/tmp/b"},
		{[]string{"add", "--", "--config", "/tmp/c"}, ""},
	}
	for _, tt := range tests {
		if got := cli.ConfigDirFromArgs(tt.args); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.want, got)
		}
	}
}
