package commands_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"listdeck/internal/commands"
	"listdeck/internal/exitcode"
	"listdeck/internal/record"
	"listdeck/internal/service"
	"listdeck/internal/testutil"
)

func pushEnv(t *testing.T, svc *testutil.FakeService) *commands.Env {
	t.Helper()
	env := newEnv(t, record.ModeStudents, false)
	env.Service = svc
	return env
}

var seededRemote = []service.Task{
	{Title: "Complete Assignment", Notes: "[High] Mobile Programming"},
	{Title: "Shopping", Notes: "[Medium] Visit Mart"},
	{Title: "Tour", Notes: "[Low] Museum", Completed: true},
}

func TestPushCommand_DefaultList(t *testing.T) {
	svc := testutil.NewFakeService()
	env := pushEnv(t, svc)

	stdout, stderr, code := runCommand(t, env, &commands.PushCmd{})
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (%s)", code, stderr)
	}
	if stdout != "pushed 3 tasks to My Tasks\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	if diff := cmp.Diff(seededRemote, svc.Tasks(testutil.DefaultListID)); diff != "" {
		t.Errorf("remote tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestPushCommand_NoDescription(t *testing.T) {
	svc := testutil.NewFakeService()
	env := pushEnv(t, svc)
	env.Controller.SetMode(record.ModeTasks)
	env.Controller.Clear()
	runCommand(t, env, &commands.AddCmd{}, "--priority", "high", "Call home")

	_, _, code := runCommand(t, env, &commands.PushCmd{})
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	want := []service.Task{{Title: "Call home", Notes: "[High]"}}
	if diff := cmp.Diff(want, svc.Tasks(testutil.DefaultListID)); diff != "" {
		t.Errorf("remote tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestPushCommand_NamedList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("school", "School")
	env := pushEnv(t, svc)

	stdout, _, code := runCommand(t, env, &commands.PushCmd{}, "--list", "school")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if stdout != "pushed 3 tasks to School\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	if len(svc.Tasks("school")) != 3 {
		t.Errorf("expected 3 tasks in School, got %d", len(svc.Tasks("school")))
	}
}

func TestPushCommand_SettingsList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("school", "School")
	env := pushEnv(t, svc)
	env.Config.Settings.PushList = "School"

	_, _, code := runCommand(t, env, &commands.PushCmd{})
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if len(svc.Tasks("school")) != 3 {
		t.Errorf("expected the configured list to receive the tasks")
	}
}

func TestPushCommand_MissingList(t *testing.T) {
	svc := testutil.NewFakeService()
	env := pushEnv(t, svc)

	_, stderr, code := runCommand(t, env, &commands.PushCmd{}, "--list", "Errands")
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list not found: Errands\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}

	stdout, _, code := runCommand(t, env, &commands.PushCmd{}, "--list", "Errands", "--create")
	if code != exitcode.Success {
		t.Fatalf("expected success with --create, got %d", code)
	}
	if stdout != "pushed 3 tasks to Errands\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	lists := svc.Lists()
	created := lists[len(lists)-1]
	if created.Title != "Errands" || len(svc.Tasks(created.ID)) != 3 {
		t.Errorf("expected tasks in the created list, got %+v", created)
	}
}

func TestPushCommand_NoTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	env := pushEnv(t, svc)
	env.Controller.SetMode(record.ModeTasks)
	env.Controller.Clear()

	stdout, _, code := runCommand(t, env, &commands.PushCmd{})
	if code != exitcode.Success || stdout != "no tasks to push\n" {
		t.Errorf("unexpected result %d %q", code, stdout)
	}
}

func TestPushCommand_BackendErrors(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.DefaultListErr = errors.New("unavailable")
	env := pushEnv(t, svc)

	_, stderr, code := runCommand(t, env, &commands.PushCmd{})
	if code != exitcode.BackendError || stderr != "error: backend error: unavailable\n" {
		t.Errorf("unexpected result %d %q", code, stderr)
	}

	svc = testutil.NewFakeService()
	svc.FailAfter = 2
	env = pushEnv(t, svc)

	_, stderr, code = runCommand(t, env, &commands.PushCmd{})
	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: quota exceeded (pushed 2 of 3)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
