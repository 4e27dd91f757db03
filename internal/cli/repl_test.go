package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	open bool

	calls []string
	err   error
}

func (f *fakeExec) modalOpen() bool  { return f.open }
func (f *fakeExec) helpText() string { return "help!" }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.open = false
	return f.err
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.open = false
	return f.err
}
func (f *fakeExec) Show(ctx context.Context) error {
	f.calls = append(f.calls, "show")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.open = true
	return nil
}

// capturePrint redirects printlnFn into a slice for the duration of the test.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestRunREPL_ModalBlocksOtherCommands(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{open: true}
	runREPL(context.Background(), exec, func() string { return "(guest)" },
		readerFromLines("show", "logout", "whoami", "help", "exit"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Please log in or register first, the login dialog cannot be closed.")
	assert.Contains(t, *out, "help!")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{open: true}
	runREPL(context.Background(), exec, func() string { return "status" },
		readerFromLines("", "login", "show", "whoami", "login", "logout", "show", "register", "quit", "show"))

	assert.Equal(t, []string{"login", "show", "whoami", "logout", "register"}, exec.calls)
}

func TestRunREPL_UnknownAndErrors(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{open: true, err: errors.New("store down")}
	runREPL(context.Background(), exec, func() string { return "s" },
		readerFromLines("login", "foobar"))

	assert.Contains(t, *out, "Error: store down")
	assert.Contains(t, *out, "Unknown command: foobar")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	out := capturePrint(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, readerFromLines("show"))

	assert.Empty(t, exec.calls)
	assert.Empty(t, *out)
}
