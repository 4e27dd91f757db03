package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	modalOpen() bool
	helpText() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Show(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the GophGate client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, on ctx cancellation
// or when the user types "exit" or "quit".
//
//	Login dialog open:
//	  - help           - show available commands
//	  - login          - log in with email and password
//	  - register       - create an account and log in
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - show           - print the protected content
//	  - whoami         - print the display name
//	  - logout         - close the session
//	  - exit | quit    - leave the program
//
// While the dialog is open every other command is refused: the dialog can
// only be closed by logging in or registering. Handler errors are printed
// and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("gg %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(a.helpText())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if a.modalOpen() {
			switch cmd {
			case "login":
				report(a.Login(ctx))
			case "register":
				report(a.Register(ctx))
			default:
				printlnFn("Please log in or register first, the login dialog cannot be closed.")
			}
			continue
		}

		switch cmd {
		case "show":
			report(a.Show(ctx))

		case "whoami":
			report(a.WhoAmI(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "login", "register":
			printlnFn("Already logged in, use logout first.")

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
