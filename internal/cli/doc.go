// Package cli provides the interactive GophGate terminal client.
//
// It wires configuration, the configured key-value store, the session and
// form controllers and a REPL that plays the role of the page. Typical flow:
// the session is restored from the stored marker or the login dialog opens,
// the user logs in or registers, then reads the protected content.
//
// While the login dialog is open it cannot be dismissed: only login,
// register, help and exit are accepted.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
