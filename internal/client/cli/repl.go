package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can
// provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Browse(ctx context.Context, args []string) error
	Featured(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	AddItem(ctx context.Context) error
	Health(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	SetUserStatus(ctx context.Context, args []string, active bool) error
	SetUserRole(ctx context.Context, args []string) error
	RemoveUser(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the ReWear CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands available when not logged in: help, signup, login, browse,
// featured, show, health, exit. Logging in adds: whoami, update,
// additem, logout, and the admin commands (dashboard, users, activate,
// deactivate, role, rmuser), which are gated per invocation.
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rw> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, update, browse, featured, show, additem, health, dashboard, users, activate, deactivate, role, rmuser, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, browse, featured, show, health, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "b", "browse":
			_ = a.Browse(ctx, args)

		case "featured":
			_ = a.Featured(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "additem":
			_ = a.AddItem(ctx)

		case "health":
			_ = a.Health(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "users":
			_ = a.Users(ctx, args)

		case "activate":
			_ = a.SetUserStatus(ctx, args, true)

		case "deactivate":
			_ = a.SetUserStatus(ctx, args, false)

		case "role":
			_ = a.SetUserRole(ctx, args)

		case "rmuser":
			_ = a.RemoveUser(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
