package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.session.Username)
}

// Root runs the command loop. Commands are gated on login state, mirroring
// the two screen stacks of the app: auth commands before login, note
// commands after.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the notes keeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "notes %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: list, search, sort, add, edit, show, attach, delete, logout, switch, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout", "switch":
			a.Logout(ctx)
		case "list":
			a.requireLogin(func() { a.list(ctx) })
		case "search":
			a.requireLogin(func() { a.search(args) })
		case "sort":
			a.requireLogin(func() { a.cycleSort() })
		case "add":
			a.requireLogin(func() { a.add(ctx) })
		case "edit":
			a.requireLogin(func() { a.edit(ctx) })
		case "show":
			a.requireLogin(func() { a.show(ctx) })
		case "attach":
			a.requireLogin(func() { a.attach(ctx) })
		case "delete":
			a.requireLogin(func() { a.delete(ctx) })
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) requireLogin(fn func()) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return
	}
	fn()
}
