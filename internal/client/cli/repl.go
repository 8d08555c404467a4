package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, title string) error
	Toggle(ctx context.Context, ref string) error
	Move(ctx context.Context, ref, status string) error
	Rename(ctx context.Context, ref, title string) error
	Delete(ctx context.Context, ref string) error
	Stats(ctx context.Context) error
	Health(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: signup, login, reset, health, exit"
	helpLoggedIn  = "Available commands: (l)ist, add <title>, toggle <n>, move <n> <status>, rename <n> <title>, delete <n>, stats, whoami, logout, health, exit"
)

// runREPL reads commands from reader until EOF or exit/quit and dispatches
// them to a. Handler errors are printed and the loop carries on.
//
// Task commands require a session; without one the user is told to log in.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("taskmate%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, rest := splitCommand(line)
		if cmd == "" {
			continue
		}

		if err := dispatch(ctx, a, cmd, rest); err != nil {
			if errors.Is(err, errQuit) {
				printlnFn("Bye!")
				return
			}
			printlnFn("Error:", err.Error())
		}
	}
}

var errQuit = errors.New("quit")

func dispatch(ctx context.Context, a execIface, cmd, rest string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "exit", "quit":
		return errQuit
	case "signup", "register":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	case "reset", "forgot":
		return a.ResetPassword(ctx)
	case "health":
		return a.Health(ctx)
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "logout", "whoami", "l", "list", "add", "toggle", "move", "rename", "delete", "rm", "stats":
			printlnFn("Please log in first")
			return nil
		}
		printlnFn("Unknown command:", cmd)
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "l", "list":
		return a.List(ctx)
	case "stats":
		return a.Stats(ctx)
	case "add":
		if rest == "" {
			printlnFn("Usage: add <title>")
			return nil
		}
		return a.Add(ctx, rest)
	case "toggle":
		if rest == "" {
			printlnFn("Usage: toggle <n>")
			return nil
		}
		return a.Toggle(ctx, rest)
	case "delete", "rm":
		if rest == "" {
			printlnFn("Usage: delete <n>")
			return nil
		}
		return a.Delete(ctx, rest)
	case "move":
		ref, status := splitCommand(rest)
		if ref == "" || status == "" {
			printlnFn("Usage: move <n> <pending|ongoing|completed>")
			return nil
		}
		return a.Move(ctx, ref, status)
	case "rename":
		ref, title := splitCommand(rest)
		if ref == "" || title == "" {
			printlnFn("Usage: rename <n> <title>")
			return nil
		}
		return a.Rename(ctx, ref, title)
	}

	printlnFn("Unknown command:", cmd)
	return nil
}

// splitCommand returns the first word of line and the trimmed remainder.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
