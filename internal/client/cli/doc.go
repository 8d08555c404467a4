// Package cli provides the interactive TaskMate command-line client.
//
// It wires configuration, the local session store, the HTTP API client and
// the task controller behind a small REPL. On start the saved session, if
// any, is restored and the task list is loaded.
//
// Commands:
//   - Account: signup, login, logout, whoami, reset
//   - Tasks: list, add, toggle, move, rename, delete, stats
//   - Misc: health, help, exit
//
// Tasks are addressed by their position in the last printed list or by id.
package cli
