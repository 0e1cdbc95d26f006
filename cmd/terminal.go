package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// stdinIsTerminal reports whether the standard input is an interactive terminal.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readPassword reads a line from the terminal without echo.
func readPassword() (string, error) {
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	return string(b), err
}
