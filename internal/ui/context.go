package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether a full-screen TUI can run: both ends of
// the terminal must be real TTYs.
func IsInteractive() bool {
	return isTTY(os.Stdin.Fd()) && isTTY(os.Stdout.Fd())
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
