// Package print renders one-line CLI status messages for the non-TUI
// commands, sharing the application palette.
package print

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfranczak/shoal/internal/ui"
)

var (
	successIcon = lipgloss.NewStyle().Foreground(ui.SuccessColor).Bold(true).Render("✓")
	errorIcon   = lipgloss.NewStyle().Foreground(ui.ErrorColor).Bold(true).Render("✖")
	warnIcon    = lipgloss.NewStyle().Foreground(ui.WarningColor).Bold(true).Render("⚠")
	infoIcon    = lipgloss.NewStyle().Foreground(ui.AccentColor).Bold(true).Render("ℹ")
)

// Success prints a success message with a green tick.
func Success(format string, a ...any) {
	fmt.Printf("%s %s\n", successIcon, fmt.Sprintf(format, a...))
}

// Error prints an error message with a red cross.
func Error(format string, a ...any) {
	fmt.Printf("%s %s\n", errorIcon, fmt.Sprintf(format, a...))
}

// Warning prints a warning message with a yellow triangle.
func Warning(format string, a ...any) {
	fmt.Printf("%s %s\n", warnIcon, fmt.Sprintf(format, a...))
}

// Info prints an informational message.
func Info(format string, a ...any) {
	fmt.Printf("%s %s\n", infoIcon, fmt.Sprintf(format, a...))
}

// Section prints a section header preceded by a blank line.
func Section(title string) {
	fmt.Println()
	fmt.Println(ui.TitleStyle.Render(title))
}
