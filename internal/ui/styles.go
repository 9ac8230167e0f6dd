package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	AccentColor  = lipgloss.Color("#04B5B5") // Teal
	SuccessColor = lipgloss.Color("#04B575") // Green
	ErrorColor   = lipgloss.Color("#FF5555") // Red
	WarningColor = lipgloss.Color("#FFCC00") // Yellow
	SubtleColor  = lipgloss.Color("#626262") // Gray
	TextColor    = lipgloss.Color("#FFFFFF") // White

	// Text Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Table Styles
	HeaderStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Underline(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(AccentColor).
				Bold(true)
)
