package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupFrame describes how a popup window is framed when composited over
// the main view.
type PopupFrame struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	PaddingH    int
	PaddingV    int
	DimColor    lipgloss.Color
}

// DefaultPopupFrame returns the standard popup frame.
func DefaultPopupFrame() PopupFrame {
	return PopupFrame{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: AccentColor,
		PaddingH:    2,
		PaddingV:    1,
		DimColor:    SubtleColor,
	}
}

// DangerPopupFrame returns a popup frame with an error-colored border,
// used for destructive confirmations.
func DangerPopupFrame() PopupFrame {
	f := DefaultPopupFrame()
	f.BorderColor = ErrorColor
	return f
}

// Composite draws a popup centered over the main view. The main view is
// rendered in the frame's dim color so the popup reads as the active
// surface; the popup keeps its own styling inside a border.
func Composite(main, popup string, width, height int, frame PopupFrame) string {
	if width < 10 || height < 5 {
		return popup
	}

	dimmed := dimView(main, width, height, frame.DimColor)

	boxed := lipgloss.NewStyle().
		Border(frame.Border).
		BorderForeground(frame.BorderColor).
		Padding(frame.PaddingV, frame.PaddingH).
		Render(popup)

	return center(dimmed, boxed, width, height, frame.DimColor)
}

// dimView strips any existing styling from the main view and re-renders
// it in a single muted color, padded out to the full terminal size.
func dimView(view string, width, height int, color lipgloss.Color) string {
	dim := lipgloss.NewStyle().Foreground(color)
	lines := strings.Split(view, "\n")

	out := make([]string, height)
	for i := 0; i < height; i++ {
		if i < len(lines) {
			plain := stripANSI(lines[i])
			if pad := width - runewidth.StringWidth(plain); pad > 0 {
				plain += strings.Repeat(" ", pad)
			}
			out[i] = dim.Render(plain)
		} else {
			out[i] = dim.Render(strings.Repeat(" ", width))
		}
	}
	return strings.Join(out, "\n")
}

// center splices the popup's lines into the middle of the dimmed view,
// re-dimming the background segments left and right of each popup line.
func center(bg, popup string, width, height int, dimColor lipgloss.Color) string {
	bgLines := strings.Split(bg, "\n")
	popLines := strings.Split(popup, "\n")
	dim := lipgloss.NewStyle().Foreground(dimColor)

	popWidth := 0
	for _, line := range popLines {
		if w := lipgloss.Width(line); w > popWidth {
			popWidth = w
		}
	}

	startX := (width - popWidth) / 2
	startY := (height - len(popLines)) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	for len(bgLines) < height {
		bgLines = append(bgLines, strings.Repeat(" ", width))
	}

	for i, popLine := range popLines {
		row := startY + i
		if row >= len(bgLines) {
			break
		}

		plain := stripANSI(bgLines[row])
		lineWidth := lipgloss.Width(popLine)
		left := sliceCells(plain, 0, startX)
		right := sliceCells(plain, startX+lineWidth, width-(startX+lineWidth))

		var b strings.Builder
		if left != "" {
			b.WriteString(dim.Render(left))
		}
		b.WriteString(popLine)
		if right != "" {
			b.WriteString(dim.Render(right))
		}
		bgLines[row] = b.String()
	}

	return strings.Join(bgLines[:height], "\n")
}

// sliceCells cuts a plain (unstyled) string by terminal cell positions,
// replacing any wide rune split at a boundary with spaces and padding
// the result to exactly length cells.
func sliceCells(s string, start, length int) string {
	if length <= 0 {
		return ""
	}

	end := start + length
	col := 0
	var b strings.Builder
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		runeStart, runeEnd := col, col+w
		col = runeEnd

		if runeEnd <= start {
			continue
		}
		if runeStart >= end {
			break
		}

		if runeStart >= start && runeEnd <= end {
			b.WriteRune(r)
			continue
		}
		overlapStart := max(runeStart, start)
		overlapEnd := min(runeEnd, end)
		if overlapEnd > overlapStart {
			b.WriteString(strings.Repeat(" ", overlapEnd-overlapStart))
		}
	}

	if cur := runewidth.StringWidth(b.String()); cur < length {
		b.WriteString(strings.Repeat(" ", length-cur))
	}
	return b.String()
}

// stripANSI removes ANSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '~' {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
