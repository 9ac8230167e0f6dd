package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/mfranczak/shoal/internal/torrents"
	"github.com/mfranczak/shoal/internal/ui"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	main := m.renderMain()
	if top, ok := m.stack.Active(); ok {
		return ui.Composite(main, top.View(m.width, m.height), m.width, m.height, top.Frame())
	}
	return main
}

func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("shoal")
	host := ui.SubtleStyle.Render(" " + m.settings.URL)

	rates := ""
	if stats, ok := m.stats.Get(); ok {
		rates = ui.TextStyle.Render(fmt.Sprintf("  ↓ %s/s  ↑ %s/s",
			humanize.Bytes(uint64(stats.DownloadSpeed)),
			humanize.Bytes(uint64(stats.UploadSpeed))))
	}

	busy := ""
	if m.mgr.PendingCount() > 0 {
		busy = " " + m.spin.View()
	}

	return title + host + rates + busy
}

func (m Model) renderTable() string {
	snap := m.table.Snapshot()
	widths := m.fitWidths(snap)

	var lines []string
	lines = append(lines, ui.HeaderStyle.Render(renderRow(snap.Header, widths)))

	if len(snap.Rows) == 0 {
		empty := "no torrents"
		if m.table.Filter() != "" {
			empty = "no torrents match the filter"
		}
		lines = append(lines, ui.SubtleStyle.Render("  "+empty))
	}

	top := visibleTop(snap.Selected, len(snap.Rows), m.tableHeight())
	for i := top; i < len(snap.Rows) && i < top+m.tableHeight(); i++ {
		row := renderRow(snap.Rows[i].Cells, widths)
		if i == snap.Selected {
			lines = append(lines, ui.SelectedRowStyle.Render(row))
		} else {
			lines = append(lines, ui.TextStyle.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

// fitWidths gives the name column whatever space the fixed columns leave
// over.
func (m Model) fitWidths(snap torrents.Snapshot) []int {
	widths := make([]int, len(snap.Widths))
	copy(widths, snap.Widths)

	fixed := 0
	for _, w := range widths[1:] {
		fixed += w + 1
	}
	if name := m.width - fixed - 1; name > 10 {
		widths[0] = name
	}
	return widths
}

func renderRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		w := widths[i]
		if runewidth.StringWidth(cell) > w {
			cell = runewidth.Truncate(cell, w-1, "…")
		}
		parts[i] = runewidth.FillRight(cell, w)
	}
	return " " + strings.Join(parts, " ")
}

// visibleTop keeps the selected row inside the viewport.
func visibleTop(selected, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	top := selected - height/2
	if top < 0 {
		top = 0
	}
	if top > total-height {
		top = total - height
	}
	return top
}

func (m Model) tableHeight() int {
	if n := m.height - 6; n > 1 {
		return n
	}
	return 1
}

func (m Model) renderFooter() string {
	if m.filtering || m.table.Filter() != "" {
		return m.filter.View()
	}
	if m.status != "" {
		return ui.WarningStyle.Render(m.status)
	}

	snap := m.table.Snapshot()
	count := ui.SubtleStyle.Render(fmt.Sprintf("%d torrents", snap.Total))

	keyStyle := ui.TitleStyle
	legend := []string{
		keyStyle.Render("[a]") + ui.SubtleStyle.Render(" add"),
		keyStyle.Render("[p]") + ui.SubtleStyle.Render(" pause"),
		keyStyle.Render("[/]") + ui.SubtleStyle.Render(" filter"),
		keyStyle.Render("[?]") + ui.SubtleStyle.Render(" help"),
		keyStyle.Render("[q]") + ui.SubtleStyle.Render(" quit"),
	}
	return count + "   " + strings.Join(legend, "  ")
}
