package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/mfranczak/shoal/internal/action"
	"github.com/mfranczak/shoal/internal/transmission"
	"github.com/mfranczak/shoal/internal/ui"
)

// filesPopup lists the files inside one torrent with per-file progress.
type filesPopup struct {
	torrent string
	files   []transmission.File
	offset  int
}

func newFilesPopup(torrent string, files []transmission.File) *filesPopup {
	return &filesPopup{torrent: torrent, files: files}
}

func (p *filesPopup) Handle(a action.Action) action.Action {
	switch a.Kind {
	case action.KindQuit, action.KindSoftQuit, action.KindConfirm, action.KindShowFiles:
		return action.Quit
	case action.KindDown:
		if p.offset < len(p.files)-1 {
			p.offset++
		}
		return action.Render
	case action.KindUp:
		if p.offset > 0 {
			p.offset--
		}
		return action.Render
	case action.KindHome:
		p.offset = 0
		return action.Render
	case action.KindEnd:
		p.offset = len(p.files) - 1
		return action.Render
	}
	return action.Nothing
}

func (p *filesPopup) Frame() ui.PopupFrame {
	return ui.DefaultPopupFrame()
}

func (p *filesPopup) View(width, height int) string {
	lines := []string{ui.TitleStyle.Render(p.torrent), ""}
	if len(p.files) == 0 {
		lines = append(lines, ui.SubtleStyle.Render("no files reported yet"))
	}
	for _, f := range p.files {
		pct := 0.0
		if f.Length > 0 {
			pct = float64(f.BytesCompleted) / float64(f.Length) * 100
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			ui.TextStyle.Render(truncate(f.Name, width-30)),
			ui.SubtleStyle.Render(fmt.Sprintf("%9s", humanize.Bytes(uint64(f.Length)))),
			ui.SubtleStyle.Render(fmt.Sprintf("%5.1f%%", pct))))
	}
	return scrollLines(lines, p.offset, height-6)
}

func truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
