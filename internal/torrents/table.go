package torrents

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/mfranczak/shoal/internal/transmission"
)

// Table is the shared torrent list. Background poll loops replace its
// contents wholesale; the event loop reads it and moves the cursor. All
// access goes through the mutex, held only for the duration of a single
// operation and never across anything that blocks.
type Table struct {
	mu      sync.Mutex
	items   []transmission.Torrent
	visible []int // indices into items under the active filter
	cursor  int   // index into visible; -1 when the view is empty
	filter  string
}

// NewTable creates an empty table with no selection.
func NewTable() *Table {
	return &Table{cursor: -1}
}

// Replace atomically swaps the backing list for a fresh poll snapshot and
// clamps the cursor to the new bounds. Polls racing to complete are fine:
// whichever finishes last wins, and a snapshot is never partially applied.
func (t *Table) Replace(items []transmission.Torrent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = items
	t.applyFilter()
}

// RemoveIDs drops the given torrents from the current view without
// waiting for the next poll.
func (t *Table) RemoveIDs(ids []int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	gone := make(map[int64]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}
	kept := t.items[:0]
	for _, item := range t.items {
		if !gone[item.ID] {
			kept = append(kept, item)
		}
	}
	t.items = kept
	t.applyFilter()
}

// SetFilter replaces the active filter. The underlying list is untouched;
// only the visible view and the cursor change.
func (t *Table) SetFilter(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter = query
	t.applyFilter()
}

// Filter returns the active filter query.
func (t *Table) Filter() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filter
}

// applyFilter recomputes the visible view and clamps the cursor.
// Callers must hold the mutex.
func (t *Table) applyFilter() {
	t.visible = t.visible[:0]
	if t.filter == "" {
		for i := range t.items {
			t.visible = append(t.visible, i)
		}
	} else {
		names := make([]string, len(t.items))
		for i, item := range t.items {
			names[i] = item.Name
		}
		for _, m := range fuzzy.Find(t.filter, names) {
			t.visible = append(t.visible, m.Index)
		}
		// fuzzy ranks by score; the table keeps daemon order.
		sort.Ints(t.visible)
	}

	switch {
	case len(t.visible) == 0:
		t.cursor = -1
	case t.cursor < 0:
		t.cursor = 0
	case t.cursor >= len(t.visible):
		t.cursor = len(t.visible) - 1
	}
}

// SelectNext moves the cursor down one row, saturating at the end.
func (t *Table) SelectNext() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor >= 0 && t.cursor < len(t.visible)-1 {
		t.cursor++
	}
}

// SelectPrev moves the cursor up one row, saturating at the start.
func (t *Table) SelectPrev() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor > 0 {
		t.cursor--
	}
}

// SelectFirst moves the cursor to the first visible row.
func (t *Table) SelectFirst() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.visible) > 0 {
		t.cursor = 0
	}
}

// SelectLast moves the cursor to the last visible row.
func (t *Table) SelectLast() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.visible) > 0 {
		t.cursor = len(t.visible) - 1
	}
}

// PageBy moves the cursor by delta rows, saturating at both ends.
func (t *Table) PageBy(delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.visible) == 0 {
		return
	}
	t.cursor += delta
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor >= len(t.visible) {
		t.cursor = len(t.visible) - 1
	}
}

// Current returns the torrent under the cursor in the filtered view.
func (t *Table) Current() (transmission.Torrent, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor < 0 || t.cursor >= len(t.visible) {
		return transmission.Torrent{}, false
	}
	return t.items[t.visible[t.cursor]], true
}

// Len returns the number of visible rows.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.visible)
}

// Row is one formatted table row.
type Row struct {
	ID    int64
	Cells []string
}

// Snapshot is the read-only view handed to the renderer each frame.
type Snapshot struct {
	Header   []string
	Widths   []int
	Rows     []Row
	Selected int // index into Rows, -1 for none
	Total    int // unfiltered torrent count
}

var (
	header = []string{"Name", "Size", "Progress", "ETA", "Down", "Up", "Status"}
	widths = []int{40, 12, 10, 9, 11, 11, 14}
)

// Snapshot formats the visible rows under the lock and returns them with
// the header labels, column widths and selection index.
func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := make([]Row, 0, len(t.visible))
	for _, idx := range t.visible {
		item := t.items[idx]
		rows = append(rows, Row{ID: item.ID, Cells: formatCells(item)})
	}
	return Snapshot{
		Header:   header,
		Widths:   widths,
		Rows:     rows,
		Selected: t.cursor,
		Total:    len(t.items),
	}
}

func formatCells(t transmission.Torrent) []string {
	return []string{
		t.Name,
		humanize.Bytes(uint64(t.SizeWhenDone)),
		fmt.Sprintf("%.1f%%", t.PercentDone*100),
		formatETA(t.ETA),
		humanize.Bytes(uint64(t.RateDownload)) + "/s",
		humanize.Bytes(uint64(t.RateUpload)) + "/s",
		t.Status.String(),
	}
}

// formatETA renders the seconds-remaining field; the daemon reports
// negative values when no estimate exists.
func formatETA(eta int64) string {
	if eta < 0 {
		return ""
	}
	d := time.Duration(eta) * time.Second
	if d >= 24*time.Hour {
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
	if d >= time.Hour {
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
