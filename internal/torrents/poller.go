package torrents

import (
	"context"
	"time"

	"github.com/mfranczak/shoal/internal/transmission"
)

// PollTorrents fetches the torrent list on a fixed interval and replaces
// the table contents wholesale on every successful fetch. It fetches once
// immediately, then ticks until the context is cancelled; onUpdate runs
// after every attempt with the fetch error, if any.
func PollTorrents(ctx context.Context, client transmission.Client, table *Table, interval time.Duration, onUpdate func(error)) {
	fetch := func() {
		items, err := client.Torrents(ctx)
		if err == nil {
			table.Replace(items)
		}
		if onUpdate != nil {
			onUpdate(err)
		}
	}

	fetch()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetch()
		}
	}
}

// PollStats fetches session statistics on a fixed interval into the
// stats cell.
func PollStats(ctx context.Context, client transmission.Client, cell *StatsCell, interval time.Duration, onUpdate func(error)) {
	fetch := func() {
		stats, err := client.SessionStats(ctx)
		if err == nil {
			cell.Set(stats)
		}
		if onUpdate != nil {
			onUpdate(err)
		}
	}

	fetch()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetch()
		}
	}
}
