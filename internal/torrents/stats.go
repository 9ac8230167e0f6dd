package torrents

import (
	"sync"

	"github.com/mfranczak/shoal/internal/transmission"
)

// StatsCell holds the latest session statistics snapshot. Written by the
// stats poll loop, read by the renderer.
type StatsCell struct {
	mu    sync.Mutex
	stats *transmission.SessionStats
}

// Set stores a fresh snapshot.
func (s *StatsCell) Set(stats transmission.SessionStats) {
	s.mu.Lock()
	s.stats = &stats
	s.mu.Unlock()
}

// Get returns the latest snapshot, or false before the first poll
// completes.
func (s *StatsCell) Get() (transmission.SessionStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return transmission.SessionStats{}, false
	}
	return *s.stats, true
}
