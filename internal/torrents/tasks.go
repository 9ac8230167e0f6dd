package torrents

import (
	"context"
	"fmt"
	"sync"

	"github.com/mfranczak/shoal/internal/transmission"
)

// CommandKind enumerates the user-issued commands sent to the daemon.
type CommandKind int

const (
	CmdAdd CommandKind = iota
	CmdStart
	CmdStop
	CmdRemove
	CmdFetchFiles
)

func (k CommandKind) String() string {
	switch k {
	case CmdAdd:
		return "add"
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdRemove:
		return "remove"
	case CmdFetchFiles:
		return "fetch files"
	}
	return "unknown"
}

// Command is one in-flight request against the daemon. Name is the
// display name of the target torrent, captured at issue time so a
// completion can be labeled even after the cursor moved on.
type Command struct {
	Kind       CommandKind
	IDs        []int64
	Name       string
	Add        transmission.AddRequest
	DeleteData bool
}

// Result reports a finished command back to the event loop.
type Result struct {
	Cmd   Command
	Files []transmission.File // set for CmdFetchFiles
	Err   error
}

// Manager issues commands to the daemon and reconciles their completion
// against the shared table. Each command runs in its own goroutine; the
// event loop observes completions on the Results channel. Failures are
// reported once and the pending entry is dropped; there is no retry.
type Manager struct {
	client transmission.Client
	table  *Table

	mu      sync.Mutex
	pending map[int64]CommandKind
	seq     int64 // synthetic keys for commands without a target id
	results chan Result
}

// NewManager creates a manager bound to a client and the shared table.
func NewManager(client transmission.Client, table *Table) *Manager {
	return &Manager{
		client:  client,
		table:   table,
		pending: make(map[int64]CommandKind),
		results: make(chan Result, 16),
	}
}

// Results is the completion stream consumed by the event loop.
func (m *Manager) Results() <-chan Result {
	return m.results
}

// PendingCount returns the number of commands still in flight.
func (m *Manager) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Issue sends a command to the daemon in the background. A successful
// remove is applied to the table immediately; everything else becomes
// visible through the next poll.
func (m *Manager) Issue(ctx context.Context, cmd Command) {
	keys := m.track(cmd)
	go func() {
		res := m.dispatch(ctx, cmd)
		if res.Err == nil && cmd.Kind == CmdRemove {
			m.table.RemoveIDs(cmd.IDs)
		}
		m.untrack(keys)
		m.results <- res
	}()
}

// TogglePause starts a stopped torrent and stops anything else. The
// decision reads the status snapshot from the moment of the keypress; if
// the remote state changed in between, the next poll corrects the view.
func (m *Manager) TogglePause(ctx context.Context, t transmission.Torrent) {
	kind := CmdStop
	if t.Status == transmission.StatusStopped {
		kind = CmdStart
	}
	m.Issue(ctx, Command{Kind: kind, IDs: []int64{t.ID}})
}

func (m *Manager) track(cmd Command) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := cmd.IDs
	if len(keys) == 0 {
		m.seq--
		keys = []int64{m.seq}
	}
	for _, k := range keys {
		m.pending[k] = cmd.Kind
	}
	return keys
}

func (m *Manager) untrack(keys []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.pending, k)
	}
}

func (m *Manager) dispatch(ctx context.Context, cmd Command) Result {
	res := Result{Cmd: cmd}
	switch cmd.Kind {
	case CmdAdd:
		res.Err = m.client.Add(ctx, cmd.Add)
	case CmdStart:
		res.Err = m.client.Start(ctx, cmd.IDs)
	case CmdStop:
		res.Err = m.client.Stop(ctx, cmd.IDs)
	case CmdRemove:
		res.Err = m.client.Remove(ctx, cmd.IDs, cmd.DeleteData)
	case CmdFetchFiles:
		if len(cmd.IDs) != 1 {
			res.Err = fmt.Errorf("fetch files expects one id, got %d", len(cmd.IDs))
			break
		}
		res.Files, res.Err = m.client.Files(ctx, cmd.IDs[0])
	default:
		res.Err = fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
	return res
}
