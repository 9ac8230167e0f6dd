package torrents

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mfranczak/shoal/internal/transmission"
)

// fakeClient records calls and returns scripted results.
type fakeClient struct {
	mu      sync.Mutex
	started [][]int64
	stopped [][]int64
	removed [][]int64
	added   []transmission.AddRequest
	files   []transmission.File
	err     error
}

func (f *fakeClient) Session(ctx context.Context) (transmission.SessionInfo, error) {
	return transmission.SessionInfo{}, f.err
}

func (f *fakeClient) Torrents(ctx context.Context) ([]transmission.Torrent, error) {
	return nil, f.err
}

func (f *fakeClient) Files(ctx context.Context, id int64) ([]transmission.File, error) {
	return f.files, f.err
}

func (f *fakeClient) SessionStats(ctx context.Context) (transmission.SessionStats, error) {
	return transmission.SessionStats{}, f.err
}

func (f *fakeClient) Add(ctx context.Context, req transmission.AddRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, req)
	return f.err
}

func (f *fakeClient) Start(ctx context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, ids)
	return f.err
}

func (f *fakeClient) Stop(ctx context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, ids)
	return f.err
}

func (f *fakeClient) Remove(ctx context.Context, ids []int64, deleteData bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, ids)
	return f.err
}

func waitResult(t *testing.T, m *Manager) Result {
	t.Helper()
	select {
	case res := <-m.Results():
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for command result")
		return Result{}
	}
}

func TestManager_RemoveAppliesOptimistically(t *testing.T) {
	client := &fakeClient{}
	table := NewTable()
	table.Replace(someTorrents("a", "b", "c"))
	m := NewManager(client, table)

	m.Issue(context.Background(), Command{Kind: CmdRemove, IDs: []int64{2}})
	res := waitResult(t, m)

	if res.Err != nil {
		t.Fatalf("result error: %v", res.Err)
	}
	if got := table.Len(); got != 2 {
		t.Fatalf("table len = %d, want 2 after optimistic removal", got)
	}
	if m.PendingCount() != 0 {
		t.Fatalf("pending = %d, want 0 after completion", m.PendingCount())
	}
}

func TestManager_FailureSurfacesOnce(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	table := NewTable()
	table.Replace(someTorrents("a"))
	m := NewManager(client, table)

	m.Issue(context.Background(), Command{Kind: CmdRemove, IDs: []int64{1}})
	res := waitResult(t, m)

	if res.Err == nil {
		t.Fatal("expected error result")
	}
	// Failure must not mutate the table.
	if got := table.Len(); got != 1 {
		t.Fatalf("table len = %d, want 1", got)
	}
	if m.PendingCount() != 0 {
		t.Fatalf("pending = %d, want 0 after failure", m.PendingCount())
	}
}

func TestManager_TogglePause(t *testing.T) {
	client := &fakeClient{}
	m := NewManager(client, NewTable())

	m.TogglePause(context.Background(), transmission.Torrent{ID: 5, Status: transmission.StatusStopped})
	waitResult(t, m)
	m.TogglePause(context.Background(), transmission.Torrent{ID: 6, Status: transmission.StatusSeeding})
	waitResult(t, m)

	client.mu.Lock()
	defer client.mu.Unlock()
	if len(client.started) != 1 || client.started[0][0] != 5 {
		t.Fatalf("started = %v, want [[5]]", client.started)
	}
	if len(client.stopped) != 1 || client.stopped[0][0] != 6 {
		t.Fatalf("stopped = %v, want [[6]]", client.stopped)
	}
}

func TestManager_FetchFiles(t *testing.T) {
	client := &fakeClient{files: []transmission.File{{Name: "a.mkv", Length: 10}}}
	m := NewManager(client, NewTable())

	m.Issue(context.Background(), Command{Kind: CmdFetchFiles, IDs: []int64{1}})
	res := waitResult(t, m)

	if res.Err != nil {
		t.Fatalf("result error: %v", res.Err)
	}
	if len(res.Files) != 1 || res.Files[0].Name != "a.mkv" {
		t.Fatalf("files = %+v", res.Files)
	}
}

func TestManager_PendingTracksAddsWithoutIDs(t *testing.T) {
	client := &fakeClient{}
	m := NewManager(client, NewTable())

	m.Issue(context.Background(), Command{Kind: CmdAdd, Add: transmission.AddRequest{URI: "magnet:?xt=x"}})
	m.Issue(context.Background(), Command{Kind: CmdAdd, Add: transmission.AddRequest{URI: "magnet:?xt=y"}})
	waitResult(t, m)
	waitResult(t, m)

	if m.PendingCount() != 0 {
		t.Fatalf("pending = %d, want 0", m.PendingCount())
	}
	client.mu.Lock()
	defer client.mu.Unlock()
	if len(client.added) != 2 {
		t.Fatalf("added = %d, want 2", len(client.added))
	}
}

func TestPollTorrents_ReplacesOnSuccess(t *testing.T) {
	client := &pollClient{items: someTorrents("a", "b")}
	table := NewTable()

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan error, 1)
	go PollTorrents(ctx, client, table, time.Hour, func(err error) {
		select {
		case updates <- err:
		default:
		}
	})

	select {
	case err := <-updates:
		if err != nil {
			t.Fatalf("poll error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poll never ran")
	}
	cancel()

	if got := table.Len(); got != 2 {
		t.Fatalf("table len = %d, want 2", got)
	}
}

// pollClient is a minimal client for the poll loop test.
type pollClient struct {
	fakeClient
	items []transmission.Torrent
}

func (p *pollClient) Torrents(ctx context.Context) ([]transmission.Torrent, error) {
	return p.items, nil
}
