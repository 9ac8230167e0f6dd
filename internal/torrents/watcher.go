package torrents

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/mfranczak/shoal/internal/transmission"
)

// WatchDir watches a directory and auto-adds any .torrent file created in
// it, mirroring the daemon's own watch-directory behavior for setups
// where the daemon runs remotely. Runs until the context is cancelled.
func WatchDir(ctx context.Context, dir string, mgr *Manager, onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".torrent") {
				continue
			}
			if err := addTorrentFile(ctx, event.Name, mgr); err != nil && onError != nil {
				onError(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

func addTorrentFile(ctx context.Context, path string, mgr *Manager) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	mgr.Issue(ctx, Command{
		Kind: CmdAdd,
		Add:  transmission.AddRequest{Metainfo: base64.StdEncoding.EncodeToString(data)},
	})
	return nil
}
