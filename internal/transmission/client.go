package transmission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const sessionHeader = "X-Transmission-Session-Id"

// Client is the surface the rest of the application sees: fetch the full
// entity list, fetch per-torrent details, and issue commands. The wire
// protocol stays behind this interface.
type Client interface {
	Session(ctx context.Context) (SessionInfo, error)
	Torrents(ctx context.Context) ([]Torrent, error)
	Files(ctx context.Context, id int64) ([]File, error)
	SessionStats(ctx context.Context) (SessionStats, error)
	Add(ctx context.Context, req AddRequest) error
	Start(ctx context.Context, ids []int64) error
	Stop(ctx context.Context, ids []int64) error
	Remove(ctx context.Context, ids []int64, deleteData bool) error
}

// RPCError is a structured failure returned by the daemon: the request
// was delivered but rejected.
type RPCError struct {
	Result string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("daemon rejected request: %s", e.Result)
}

// HTTPClient talks to a Transmission daemon over its JSON-RPC endpoint.
// It is safe for concurrent use; only the CSRF session id is shared state.
type HTTPClient struct {
	url      string
	username string
	password string
	http     *http.Client

	mu        sync.Mutex
	sessionID string
}

// NewHTTPClient creates a client for the given RPC URL. Credentials may
// be empty when the daemon has authentication disabled.
func NewHTTPClient(url, username, password string) *HTTPClient {
	return &HTTPClient{
		url:      url,
		username: username,
		password: password,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type rpcRequest struct {
	Method    string `json:"method"`
	Arguments any    `json:"arguments,omitempty"`
}

type rpcResponse struct {
	Result    string          `json:"result"`
	Arguments json.RawMessage `json:"arguments"`
}

// call performs one RPC round trip, replaying the request once when the
// daemon demands a fresh CSRF session id with a 409.
func (c *HTTPClient) call(ctx context.Context, method string, args any, out any) error {
	body, err := json.Marshal(rpcRequest{Method: method, Arguments: args})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	resp, err := c.post(ctx, body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusConflict {
		c.setSessionID(resp.Header.Get(sessionHeader))
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		resp, err = c.post(ctx, body)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %s", method, resp.Status)
	}

	var rpc rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpc); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpc.Result != "success" {
		return &RPCError{Result: rpc.Result}
	}
	if out != nil && len(rpc.Arguments) > 0 {
		if err := json.Unmarshal(rpc.Arguments, out); err != nil {
			return fmt.Errorf("decode %s arguments: %w", method, err)
		}
	}
	return nil
}

func (c *HTTPClient) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if id := c.getSessionID(); id != "" {
		req.Header.Set(sessionHeader, id)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	return c.http.Do(req)
}

func (c *HTTPClient) setSessionID(id string) {
	c.mu.Lock()
	c.sessionID = id
	c.mu.Unlock()
}

func (c *HTTPClient) getSessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Torrents fetches the full torrent list.
func (c *HTTPClient) Torrents(ctx context.Context) ([]Torrent, error) {
	var out struct {
		Torrents []Torrent `json:"torrents"`
	}
	args := map[string]any{"fields": torrentFields}
	if err := c.call(ctx, "torrent-get", args, &out); err != nil {
		return nil, err
	}
	return out.Torrents, nil
}

// Files fetches the file listing of a single torrent.
func (c *HTTPClient) Files(ctx context.Context, id int64) ([]File, error) {
	var out struct {
		Torrents []struct {
			Files []File `json:"files"`
		} `json:"torrents"`
	}
	args := map[string]any{
		"ids":    []int64{id},
		"fields": []string{"files"},
	}
	if err := c.call(ctx, "torrent-get", args, &out); err != nil {
		return nil, err
	}
	if len(out.Torrents) == 0 {
		return nil, fmt.Errorf("torrent %d not found", id)
	}
	return out.Torrents[0].Files, nil
}

// Session fetches the daemon identification and defaults.
func (c *HTTPClient) Session(ctx context.Context) (SessionInfo, error) {
	var out SessionInfo
	args := map[string]any{
		"fields": []string{"version", "rpc-version", "rpc-version-minimum", "download-dir"},
	}
	err := c.call(ctx, "session-get", args, &out)
	return out, err
}

// SessionStats fetches the daemon-wide transfer summary.
func (c *HTTPClient) SessionStats(ctx context.Context) (SessionStats, error) {
	var out SessionStats
	err := c.call(ctx, "session-stats", nil, &out)
	return out, err
}

// Add submits a magnet link, remote file or base64 metainfo.
func (c *HTTPClient) Add(ctx context.Context, req AddRequest) error {
	args := map[string]any{}
	if req.URI != "" {
		args["filename"] = req.URI
	}
	if req.Metainfo != "" {
		args["metainfo"] = req.Metainfo
	}
	if req.DownloadDir != "" {
		args["download-dir"] = req.DownloadDir
	}
	return c.call(ctx, "torrent-add", args, nil)
}

// Start resumes the given torrents.
func (c *HTTPClient) Start(ctx context.Context, ids []int64) error {
	return c.call(ctx, "torrent-start", map[string]any{"ids": ids}, nil)
}

// Stop pauses the given torrents.
func (c *HTTPClient) Stop(ctx context.Context, ids []int64) error {
	return c.call(ctx, "torrent-stop", map[string]any{"ids": ids}, nil)
}

// Remove deletes the given torrents, optionally including their data.
func (c *HTTPClient) Remove(ctx context.Context, ids []int64, deleteData bool) error {
	args := map[string]any{
		"ids":               ids,
		"delete-local-data": deleteData,
	}
	return c.call(ctx, "torrent-remove", args, nil)
}
