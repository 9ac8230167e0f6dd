package transmission

// Status is the torrent state reported by the daemon.
type Status int

const (
	StatusStopped Status = iota
	StatusCheckWait
	StatusChecking
	StatusDownloadWait
	StatusDownloading
	StatusSeedWait
	StatusSeeding
)

func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "Paused"
	case StatusCheckWait:
		return "Queued to verify"
	case StatusChecking:
		return "Verifying"
	case StatusDownloadWait:
		return "Queued"
	case StatusDownloading:
		return "Downloading"
	case StatusSeedWait:
		return "Queued to seed"
	case StatusSeeding:
		return "Seeding"
	}
	return "Unknown"
}

// Torrent is one entity row as fetched from the daemon.
type Torrent struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Status       Status  `json:"status"`
	PercentDone  float64 `json:"percentDone"`
	SizeWhenDone int64   `json:"sizeWhenDone"`
	RateDownload int64   `json:"rateDownload"`
	RateUpload   int64   `json:"rateUpload"`
	ETA          int64   `json:"eta"`
	UploadRatio  float64 `json:"uploadRatio"`
	MagnetLink   string  `json:"magnetLink"`
	DownloadDir  string  `json:"downloadDir"`
}

// torrentFields is the field list requested from torrent-get. It must
// stay in sync with the Torrent struct tags.
var torrentFields = []string{
	"id", "name", "status", "percentDone", "sizeWhenDone",
	"rateDownload", "rateUpload", "eta", "uploadRatio",
	"magnetLink", "downloadDir",
}

// File is one file inside a torrent.
type File struct {
	Name           string `json:"name"`
	Length         int64  `json:"length"`
	BytesCompleted int64  `json:"bytesCompleted"`
}

// SessionInfo identifies the daemon and its defaults, from session-get.
type SessionInfo struct {
	Version       string `json:"version"`
	RPCVersion    int64  `json:"rpc-version"`
	RPCVersionMin int64  `json:"rpc-version-minimum"`
	DownloadDir   string `json:"download-dir"`
}

// SessionStats is the daemon-wide transfer summary.
type SessionStats struct {
	DownloadSpeed int64 `json:"downloadSpeed"`
	UploadSpeed   int64 `json:"uploadSpeed"`
	TorrentCount  int64 `json:"torrentCount"`
	ActiveCount   int64 `json:"activeTorrentCount"`
	PausedCount   int64 `json:"pausedTorrentCount"`
	Cumulative    struct {
		DownloadedBytes int64 `json:"downloadedBytes"`
		UploadedBytes   int64 `json:"uploadedBytes"`
	} `json:"cumulative-stats"`
}

// AddRequest describes one torrent-add call. Exactly one of URI and
// Metainfo should be set: URI for magnet links or remote files, Metainfo
// for base64-encoded .torrent contents.
type AddRequest struct {
	URI         string
	Metainfo    string
	DownloadDir string
}
