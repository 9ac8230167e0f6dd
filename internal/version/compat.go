package version

import "fmt"

// MinRPCVersion is the oldest Transmission RPC protocol revision shoal
// understands. Revision 14 shipped with Transmission 2.40 and introduced
// the torrent-start/torrent-stop semantics the task layer relies on.
const MinRPCVersion = 14

// MinDaemonVersion is the Transmission release that shipped MinRPCVersion.
var MinDaemonVersion = SemVer{Major: 2, Minor: 40}

// CompatWarning is a non-fatal compatibility finding: shoal keeps
// running but tells the user what may not work.
type CompatWarning struct {
	Message    string
	Suggestion string
}

func (w CompatWarning) String() string {
	if w.Suggestion != "" {
		return fmt.Sprintf("%s\n  %s", w.Message, w.Suggestion)
	}
	return w.Message
}

// CheckDaemon inspects the version numbers reported by session-get.
// A daemon that only speaks an RPC revision older than MinRPCVersion
// gets a warning; so does a daemon whose minimum supported revision is
// newer than anything shoal knows, which means the daemon is from the
// future relative to this build. When the daemon does not report an RPC
// revision at all, its release version is parsed and compared against
// MinDaemonVersion instead.
func CheckDaemon(daemonVersion string, rpcVersion, rpcVersionMin int64) *CompatWarning {
	if rpcVersion > 0 && rpcVersion < MinRPCVersion {
		return &CompatWarning{
			Message: fmt.Sprintf(
				"Transmission %s speaks RPC revision %d, but shoal needs %d or newer.",
				daemonVersion, rpcVersion, MinRPCVersion,
			),
			Suggestion: "Upgrade the daemon; pause/resume and remove may misbehave.",
		}
	}
	if rpcVersionMin > MinRPCVersion {
		return &CompatWarning{
			Message: fmt.Sprintf(
				"Transmission %s requires at least RPC revision %d; this build of shoal was written against %d.",
				daemonVersion, rpcVersionMin, MinRPCVersion,
			),
			Suggestion: "Things should still work, but consider upgrading shoal.",
		}
	}
	if rpcVersion == 0 {
		if v, err := ParseSemVer(daemonVersion); err == nil && v.IsOlderThan(MinDaemonVersion) {
			return &CompatWarning{
				Message: fmt.Sprintf(
					"Transmission %s predates %s, the first release that speaks RPC revision %d.",
					daemonVersion, MinDaemonVersion, MinRPCVersion,
				),
				Suggestion: "Upgrade the daemon; pause/resume and remove may misbehave.",
			}
		}
	}
	return nil
}
