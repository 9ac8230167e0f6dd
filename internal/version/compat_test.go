package version

import (
	"strings"
	"testing"
)

func TestCheckDaemon(t *testing.T) {
	if w := CheckDaemon("4.0.5", 17, 14); w != nil {
		t.Errorf("modern daemon warned: %v", w)
	}

	w := CheckDaemon("2.22", 12, 1)
	if w == nil {
		t.Fatal("ancient daemon produced no warning")
	}
	if !strings.Contains(w.Message, "revision 12") {
		t.Errorf("warning does not name the daemon revision: %s", w.Message)
	}
	if !strings.Contains(w.String(), w.Suggestion) {
		t.Error("String() drops the suggestion")
	}

	// Zero means the daemon did not report a revision at all; with an
	// unparseable version string there is nothing to go on, so stay quiet.
	if w := CheckDaemon("unknown", 0, 0); w != nil {
		t.Errorf("missing revision warned: %v", w)
	}
}

func TestCheckDaemon_FallsBackToReleaseVersion(t *testing.T) {
	// No RPC revision reported, but the release version parses and
	// predates the first release with the revision shoal needs.
	w := CheckDaemon("2.33 (12345)", 0, 0)
	if w == nil {
		t.Fatal("pre-2.40 daemon produced no warning")
	}
	if !strings.Contains(w.Message, "2.40.0") {
		t.Errorf("warning does not name the required release: %s", w.Message)
	}

	// A parseable modern version stays quiet.
	if w := CheckDaemon("4.0.5 (abc123)", 0, 0); w != nil {
		t.Errorf("modern daemon warned without a revision: %v", w)
	}

	// A reported, acceptable revision wins over the version string.
	if w := CheckDaemon("2.33", 14, 1); w != nil {
		t.Errorf("acceptable revision warned: %v", w)
	}
}
