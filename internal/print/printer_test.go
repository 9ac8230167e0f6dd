package print

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureOutput(func() {
		Success("added %d torrents", 2)
	})

	if !strings.Contains(output, "✓") {
		t.Error("Success() output should contain checkmark")
	}
	if !strings.Contains(output, "added 2 torrents") {
		t.Error("Success() output should contain the formatted message")
	}
}

func TestError(t *testing.T) {
	output := captureOutput(func() {
		Error("daemon returned %d", 409)
	})

	if !strings.Contains(output, "✖") {
		t.Error("Error() output should contain cross mark")
	}
	if !strings.Contains(output, "409") {
		t.Error("Error() output should contain the formatted message")
	}
}

func TestWarning(t *testing.T) {
	output := captureOutput(func() {
		Warning("daemon is old")
	})

	if !strings.Contains(output, "⚠") {
		t.Error("Warning() output should contain warning sign")
	}
}

func TestInfo(t *testing.T) {
	output := captureOutput(func() {
		Info("rpc revision %d", 17)
	})

	if !strings.Contains(output, "ℹ") || !strings.Contains(output, "17") {
		t.Errorf("Info() output = %q", output)
	}
}

func TestSection(t *testing.T) {
	output := captureOutput(func() {
		Section("Daemon")
	})

	if !strings.Contains(output, "Daemon") {
		t.Error("Section() output should contain the title")
	}
	if !strings.HasPrefix(output, "\n") {
		t.Error("Section() should start with a blank line")
	}
}
