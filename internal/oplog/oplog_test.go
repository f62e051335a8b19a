package oplog

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

var linePattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z)\] (.*)$`)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffolder.log")
	l := NewFile(path, nil)

	before := time.Now().Add(-time.Second)
	l.Log("Created folder: app/lib")

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %v", len(lines), lines)
	}
	m := linePattern.FindStringSubmatch(lines[0])
	if m == nil {
		t.Fatalf("line %q does not match [timestamp] message", lines[0])
	}
	if m[2] != "Created folder: app/lib" {
		t.Errorf("message = %q", m[2])
	}
	ts, err := time.Parse(TimeFormat, m[1])
	if err != nil {
		t.Fatalf("parsing timestamp: %v", err)
	}
	if ts.Before(before) {
		t.Errorf("timestamp %s is earlier than %s", ts, before)
	}
}

func TestLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffolder.log")
	if err := os.WriteFile(path, []byte("[2020-01-01T00:00:00.000Z] earlier run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	NewFile(path, nil).Log("first")
	NewFile(path, nil).Log("second")

	lines := readLines(t, path)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	for i, want := range []string{"earlier run", "first", "second"} {
		if !strings.HasSuffix(lines[i], "] "+want) {
			t.Errorf("line[%d] = %q, want message %q", i, lines[i], want)
		}
	}
}

func TestLogRecreatesDeletedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffolder.log")
	l := NewFile(path, nil)
	l.Log("one")
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	l.Log("two")

	lines := readLines(t, path)
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "] two") {
		t.Errorf("lines = %v, want only the second entry", lines)
	}
}

func TestLogFailureIsSwallowed(t *testing.T) {
	var diag bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "dir", "scaffolder.log")
	l := NewFile(path, &diag)

	l.Log("Created folder: docs")
	l.Log("Created folder: tests")

	if got := strings.Count(diag.String(), "Logging error:"); got != 2 {
		t.Errorf("diagnostic lines = %d, want 2\n%s", got, diag.String())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file should not exist, stat err = %v", err)
	}
}

func TestNop(t *testing.T) {
	Nop{}.Log("ignored")
}
