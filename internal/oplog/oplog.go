package oplog

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// TimeFormat is ISO-8601 in UTC with millisecond precision.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// FileLogger appends operation entries to a plain-text file.
type FileLogger struct {
	path string
	log  *logrus.Logger
}

// NewFile returns a logger appending to path. Failures to append are
// reported to diag (os.Stderr when nil).
func NewFile(path string, diag io.Writer) *FileLogger {
	if diag == nil {
		diag = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(&appendWriter{path: path, diag: diag})
	l.SetFormatter(lineFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return &FileLogger{path: path, log: l}
}

// Path returns the log file path.
func (l *FileLogger) Path() string { return l.path }

// Log appends one entry.
func (l *FileLogger) Log(message string) {
	l.log.Info(message)
}

// Nop discards every entry.
type Nop struct{}

// Log does nothing.
func (Nop) Log(string) {}

type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte("[" + e.Time.UTC().Format(TimeFormat) + "] " + e.Message + "\n"), nil
}

// appendWriter opens the file for every write so nothing is held open
// between entries and a deleted log is simply recreated.
type appendWriter struct {
	path string
	diag io.Writer
}

func (w *appendWriter) Write(p []byte) (int, error) {
	if err := appendFile(w.path, p); err != nil {
		fmt.Fprintf(w.diag, "Logging error: %v\n", err)
	}
	return len(p), nil
}

func appendFile(path string, p []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
