package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultLogPath is the scene log file, relative to the working directory.
const DefaultLogPath = "logs/scene.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Logger stores recent lines in memory for the console overlay, appends every line to a
// file on disk and optionally echoes it to a writer (stdout in the app).
type Logger struct {
	mu    sync.Mutex
	path  string
	echo  io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (DefaultLogPath when empty) and ensures its
// directory exists. echo may be nil.
func New(path string, echo io.Writer) *Logger {
	if path == "" {
		path = DefaultLogPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, echo: echo, lines: make([]string, 0), now: time.Now}
}

// Log appends a line prefixed with [timestamp] to memory and the log file, and echoes the
// bare line.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	echo := l.echo
	l.mu.Unlock()

	if echo != nil {
		_, _ = fmt.Fprintln(echo, line)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and logs a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns up to the last n lines, oldest first, each cut to at most maxRunes runes.
// Cut lines end in "..." and are never split inside a multi-byte character.
func (l *Logger) Tail(n, maxRunes int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := 0
	if len(l.lines) > n {
		start = len(l.lines) - n
	}
	out := make([]string, 0, len(l.lines)-start)
	for _, line := range l.lines[start:] {
		out = append(out, clip(line, maxRunes))
	}
	return out
}

// clip shortens s to maxRunes runes, the last three replaced by "...".
func clip(s string, maxRunes int) string {
	if maxRunes < 4 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	keep := maxRunes - 3
	for i := range s {
		if keep == 0 {
			return s[:i] + "..."
		}
		keep--
	}
	return s
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}
