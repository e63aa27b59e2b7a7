package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestLogWritesMemoryFileAndEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scene.txt")
	var echo bytes.Buffer
	l := New(path, &echo)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	l.Log("W key pressed: Zoom in")
	l.Logf("Left key pressed: Sphere moved to (%.1f, %.1f)", -2.1, -2.0)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if lines[0] != "[2024-03-01 12:30:00] W key pressed: Zoom in" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if echo.String() != "W key pressed: Zoom in\nLeft key pressed: Sphere moved to (-2.1, -2.0)\n" {
		t.Fatalf("unexpected echo %q", echo.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Count(string(data), "\n") != 2 || !strings.Contains(string(data), "Sphere moved to (-2.1, -2.0)") {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestLinesIsBoundedCopy(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "scene.txt"), nil)
	for i := 0; i < maxLines+20; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("kept %d lines, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[len(lines)-1], "line 519") {
		t.Fatalf("last line = %q", lines[len(lines)-1])
	}
	lines[0] = "mutated"
	if l.Lines()[0] == "mutated" {
		t.Fatalf("Lines must return a copy")
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	if got := New("", nil).Path(); got != DefaultLogPath {
		t.Fatalf("path = %q", got)
	}
}

func TestTailClipsOnRuneBoundary(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "scene.txt"), nil)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }
	l.Log("first")
	l.Log("short")
	l.Log(strings.Repeat("日本", 40))

	tail := l.Tail(2, 30)
	if len(tail) != 2 || tail[0] != "[2024-03-01 12:30:00] short" {
		t.Fatalf("tail = %q", tail)
	}
	got := tail[1]
	if !utf8.ValidString(got) {
		t.Fatalf("clipped line is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 30 {
		t.Fatalf("clipped line has %d runes, want 30", n)
	}
	if got != "[2024-03-01 12:30:00] 日本日本日..." {
		t.Fatalf("clipped line = %q", got)
	}

	if got := l.Tail(10, 30); len(got) != 3 {
		t.Fatalf("Tail(10) returned %d lines, want 3", len(got))
	}
}

func TestClip(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"日本語のテキストです", 6, "日本語..."},
		{"héllo wörld", 8, "héllo..."},
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"tiny", 3, "tiny"},
	}
	for _, c := range cases {
		if got := clip(c.in, c.max); got != c.want {
			t.Errorf("clip(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}
