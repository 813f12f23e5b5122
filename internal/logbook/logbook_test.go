package logbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journey.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestRecentParsesEntries(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "logs", "journey.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	fixed := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	book.now = func() time.Time { return fixed }
	book.Info("5 + 3 = 8")
	book.Warn("division by zero:\n4 ÷ 0")
	book.Error("config: parse failed")

	entries := book.Recent(10)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].Level != LevelInfo || entries[0].Message != "5 + 3 = 8" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Message != "division by zero: 4 ÷ 0" {
		t.Fatalf("multi-line message not folded: %q", entries[1].Message)
	}
	if entries[2].Level != LevelError || !entries[2].Time.Equal(fixed) {
		t.Fatalf("unexpected last entry: %+v", entries[2])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if lines, total := book.Tail(5); lines != nil || total != 0 {
		t.Fatalf("nil logbook tail = %v, %d", lines, total)
	}
	if book.Path() != "" {
		t.Fatalf("nil logbook path must be empty")
	}
}

func TestParseLineRejectsForeignLines(t *testing.T) {
	for _, line := range []string{"", "hello world", "2026-10-17T12:00:00Z DEBUG nope"} {
		if _, ok := ParseLine(line); ok {
			t.Fatalf("ParseLine(%q) should fail", line)
		}
	}
}
