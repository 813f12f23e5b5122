package calculator

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	calc "github.com/kingrea/parallel/internal/calculator"
	"github.com/kingrea/parallel/internal/logbook"
	"github.com/kingrea/parallel/internal/modes"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestMode(t *testing.T) (*Mode, *logbook.Logbook) {
	t.Helper()
	book, err := logbook.New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	m := New()
	m.Init(&modes.ModeContext{Logbook: book})
	return m, book
}

func typeKeys(m *Mode, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func TestKeysDriveEngine(t *testing.T) {
	m, book := newTestMode(t)
	typeKeys(m, runeKey("1"), runeKey("2"), runeKey("x"), runeKey("3"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.State().Display; got != "36" {
		t.Fatalf("display = %q, want 36", got)
	}
	history := m.History()
	if len(history) != 1 || history[0] != "12 × 3 = 36" {
		t.Fatalf("history = %v", history)
	}
	lines, _ := book.Tail(5)
	if len(lines) != 1 || !strings.Contains(lines[0], "12 × 3 = 36") {
		t.Fatalf("journey log = %v", lines)
	}
}

func TestDivideByZeroIsJournaledAsWarning(t *testing.T) {
	m, book := newTestMode(t)
	typeKeys(m, runeKey("4"), runeKey("/"), runeKey("0"), runeKey("="))
	if !m.State().IsError() {
		t.Fatalf("expected error display, got %q", m.State().Display)
	}
	entries := book.Recent(5)
	if len(entries) != 1 || entries[0].Level != logbook.LevelWarn {
		t.Fatalf("expected one warning, got %+v", entries)
	}
	if !strings.Contains(entries[0].Message, "4 ÷ 0") {
		t.Fatalf("warning should name the failed formula: %q", entries[0].Message)
	}
	if len(m.History()) != 0 {
		t.Fatalf("failed formulas must not enter history")
	}
	if !strings.Contains(m.View(), calc.ErrorMarker) {
		t.Fatalf("view should show the error marker")
	}
}

func TestRepeatedEqualsRecordsOnce(t *testing.T) {
	m, _ := newTestMode(t)
	typeKeys(m, runeKey("2"), runeKey("+"), runeKey("2"), runeKey("="), runeKey("="), runeKey("="))
	if got := len(m.History()); got != 1 {
		t.Fatalf("history length = %d, want 1", got)
	}
}

func TestHistoryIsCapped(t *testing.T) {
	m, _ := newTestMode(t)
	m.limit = 2
	for _, d := range []string{"1", "2", "3"} {
		typeKeys(m, runeKey(d), runeKey("+"), runeKey("1"), runeKey("="))
	}
	history := m.History()
	if len(history) != 2 || history[0] != "2 + 1 = 3" || history[1] != "3 + 1 = 4" {
		t.Fatalf("history = %v", history)
	}
}

func TestSignPercentAndClearKeys(t *testing.T) {
	m, _ := newTestMode(t)
	typeKeys(m, runeKey("9"), runeKey("%"))
	if got := m.State().Display; got != "0.09" {
		t.Fatalf("display = %q, want 0.09", got)
	}
	typeKeys(m, runeKey("n"))
	if got := m.State().Display; got != "-0.09" {
		t.Fatalf("display = %q, want -0.09", got)
	}
	typeKeys(m, runeKey("c"))
	if got := m.State().Display; got != "0" {
		t.Fatalf("display = %q, want 0", got)
	}
}

func TestEscCompletesMode(t *testing.T) {
	m, _ := newTestMode(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected completion command")
	}
	msg, ok := cmd().(modes.ModeCompleteMsg)
	if !ok || msg.Screen != m.Screen() {
		t.Fatalf("unexpected completion message: %#v", msg)
	}
	if !m.IsComplete() {
		t.Fatalf("mode should be complete after esc")
	}
}
