package board

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
	"github.com/andyrewlee/dragscroll/internal/messages"
)

func cards(prefix string, n int) []Card {
	out := make([]Card, n)
	for i := range out {
		id := fmt.Sprintf("%s%d", prefix, i)
		out[i] = Card{ID: id, Title: "Task " + id}
	}
	return out
}

// newTestBoard is 40x12 without hints: a 10 line card area, three 24 cell
// columns (76 cells of content) and a tall first column.
func newTestBoard() *Model {
	m := New(autoscroll.DefaultConfig())
	m.SetShowKeymapHints(false)
	m.SetSize(40, 12)
	m.SetColumns([]BoardColumn{
		{Name: "Todo", Cards: cards("a", 12)},
		{Name: "Doing", Cards: cards("b", 2)},
		{Name: "Done", Cards: cards("c", 3)},
	})
	m.Focus()
	return m
}

func press(m *Model, code rune) (*Model, tea.Cmd) {
	return m.Update(tea.KeyPressMsg{Code: code})
}

func TestBoardNavigation(t *testing.T) {
	m := newTestBoard()

	m, _ = press(m, 'j')
	if m.Selection.Row != 1 {
		t.Fatalf("expected row 1, got %d", m.Selection.Row)
	}

	m, _ = press(m, 'l')
	if m.Selection.Column != 1 {
		t.Fatalf("expected column 1, got %d", m.Selection.Column)
	}
	if m.Selection.Row != 1 {
		t.Fatalf("expected row 1 kept in a 2 card column, got %d", m.Selection.Row)
	}

	m, _ = press(m, 'l')
	m, _ = press(m, 'l')
	if m.Selection.Column != 2 {
		t.Fatalf("expected column clamped to 2, got %d", m.Selection.Column)
	}
}

func TestNavigationRevealsSelectionInColumn(t *testing.T) {
	m := newTestBoard()
	for i := 0; i < 6; i++ {
		m, _ = press(m, 'j')
	}
	if m.Selection.Row != 6 {
		t.Fatalf("expected row 6, got %d", m.Selection.Row)
	}
	if got := m.ColumnOffset(0); got != 4 {
		t.Fatalf("column offset = %d, want 4", got)
	}
	if m.ScrollX() != 0 {
		t.Fatalf("window should not scroll vertically, scrollX = %d", m.ScrollX())
	}
}

func TestNavigationRevealsSelectionInWindow(t *testing.T) {
	m := newTestBoard()
	m, _ = press(m, 'l')
	if got := m.ScrollX(); got != 10 {
		t.Fatalf("scrollX after first column move = %d, want 10", got)
	}
	m, _ = press(m, 'l')
	if got := m.ScrollX(); got != 36 {
		t.Fatalf("scrollX after second column move = %d, want 36", got)
	}
}

func TestNavigationIgnoredWhenBlurred(t *testing.T) {
	m := newTestBoard()
	m.Blur()
	m, _ = press(m, 'j')
	if m.Selection.Row != 0 {
		t.Fatalf("blurred board moved selection to %d", m.Selection.Row)
	}
}

func TestCopyEmitsCopyCard(t *testing.T) {
	m := newTestBoard()
	_, cmd := press(m, 'y')
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg, ok := cmd().(messages.CopyCard)
	if !ok {
		t.Fatalf("expected CopyCard, got %T", cmd())
	}
	if msg.CardID != "a0" || msg.Text != "a0 Task a0" {
		t.Fatalf("unexpected copy %+v", msg)
	}
}

func TestHintsKeyTogglesHints(t *testing.T) {
	m := newTestBoard()
	_, cmd := press(m, '?')
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	if _, ok := cmd().(messages.ToggleKeymapHints); !ok {
		t.Fatalf("expected ToggleKeymapHints, got %T", cmd())
	}
}

func TestSetColumnsClampsSelectionAndScroll(t *testing.T) {
	m := newTestBoard()
	for i := 0; i < 11; i++ {
		m, _ = press(m, 'j')
	}
	m.SetColumns([]BoardColumn{{Name: "Only", Cards: cards("z", 2)}})
	if m.Selection.Row != 1 || m.Selection.Column != 0 {
		t.Fatalf("selection = %+v", m.Selection)
	}
	if m.ColumnOffset(0) != 0 {
		t.Fatalf("offset = %d, want 0", m.ColumnOffset(0))
	}
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		id     string
		want   int
		wantOK bool
	}{
		{"column-0", 0, true},
		{"column-12", 12, true},
		{"column-", 0, false},
		{"column-1x", 0, false},
		{"card-1", 0, false},
		{"column-+1", 0, false},
		{"column--1", 0, false},
		{"column-99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, ok := columnIndex(tt.id)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("columnIndex(%q) = %d,%v want %d,%v", tt.id, got, ok, tt.want, tt.wantOK)
		}
	}
}
