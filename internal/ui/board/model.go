package board

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
	"github.com/andyrewlee/dragscroll/internal/keymap"
	"github.com/andyrewlee/dragscroll/internal/messages"
	"github.com/andyrewlee/dragscroll/internal/ui/common"
)

// BoardSelection tracks selected column/row.
type BoardSelection struct {
	Column int
	Row    int
}

// BoardColumn represents a column of cards.
type BoardColumn struct {
	Name  string
	Cards []Card
}

// Card represents a card on the board.
type Card struct {
	ID    string
	Title string
	Note  string
}

// Model is the Bubbletea model for the board pane.
type Model struct {
	Columns   []BoardColumn
	Selection BoardSelection

	focused bool
	width   int
	height  int

	// scrollX is the window offset in cells; scrollOffsets are per-column
	// vertical offsets in lines.
	scrollX       int
	scrollOffsets []int

	styles common.Styles
	zone   *zone.Manager
	keys   keymap.KeyMap

	showKeymapHints bool

	fluid         *autoscroll.FluidScroller
	tick          autoscroll.TickState
	windowAllowed bool

	press *pressState
	drag  *dragState
}

// New creates a new board model.
func New(cfg autoscroll.Config) *Model {
	return &Model{
		Columns:         []BoardColumn{},
		styles:          common.DefaultStyles(),
		keys:            keymap.Default(),
		showKeymapHints: true,
		fluid:           autoscroll.NewFluidScroller(cfg),
		windowAllowed:   cfg.WindowScrollAllowed,
	}
}

// SetKeyMap replaces the key bindings.
func (m *Model) SetKeyMap(km keymap.KeyMap) { m.keys = km }

// SetZone sets the shared zone manager for click targets.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetShowKeymapHints controls whether helper text is rendered.
func (m *Model) SetShowKeymapHints(show bool) { m.showKeymapHints = show }

// ShowKeymapHints reports whether helper text is rendered.
func (m *Model) ShowKeymapHints() bool { return m.showKeymapHints }

// SetAutoScrollConfig applies new tuning; an active drag picks it up on the
// next tick.
func (m *Model) SetAutoScrollConfig(cfg autoscroll.Config) {
	m.fluid.SetConfig(cfg)
	m.windowAllowed = cfg.WindowScrollAllowed
}

// Init initializes the board.
func (m *Model) Init() tea.Cmd { return nil }

// Focus sets focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus and cancels any drag.
func (m *Model) Blur() {
	m.focused = false
	m.cancelDrag()
}

// Focused returns focus state.
func (m *Model) Focused() bool { return m.focused }

// SetSize sets the board size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// SetColumns replaces board columns. Any drag in progress is cancelled.
func (m *Model) SetColumns(cols []BoardColumn) {
	m.cancelDrag()
	m.Columns = cols
	m.ensureScrollOffsets()
	m.clampSelection()
	m.clampScroll()
}

// SetStyles sets the styles for the board.
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// Dragging reports whether a card is lifted.
func (m *Model) Dragging() bool { return m.drag != nil }

// ScrollX returns the window offset in cells.
func (m *Model) ScrollX() int { return m.scrollX }

// ColumnOffset returns the vertical offset of column i.
func (m *Model) ColumnOffset(i int) int {
	if i < 0 || i >= len(m.scrollOffsets) {
		return 0
	}
	return m.scrollOffsets[i]
}

// SelectedCard returns the selected card.
func (m *Model) SelectedCard() *Card {
	if m.Selection.Column < 0 || m.Selection.Column >= len(m.Columns) {
		return nil
	}
	col := m.Columns[m.Selection.Column]
	if m.Selection.Row < 0 || m.Selection.Row >= len(col.Cards) {
		return nil
	}
	return &col.Cards[m.Selection.Row]
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case autoScrollTick:
		return m, m.handleAutoScrollTick(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.drag != nil {
		return m, m.handleDragKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.Lift):
		m.liftSelected()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.Hints):
		return m, func() tea.Msg { return messages.ToggleKeymapHints{} }
	}
	return m, nil
}

func (m *Model) copySelected() tea.Cmd {
	card := m.SelectedCard()
	if card == nil {
		return nil
	}
	id, text := card.ID, card.ID+" "+card.Title
	return func() tea.Msg { return messages.CopyCard{CardID: id, Text: text} }
}

func (m *Model) moveRow(delta int) {
	if len(m.Columns) == 0 {
		return
	}
	col := m.Selection.Column
	if col < 0 || col >= len(m.Columns) {
		return
	}
	rows := len(m.Columns[col].Cards)
	if rows == 0 {
		m.Selection.Row = 0
		return
	}
	m.Selection.Row = clamp(m.Selection.Row+delta, 0, rows-1)
	m.revealSelection()
}

func (m *Model) moveColumn(delta int) {
	if len(m.Columns) == 0 {
		return
	}
	m.Selection.Column = clamp(m.Selection.Column+delta, 0, len(m.Columns)-1)
	col := m.Columns[m.Selection.Column]
	if m.Selection.Row >= len(col.Cards) {
		m.Selection.Row = max(0, len(col.Cards)-1)
	}
	m.revealSelection()
}

func (m *Model) ensureScrollOffsets() {
	if len(m.scrollOffsets) == len(m.Columns) {
		return
	}
	offsets := make([]int, len(m.Columns))
	copy(offsets, m.scrollOffsets)
	m.scrollOffsets = offsets
}

func (m *Model) clampSelection() {
	if len(m.Columns) == 0 {
		m.Selection = BoardSelection{}
		return
	}
	m.Selection.Column = clamp(m.Selection.Column, 0, len(m.Columns)-1)
	rows := len(m.Columns[m.Selection.Column].Cards)
	if rows == 0 {
		m.Selection.Row = 0
		return
	}
	m.Selection.Row = clamp(m.Selection.Row, 0, rows-1)
}

func clamp(val, minVal, maxVal int) int {
	if maxVal < minVal {
		return minVal
	}
	return max(minVal, min(val, maxVal))
}
