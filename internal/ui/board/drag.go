package board

import (
	"math"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
	"github.com/andyrewlee/dragscroll/internal/geom"
	"github.com/andyrewlee/dragscroll/internal/logging"
	"github.com/andyrewlee/dragscroll/internal/messages"
	"github.com/andyrewlee/dragscroll/internal/perf"
	"github.com/andyrewlee/dragscroll/internal/ui/common"
)

// autoScrollTick drives the fluid scroller while a card is dragged with
// the mouse.
type autoScrollTick struct {
	Gen uint64
}

// pressState is a mouse press on a card that has not moved yet.
type pressState struct {
	cardID   string
	col, row int
	x, y     int
}

// dragState is a lifted card. The board renders with the card removed from
// its origin and inserted at the destination.
type dragState struct {
	card     Card
	keyboard bool

	fromCol, fromRow int
	toCol, toIndex   int

	// pointer and grab are only used by mouse drags; grab is the pointer
	// offset inside the card at lift time.
	pointer geom.Position
	grab    geom.Position
}

// displayColumns returns the columns as drawn: during a drag the lifted
// card sits at its destination.
func (m *Model) displayColumns() []BoardColumn {
	d := m.drag
	if d == nil {
		return m.Columns
	}
	out := make([]BoardColumn, len(m.Columns))
	for i, col := range m.Columns {
		cards := make([]Card, 0, len(col.Cards)+1)
		for j, card := range col.Cards {
			if i == d.fromCol && j == d.fromRow {
				continue
			}
			cards = append(cards, card)
		}
		if i == d.toCol {
			at := clamp(d.toIndex, 0, len(cards))
			cards = append(cards, Card{})
			copy(cards[at+1:], cards[at:])
			cards[at] = d.card
		}
		out[i] = BoardColumn{Name: col.Name, Cards: cards}
	}
	return out
}

// slotCount is how many drop positions column col offers for the lifted card.
func (m *Model) slotCount(col int) int {
	n := len(m.Columns[col].Cards)
	if m.drag != nil && col == m.drag.fromCol {
		n--
	}
	return n
}

func (m *Model) liftSelected() {
	card := m.SelectedCard()
	if card == nil {
		return
	}
	m.drag = &dragState{
		card:     *card,
		keyboard: true,
		fromCol:  m.Selection.Column,
		fromRow:  m.Selection.Row,
		toCol:    m.Selection.Column,
		toIndex:  m.Selection.Row,
	}
	logging.Debug("board: lifted %s with keyboard", card.ID)
}

func (m *Model) handleDragKey(msg tea.KeyPressMsg) tea.Cmd {
	d := m.drag
	switch {
	case key.Matches(msg, m.keys.Down):
		d.toIndex = clamp(d.toIndex+1, 0, m.slotCount(d.toCol))
	case key.Matches(msg, m.keys.Up):
		d.toIndex = clamp(d.toIndex-1, 0, m.slotCount(d.toCol))
	case key.Matches(msg, m.keys.Left):
		d.toCol = clamp(d.toCol-1, 0, len(m.Columns)-1)
		d.toIndex = clamp(d.toIndex, 0, m.slotCount(d.toCol))
	case key.Matches(msg, m.keys.Right):
		d.toCol = clamp(d.toCol+1, 0, len(m.Columns)-1)
		d.toIndex = clamp(d.toIndex, 0, m.slotCount(d.toCol))
	case key.Matches(msg, m.keys.Lift), key.Matches(msg, m.keys.Drop):
		return m.drop()
	case key.Matches(msg, m.keys.Cancel):
		id := d.card.ID
		m.cancelDrag()
		return func() tea.Msg { return messages.DragCanceled{CardID: id} }
	default:
		return nil
	}
	if d.keyboard {
		m.Selection = BoardSelection{Column: d.toCol, Row: d.toIndex}
		m.clampScroll()
		m.jumpToDestination()
	}
	return nil
}

// jumpToDestination scrolls so the lifted card's slot is visible. Scroll
// containers absorb what they can before the window does.
func (m *Model) jumpToDestination() {
	d := m.drag
	if d == nil || m.width <= 0 || m.height <= 0 {
		return
	}
	rect := m.cardRect(d.toCol, d.toIndex)
	req := revealRequest(rect, m.visibleCardArea())
	if geom.IsEqual(req, geom.Origin) {
		return
	}
	state := m.dragView(rect.Center(), rect, columnID(d.toCol))
	host := &scrollHost{m: m}
	autoscroll.JumpScroll(state, req, m.windowAllowed, host)
	logging.Debug("board: jump %+v for %s", req, d.card.ID)
}

// drop commits the lifted card to its destination.
func (m *Model) drop() tea.Cmd {
	d := m.drag
	if d == nil {
		return nil
	}
	m.Columns = m.displayColumns()
	m.Selection = BoardSelection{Column: d.toCol, Row: clamp(d.toIndex, 0, len(m.Columns[d.toCol].Cards)-1)}
	m.endDrag()

	if d.toCol == d.fromCol && d.toIndex == d.fromRow {
		id := d.card.ID
		return func() tea.Msg { return messages.DragCanceled{CardID: id} }
	}
	moved := messages.CardMoved{
		CardID:     d.card.ID,
		FromColumn: d.fromCol,
		ToColumn:   d.toCol,
		Index:      m.Selection.Row,
	}
	logging.Info("board: moved %s from column %d to %d at %d", moved.CardID, moved.FromColumn, moved.ToColumn, moved.Index)
	return func() tea.Msg { return moved }
}

// cancelDrag puts the lifted card back where it came from.
func (m *Model) cancelDrag() {
	d := m.drag
	if d == nil {
		m.press = nil
		return
	}
	m.Selection = BoardSelection{Column: d.fromCol, Row: d.fromRow}
	m.endDrag()
	m.revealSelection()
}

func (m *Model) endDrag() {
	m.drag = nil
	m.press = nil
	m.fluid.Stop()
	m.tick.Reset()
	m.clampScroll()
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (*Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	if id, ok := m.toolbarHit(msg.X, msg.Y); ok {
		return m, m.toolbarAction(id)
	}
	if m.drag != nil {
		return m, nil
	}
	hit, ok := common.HitTest(m.cardRegions(), msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	col, row, found := m.findCard(hit.ID)
	if !found {
		return m, nil
	}
	m.Selection = BoardSelection{Column: col, Row: row}
	m.press = &pressState{cardID: hit.ID, col: col, row: row, x: msg.X, y: msg.Y}
	return m, nil
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (*Model, tea.Cmd) {
	if m.press == nil {
		return m, nil
	}
	pointer := geom.Position{X: float64(msg.X), Y: float64(msg.Y)}
	if m.drag == nil {
		if msg.X == m.press.x && msg.Y == m.press.y {
			return m, nil
		}
		return m, m.startMouseDrag(pointer)
	}
	if m.drag.keyboard {
		return m, nil
	}
	m.drag.pointer = pointer
	m.updateMouseDestination()
	return m, m.scheduleTick()
}

func (m *Model) handleMouseRelease(tea.MouseReleaseMsg) (*Model, tea.Cmd) {
	m.press = nil
	if m.drag == nil || m.drag.keyboard {
		return m, nil
	}
	return m, m.drop()
}

func (m *Model) startMouseDrag(pointer geom.Position) tea.Cmd {
	p := m.press
	rect := m.cardRect(p.col, p.row)
	m.drag = &dragState{
		card:    m.Columns[p.col].Cards[p.row],
		fromCol: p.col,
		fromRow: p.row,
		toCol:   p.col,
		toIndex: p.row,
		grab:    geom.Position{X: float64(p.x) - rect.Left, Y: float64(p.y) - rect.Top},
		pointer: pointer,
	}
	m.updateMouseDestination()
	if m.fluid.Start(m.mouseDragView()) {
		logging.Debug("board: lifted %s inside a scroll zone", p.cardID)
	}
	return m.scheduleTick()
}

// subject is the dragged card's box under the pointer.
func (m *Model) subject() geom.Rect {
	d := m.drag
	return geom.FromSize(d.pointer.X-d.grab.X, d.pointer.Y-d.grab.Y, cardWidth, cardHeight)
}

func (m *Model) mouseDragView() autoscroll.DragState {
	subject := m.subject()
	return m.dragView(subject.Center(), subject, columnID(m.drag.toCol))
}

// updateMouseDestination maps the dragged card's center to a column and a
// slot, accounting for the window and column offsets.
func (m *Model) updateMouseDestination() {
	d := m.drag
	if d == nil || len(m.Columns) == 0 {
		return
	}
	center := m.subject().Center()
	col := clamp(int(math.Floor((center.X+float64(m.scrollX))/columnStride)), 0, len(m.Columns)-1)
	d.toCol = col
	m.clampScroll()
	rel := center.Y - cardTop + float64(m.ColumnOffset(col))
	d.toIndex = clamp(int(math.Floor(rel/cardHeight)), 0, m.slotCount(col))
	m.Selection = BoardSelection{Column: d.toCol, Row: d.toIndex}
}

func (m *Model) scheduleTick() tea.Cmd {
	ok, gen := m.tick.NeedsTick()
	if !ok {
		return nil
	}
	return m.tickCmd(gen)
}

func (m *Model) tickCmd(gen uint64) tea.Cmd {
	interval := m.fluid.Config().TickInterval
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autoScrollTick{Gen: gen}
	})
}

func (m *Model) handleAutoScrollTick(msg autoScrollTick) tea.Cmd {
	if m.drag == nil || m.drag.keyboard || !m.tick.HandleTick(msg.Gen) {
		return nil
	}
	defer perf.Time("autoscroll_tick")()
	if !m.fluid.Scroll(m.mouseDragView(), &scrollHost{m: m}) {
		m.tick.Idle()
		return nil
	}
	m.updateMouseDestination()
	return m.tickCmd(msg.Gen)
}

func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (*Model, tea.Cmd) {
	host := &scrollHost{m: m}
	switch msg.Button {
	case tea.MouseWheelUp, tea.MouseWheelDown:
		hit, ok := common.HitTest(m.columnRegions(), msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		dy := float64(wheelStepY)
		if msg.Button == tea.MouseWheelUp {
			dy = -dy
		}
		state := m.dragView(geom.Position{X: float64(msg.X), Y: float64(msg.Y)}, geom.Rect{}, hit.ID)
		autoscroll.JumpScroll(state, geom.Position{Y: dy}, false, host)
	case tea.MouseWheelLeft, tea.MouseWheelRight:
		dx := float64(wheelStepX)
		if msg.Button == tea.MouseWheelLeft {
			dx = -dx
		}
		m.scrollWindowBy(dx)
	}
	if m.drag != nil && !m.drag.keyboard {
		m.updateMouseDestination()
	}
	return m, nil
}

func (m *Model) scrollWindowBy(dx float64) {
	state := m.dragView(geom.Origin, geom.Rect{}, "")
	autoscroll.JumpScroll(state, geom.Position{X: dx}, true, &scrollHost{m: m})
}

func (m *Model) findCard(id string) (col, row int, ok bool) {
	for c, column := range m.Columns {
		for r, card := range column.Cards {
			if card.ID == id {
				return c, r, true
			}
		}
	}
	return -1, -1, false
}
