package board

import (
	"math"
	"strconv"
	"strings"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
	"github.com/andyrewlee/dragscroll/internal/geom"
	"github.com/andyrewlee/dragscroll/internal/logging"
	"github.com/andyrewlee/dragscroll/internal/ui/common"
)

const (
	cardWidth    = 24
	columnGap    = 2
	columnStride = cardWidth + columnGap
	cardHeight   = 2

	toolbarRow = 0
	headerRow  = 1
	cardTop    = 2

	wheelStepY = cardHeight
	wheelStepX = columnStride / 2

	columnIDPrefix = "column-"
)

func columnID(i int) string {
	return columnIDPrefix + strconv.Itoa(i)
}

func columnIndex(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, columnIDPrefix)
	if !ok {
		return 0, false
	}
	// Atoi accepts a sign; column ids never carry one.
	if rest == "" || rest[0] < '0' || rest[0] > '9' {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return i, true
}

// cardAreaHeight is the number of lines available to cards in every column.
func (m *Model) cardAreaHeight() int {
	h := m.height - cardTop
	if m.showKeymapHints {
		h--
	}
	return max(1, h)
}

func (m *Model) helpRow() int {
	if !m.showKeymapHints {
		return -1
	}
	return cardTop + m.cardAreaHeight()
}

func contentWidth(cols int) int {
	if cols == 0 {
		return 0
	}
	return cols*columnStride - columnGap
}

func (m *Model) maxScrollX() int {
	return max(0, contentWidth(len(m.Columns))-m.width)
}

func (m *Model) maxColumnOffset(cols []BoardColumn, i int) int {
	if i < 0 || i >= len(cols) {
		return 0
	}
	return max(0, len(cols[i].Cards)*cardHeight-m.cardAreaHeight())
}

// clampScroll pulls every offset back inside its current bounds.
func (m *Model) clampScroll() {
	m.ensureScrollOffsets()
	cols := m.displayColumns()
	m.scrollX = clamp(m.scrollX, 0, m.maxScrollX())
	for i := range m.scrollOffsets {
		m.scrollOffsets[i] = clamp(m.scrollOffsets[i], 0, m.maxColumnOffset(cols, i))
	}
}

// viewport describes the board area as the window: it scrolls horizontally
// across all columns and never vertically.
func (m *Model) viewport() autoscroll.Viewport {
	return autoscroll.Viewport{
		Frame: geom.FromSize(0, 0, float64(m.width), float64(m.height)),
		Scroll: autoscroll.ScrollState{
			Current: geom.Position{X: float64(m.scrollX)},
			Max:     geom.Position{X: float64(m.maxScrollX())},
		},
	}
}

// columnFrame is the card area of column i in screen cells.
func (m *Model) columnFrame(i int) geom.Rect {
	x := i*columnStride - m.scrollX
	return geom.FromSize(float64(x), cardTop, cardWidth, float64(m.cardAreaHeight()))
}

func (m *Model) scrollables(cols []BoardColumn) []autoscroll.Scrollable {
	m.ensureScrollOffsets()
	out := make([]autoscroll.Scrollable, len(cols))
	for i := range cols {
		out[i] = autoscroll.Scrollable{
			ID:    columnID(i),
			Frame: m.columnFrame(i),
			Scroll: autoscroll.ScrollState{
				Current: geom.Position{Y: float64(m.scrollOffsets[i])},
				Max:     geom.Position{Y: float64(m.maxColumnOffset(cols, i))},
			},
		}
	}
	return out
}

// cardRect is where card row of column col is drawn, in screen cells. It may
// lie outside the visible area.
func (m *Model) cardRect(col, row int) geom.Rect {
	m.ensureScrollOffsets()
	x := col*columnStride - m.scrollX
	y := cardTop + row*cardHeight - m.ColumnOffset(col)
	return geom.FromSize(float64(x), float64(y), cardWidth, cardHeight)
}

func (m *Model) visibleCardArea() geom.Rect {
	return geom.FromSize(0, cardTop, float64(m.width), float64(m.cardAreaHeight()))
}

// columnRegions are hit targets covering each visible column, header included.
func (m *Model) columnRegions() []common.HitRegion {
	regions := make([]common.HitRegion, 0, len(m.Columns))
	for i := range m.Columns {
		r := common.HitRegion{
			ID:     columnID(i),
			X:      i*columnStride - m.scrollX,
			Y:      headerRow,
			Width:  cardWidth,
			Height: 1 + m.cardAreaHeight(),
		}
		if r.X+r.Width <= 0 || r.X >= m.width {
			continue
		}
		regions = append(regions, r)
	}
	return regions
}

// cardRegions are hit targets for the cards currently on screen, clipped
// to the card area.
func (m *Model) cardRegions() []common.HitRegion {
	area := m.visibleCardArea()
	var regions []common.HitRegion
	for c, col := range m.Columns {
		for r, card := range col.Cards {
			rect := m.cardRect(c, r)
			top := max(rect.Top, area.Top)
			bottom := min(rect.Bottom, area.Bottom)
			left := max(rect.Left, area.Left)
			right := min(rect.Right, area.Right)
			if top >= bottom || left >= right {
				continue
			}
			regions = append(regions, common.HitRegion{
				ID:     card.ID,
				X:      int(left),
				Y:      int(top),
				Width:  int(right - left),
				Height: int(bottom - top),
			})
		}
	}
	return regions
}

// dragView builds what the scrollers see for the current layout.
func (m *Model) dragView(center geom.Position, subject geom.Rect, destination string) autoscroll.DragState {
	return autoscroll.DragState{
		Center:        center,
		Subject:       subject,
		Viewport:      m.viewport(),
		Scrollables:   m.scrollables(m.displayColumns()),
		DestinationID: destination,
	}
}

// revealRequest is the scroll needed to bring rect inside area. When rect
// is larger than area its leading edge wins.
func revealRequest(rect, area geom.Rect) geom.Position {
	var req geom.Position
	switch {
	case rect.Left < area.Left:
		req.X = rect.Left - area.Left
	case rect.Right > area.Right:
		req.X = min(rect.Right-area.Right, rect.Left-area.Left)
	}
	switch {
	case rect.Top < area.Top:
		req.Y = rect.Top - area.Top
	case rect.Bottom > area.Bottom:
		req.Y = min(rect.Bottom-area.Bottom, rect.Top-area.Top)
	}
	return req
}

// revealSelection scrolls the selected card into view.
func (m *Model) revealSelection() {
	if m.width <= 0 || m.height <= 0 || len(m.Columns) == 0 {
		return
	}
	rect := m.cardRect(m.Selection.Column, m.Selection.Row)
	req := revealRequest(rect, m.visibleCardArea())
	if geom.IsEqual(req, geom.Origin) {
		return
	}
	state := m.dragView(rect.Center(), rect, columnID(m.Selection.Column))
	autoscroll.JumpScroll(state, req, true, &scrollHost{m: m})
}

// scrollHost applies scroller decisions to the model's offsets.
type scrollHost struct {
	m     *Model
	moved geom.Position
}

func (h *scrollHost) ScrollWindow(change geom.Position) {
	m := h.m
	m.scrollX = clamp(m.scrollX+round(change.X), 0, m.maxScrollX())
}

func (h *scrollHost) ScrollScrollable(id string, change geom.Position) {
	i, ok := columnIndex(id)
	m := h.m
	if !ok || i >= len(m.scrollOffsets) {
		return
	}
	limit := m.maxColumnOffset(m.displayColumns(), i)
	m.scrollOffsets[i] = clamp(m.scrollOffsets[i]+round(change.Y), 0, limit)
}

// Move receives what scrolling could not absorb. Cards snap to slots, so
// the leftover is only recorded.
func (h *scrollHost) Move(offset geom.Position) {
	h.moved = geom.Add(h.moved, offset)
	if !geom.IsEqual(offset, geom.Origin) {
		logging.Debug("board: jump left over %+v", offset)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
