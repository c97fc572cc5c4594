package board

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/dragscroll/internal/messages"
	"github.com/andyrewlee/dragscroll/internal/ui/common"
)

type toolbarAction struct {
	ID    string
	Label string
}

func toolbarActions() []toolbarAction {
	return []toolbarAction{
		{ID: "left", Label: common.Icons.Left},
		{ID: "right", Label: common.Icons.Right},
		{ID: "copy", Label: "Copy"},
		{ID: "hints", Label: "Hints"},
	}
}

func toolbarZoneID(id string) string {
	return "board-toolbar-" + id
}

// toolbarRegions mirrors toolbarLine: padded buttons separated by one space.
func toolbarRegions() []common.HitRegion {
	var regions []common.HitRegion
	x := 0
	for _, a := range toolbarActions() {
		w := runewidth.StringWidth(a.Label) + 2
		regions = append(regions, common.HitRegion{ID: a.ID, X: x, Y: toolbarRow, Width: w, Height: 1})
		x += w + 1
	}
	return regions
}

// toolbarHit resolves a click to a toolbar action. Zone bounds are used once
// the zone manager has scanned a frame.
func (m *Model) toolbarHit(x, y int) (string, bool) {
	if m.zone != nil {
		for _, a := range toolbarActions() {
			z := m.zone.Get(toolbarZoneID(a.ID))
			if z.IsZero() {
				continue
			}
			if x >= z.StartX && x <= z.EndX && y >= z.StartY && y <= z.EndY {
				return a.ID, true
			}
		}
	}
	hit, ok := common.HitTest(toolbarRegions(), x, y)
	return hit.ID, ok
}

func (m *Model) toolbarAction(id string) tea.Cmd {
	switch id {
	case "left":
		m.scrollWindowBy(-columnStride)
	case "right":
		m.scrollWindowBy(columnStride)
	case "copy":
		return m.copySelected()
	case "hints":
		return func() tea.Msg { return messages.ToggleKeymapHints{} }
	}
	return nil
}

// View renders the board.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.clampScroll()

	lines := []string{m.toolbarLine()}
	cols := m.displayColumns()
	for _, line := range m.canvas(cols) {
		lines = append(lines, m.window(line))
	}
	if m.showKeymapHints {
		lines = append(lines, m.helpLine())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// canvas renders every column at full width; the window cuts it afterwards.
func (m *Model) canvas(cols []BoardColumn) []string {
	area := m.cardAreaHeight()
	rows := make([][]string, 1+area)
	gap := strings.Repeat(" ", columnGap)
	for c, col := range cols {
		cells := m.renderColumn(c, col, area)
		for i := range rows {
			if c > 0 {
				rows[i] = append(rows[i], gap)
			}
			rows[i] = append(rows[i], cells[i])
		}
	}
	out := make([]string, len(rows))
	for i, parts := range rows {
		out[i] = strings.Join(parts, "")
	}
	return out
}

// window applies the horizontal offset to a canvas line.
func (m *Model) window(line string) string {
	cut := ansi.Cut(line, m.scrollX, m.scrollX+m.width)
	return padRight(cut, m.width)
}

func (m *Model) renderColumn(colIdx int, col BoardColumn, area int) []string {
	cells := make([]string, 0, 1+area)
	cells = append(cells, m.renderHeader(colIdx, col))

	offset := m.ColumnOffset(colIdx)
	for r := 0; r < area; r++ {
		line := r + offset
		idx, part := line/cardHeight, line%cardHeight
		if idx >= len(col.Cards) {
			cells = append(cells, strings.Repeat(" ", cardWidth))
			continue
		}
		cells = append(cells, m.renderCardLine(colIdx, idx, col.Cards[idx], part))
	}
	return cells
}

func (m *Model) renderHeader(colIdx int, col BoardColumn) string {
	indicator := ""
	offset := m.ColumnOffset(colIdx)
	if offset > 0 {
		indicator += common.Icons.Up
	}
	if len(col.Cards)*cardHeight-offset > m.cardAreaHeight() {
		indicator += common.Icons.Down
	}
	text := fmt.Sprintf("%s (%d)", col.Name, len(col.Cards))
	avail := cardWidth - runewidth.StringWidth(indicator)
	if indicator != "" {
		avail--
	}
	text = runewidth.FillRight(truncate(text, avail), avail)

	style := m.styles.ColumnHeader
	if colIdx == m.Selection.Column {
		style = m.styles.ColumnHeaderActive
	}
	out := style.Render(text)
	if indicator != "" {
		out += " " + m.styles.ScrollIndicator.Render(indicator)
	}
	return out
}

func (m *Model) renderCardLine(colIdx, idx int, card Card, part int) string {
	lifted := m.drag != nil && m.drag.toCol == colIdx && m.drag.toIndex == idx
	selected := m.drag == nil && m.Selection.Column == colIdx && m.Selection.Row == idx

	var text string
	if part == 0 {
		prefix := " "
		if lifted {
			prefix = common.Icons.Lifted
		}
		text = prefix + " " + card.Title
	} else {
		detail := card.Note
		if detail == "" {
			detail = card.ID
		}
		text = "  " + detail
	}
	text = runewidth.FillRight(truncate(text, cardWidth), cardWidth)

	style := m.styles.Card
	switch {
	case lifted:
		style = m.styles.CardLifted
	case selected:
		style = m.styles.CardSelected
	case part == 1:
		style = m.styles.Card.Foreground(common.ColorMuted())
	}
	return style.Render(text)
}

func (m *Model) toolbarLine() string {
	parts := make([]string, 0, len(toolbarActions()))
	for _, a := range toolbarActions() {
		style := m.styles.ToolbarButton
		if a.ID == "hints" && m.showKeymapHints {
			style = m.styles.ToolbarButtonActive
		}
		label := style.Render(a.Label)
		if m.zone != nil {
			label = m.zone.Mark(toolbarZoneID(a.ID), label)
		}
		parts = append(parts, label)
	}
	line := strings.Join(parts, " ")
	if m.drag != nil {
		line += "  " + m.styles.Placeholder.Render(common.Icons.Drop+" "+m.drag.card.Title)
	}
	return padRight(ansi.Truncate(line, m.width, ""), m.width)
}

func (m *Model) helpLine() string {
	k := m.keys
	var items []string
	if m.drag != nil {
		items = common.RenderBindings(m.styles, k.Lift, k.Drop, k.Cancel, k.Up, k.Down, k.Left, k.Right)
	} else {
		items = common.RenderBindings(m.styles, k.Lift, k.Copy, k.Hints, k.Up, k.Down, k.Left, k.Right)
	}
	line := common.WrapHelpItems(items, m.width)[0]
	return padRight(ansi.Truncate(line, m.width, ""), m.width)
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

func padRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}
