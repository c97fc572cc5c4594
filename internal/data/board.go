package data

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateCard is returned when two cards share an ID.
	ErrDuplicateCard = errors.New("duplicate card id")
	// ErrInvalidCard is returned for cards without an ID.
	ErrInvalidCard = errors.New("invalid card")
	// ErrCardNotFound is returned when a move names an unknown card.
	ErrCardNotFound = errors.New("card not found")
	// ErrColumnNotFound is returned when a move targets a missing column.
	ErrColumnNotFound = errors.New("column not found")
)

// Card is a single draggable item.
type Card struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
}

// Column is an ordered list of cards.
type Column struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Board is the persisted board layout.
type Board struct {
	Columns []Column `json:"columns"`
}

// Validate checks that every card has an ID and that IDs are unique.
func (b *Board) Validate() error {
	seen := make(map[string]string)
	for _, col := range b.Columns {
		for _, card := range col.Cards {
			id := strings.TrimSpace(card.ID)
			if id == "" {
				return fmt.Errorf("%w: card %q in column %q has no id", ErrInvalidCard, card.Title, col.Name)
			}
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("%w: %q in %q and %q", ErrDuplicateCard, id, prev, col.Name)
			}
			seen[id] = col.Name
		}
	}
	return nil
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := &Board{Columns: make([]Column, len(b.Columns))}
	for i, col := range b.Columns {
		out.Columns[i] = Column{Name: col.Name, Cards: append([]Card(nil), col.Cards...)}
	}
	return out
}

// FindCard returns the column and index of the card with id.
func (b *Board) FindCard(id string) (col, index int, ok bool) {
	for c, column := range b.Columns {
		for i, card := range column.Cards {
			if card.ID == id {
				return c, i, true
			}
		}
	}
	return -1, -1, false
}

// MoveCard removes the card from its column and inserts it into column to at
// index. The index is clamped to the destination length after removal.
func (b *Board) MoveCard(id string, to, index int) error {
	from, at, ok := b.FindCard(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	if to < 0 || to >= len(b.Columns) {
		return fmt.Errorf("%w: %d", ErrColumnNotFound, to)
	}

	card := b.Columns[from].Cards[at]
	src := b.Columns[from].Cards
	b.Columns[from].Cards = append(src[:at:at], src[at+1:]...)

	dst := b.Columns[to].Cards
	index = max(0, min(index, len(dst)))
	dst = append(dst, Card{})
	copy(dst[index+1:], dst[index:])
	dst[index] = card
	b.Columns[to].Cards = dst
	return nil
}

// SampleBoard is used when no board.json exists yet. It is wide and tall
// enough to exercise both window and column auto-scroll.
func SampleBoard() *Board {
	names := []string{"Backlog", "Ready", "In Progress", "Review", "Blocked", "Done", "Archived"}
	b := &Board{Columns: make([]Column, len(names))}
	n := 1
	for i, name := range names {
		count := 4 + (i*5)%14
		cards := make([]Card, count)
		for j := range cards {
			cards[j] = Card{
				ID:    fmt.Sprintf("card-%d", n),
				Title: fmt.Sprintf("%s task %d", name, j+1),
			}
			n++
		}
		b.Columns[i] = Column{Name: name, Cards: cards}
	}
	return b
}
