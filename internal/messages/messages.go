package messages

import (
	"github.com/andyrewlee/dragscroll/internal/config"
	"github.com/andyrewlee/dragscroll/internal/data"
)

// CardMoved is sent when a drop commits a card to a new position.
type CardMoved struct {
	CardID     string
	FromColumn int
	ToColumn   int
	Index      int
}

// DragCanceled is sent when a drag ends without moving the card.
type DragCanceled struct {
	CardID string
}

// BoardLoaded carries the board read from disk.
type BoardLoaded struct {
	Board *data.Board
	Err   error
}

// BoardSaved reports the outcome of persisting the board.
type BoardSaved struct {
	Err error
}

// ConfigReloaded is sent when config.json changes on disk.
type ConfigReloaded struct {
	Config *config.Config
	Err    error
}

// ToastLevel identifies the type of toast notification to display.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastWarning ToastLevel = "warning"
)

// Toast requests a toast notification in the UI.
type Toast struct {
	Message string
	Level   ToastLevel
}

// CopyCard asks the app to copy a card's title to the clipboard.
type CopyCard struct {
	CardID string
	Text   string
}

// ToggleKeymapHints toggles display of keymap helper text
type ToggleKeymapHints struct{}

// Error represents an application error
type Error struct {
	Err     error
	Context string
}

func (e Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

func (e Error) Unwrap() error { return e.Err }
