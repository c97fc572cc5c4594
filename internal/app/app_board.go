package app

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dragscroll/internal/data"
	"github.com/andyrewlee/dragscroll/internal/logging"
	"github.com/andyrewlee/dragscroll/internal/messages"
	"github.com/andyrewlee/dragscroll/internal/ui/board"
)

var errNoStore = errors.New("no board store configured")

// loadBoard reads board.json off the update loop.
func (a *App) loadBoard() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		if store == nil {
			return messages.BoardLoaded{Board: data.SampleBoard()}
		}
		b, err := store.Load()
		return messages.BoardLoaded{Board: b, Err: err}
	}
}

// saveBoard persists a snapshot so later moves cannot race the write.
func (a *App) saveBoard() tea.Cmd {
	store := a.store
	snapshot := a.board.Clone()
	return func() tea.Msg {
		if store == nil {
			return messages.BoardSaved{Err: errNoStore}
		}
		return messages.BoardSaved{Err: store.Save(snapshot)}
	}
}

func (a *App) handleBoardLoaded(msg messages.BoardLoaded) tea.Cmd {
	if msg.Err != nil {
		logging.Error("loading board: %v", msg.Err)
		a.err = messages.Error{Err: msg.Err, Context: "load board"}
		return nil
	}
	a.board = msg.Board
	a.boardView.SetColumns(toBoardColumns(a.board))
	logging.Info("board loaded: %d columns", len(a.board.Columns))
	return nil
}

// handleCardMoved applies a drop to the persisted board. The board view has
// already rearranged itself; on failure it is reset from the stored board.
func (a *App) handleCardMoved(msg messages.CardMoved) tea.Cmd {
	if a.board == nil {
		return nil
	}
	if err := a.board.MoveCard(msg.CardID, msg.ToColumn, msg.Index); err != nil {
		logging.Warn("move %s: %v", msg.CardID, err)
		a.boardView.SetColumns(toBoardColumns(a.board))
		return a.toast.ShowError("Move failed: " + err.Error())
	}
	return a.saveBoard()
}

func toBoardColumns(b *data.Board) []board.BoardColumn {
	if b == nil {
		return nil
	}
	cols := make([]board.BoardColumn, len(b.Columns))
	for i, col := range b.Columns {
		cards := make([]board.Card, len(col.Cards))
		for j, card := range col.Cards {
			cards[j] = board.Card{ID: card.ID, Title: card.Title, Note: card.Note}
		}
		cols[i] = board.BoardColumn{Name: col.Name, Cards: cards}
	}
	return cols
}
