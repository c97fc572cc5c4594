package app

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/dragscroll/internal/config"
	"github.com/andyrewlee/dragscroll/internal/data"
	"github.com/andyrewlee/dragscroll/internal/keymap"
	"github.com/andyrewlee/dragscroll/internal/logging"
	"github.com/andyrewlee/dragscroll/internal/messages"
	"github.com/andyrewlee/dragscroll/internal/perf"
	"github.com/andyrewlee/dragscroll/internal/ui/board"
	"github.com/andyrewlee/dragscroll/internal/ui/common"
)

const configReloadBuffer = 4

// App is the root Bubbletea model
type App struct {
	// Configuration
	config *config.Config
	store  *data.BoardStore

	// State
	board  *data.Board
	ready  bool
	err    error
	width  int
	height int

	quitting bool

	// UI Components
	boardView *board.Model
	toast     *common.ToastModel
	zone      *zone.Manager
	styles    common.Styles
	keys      appKeys

	// Config reloads arrive from the watcher goroutine.
	watcher    *config.Watcher
	watcherErr error
	reloads    chan messages.ConfigReloaded

	ctx          context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once

	version string
}

type appKeys struct {
	Quit      key.Binding
	ForceQuit key.Binding
}

func newAppKeys(km keymap.KeyMap) appKeys {
	return appKeys{
		Quit:      km.Quit,
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// applyKeyMap rebuilds bindings from the configured overrides.
func (a *App) applyKeyMap(cfg config.KeyMapConfig) {
	km := keymap.New(cfg)
	a.keys = newAppKeys(km)
	a.boardView.SetKeyMap(km)
}

// Update handles all messages
func (a *App) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic in app.Update: %v\n%s", r, debug.Stack())
			a.err = fmt.Errorf("internal error: %v", r)
			model = a
			cmd = nil
		}
	}()
	return a.update(msg)
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer perf.Time("update")()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.handleWindowSize(msg)
		return a, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, a.keys.ForceQuit) ||
			(key.Matches(msg, a.keys.Quit) && !a.boardView.Dragging()) {
			return a.quit()
		}
		if a.err != nil {
			a.err = nil
		}

	case messages.BoardLoaded:
		return a, a.handleBoardLoaded(msg)

	case messages.CardMoved:
		return a, a.handleCardMoved(msg)

	case messages.DragCanceled:
		logging.Debug("drag canceled for %s", msg.CardID)
		return a, nil

	case messages.BoardSaved:
		if msg.Err != nil {
			logging.Error("saving board: %v", msg.Err)
			return a, a.toast.ShowError("Board not saved: " + msg.Err.Error())
		}
		return a, nil

	case messages.CopyCard:
		return a, a.handleCopyCard(msg)

	case messages.ToggleKeymapHints:
		return a, a.handleToggleKeymapHints()

	case messages.ConfigReloaded:
		return a, common.SafeBatch(a.handleConfigReloaded(msg), a.waitForConfigReload())

	case messages.Toast:
		return a, a.showToast(msg)

	case messages.Error:
		logging.WithError(msg.Err, msg.Context)
		a.err = msg
		return a, nil

	case common.ToastDismissed:
		newToast, cmd := a.toast.Update(msg)
		a.toast = newToast
		return a, cmd
	}

	newBoard, cmd := a.boardView.Update(msg)
	a.boardView = newBoard
	return a, cmd
}

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) {
	a.width = msg.Width
	a.height = msg.Height
	a.ready = true
	a.resizeBoard()
}

// resizeBoard gives the board everything above the status line.
func (a *App) resizeBoard() {
	if !a.ready {
		return
	}
	a.boardView.SetSize(a.width, max(1, a.height-statusHeight))
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	a.boardView.Blur()
	return a, tea.Quit
}

func (a *App) showToast(msg messages.Toast) tea.Cmd {
	switch msg.Level {
	case messages.ToastSuccess:
		return a.toast.ShowSuccess(msg.Message)
	case messages.ToastError:
		return a.toast.ShowError(msg.Message)
	case messages.ToastWarning:
		return a.toast.ShowWarning(msg.Message)
	default:
		return a.toast.ShowInfo(msg.Message)
	}
}

func (a *App) handleCopyCard(msg messages.CopyCard) tea.Cmd {
	if err := common.CopyToClipboard(msg.Text); err != nil {
		logging.Warn("copy %s: %v", msg.CardID, err)
		return a.toast.ShowError("Copy failed: " + err.Error())
	}
	return a.toast.ShowSuccess("Copied " + msg.CardID)
}

func (a *App) handleToggleKeymapHints() tea.Cmd {
	show := !a.boardView.ShowKeymapHints()
	a.boardView.SetShowKeymapHints(show)
	a.resizeBoard()
	a.config.UI.ShowKeymapHints = show
	if err := a.config.SaveUISettings(); err != nil {
		logging.Warn("saving ui settings: %v", err)
		return a.toast.ShowWarning("Hint setting not saved")
	}
	return nil
}

// applyTheme switches the shared palette and rebuilds every style set.
func (a *App) applyTheme(id string) {
	common.SetCurrentTheme(common.ThemeID(id))
	a.styles = common.DefaultStyles()
	a.boardView.SetStyles(a.styles)
	a.toast.SetStyles(a.styles)
}

// statusHeight is the line under the board used for toasts and errors.
const statusHeight = 1

// View renders the application
func (a *App) View() tea.View {
	defer perf.Time("view")()

	view := tea.View{
		AltScreen:            true,
		MouseMode:            tea.MouseModeAllMotion,
		BackgroundColor:      common.CurrentTheme().Colors.Background,
		ForegroundColor:      common.ColorForeground(),
		KeyboardEnhancements: tea.KeyboardEnhancements{ReportEventTypes: true},
	}

	if a.quitting {
		view.SetContent("")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	content := lipgloss.JoinVertical(lipgloss.Left, a.boardView.View(), a.statusLine())
	view.SetContent(a.zone.Scan(content))
	return view
}

func (a *App) statusLine() string {
	var line string
	switch {
	case a.err != nil:
		line = a.styles.Error.Render(common.Icons.Error + " " + a.err.Error())
	case a.toast.Visible():
		line = a.toast.View()
	default:
		line = a.styles.Muted.Render(a.statusText())
	}
	width := max(1, a.width)
	return lipgloss.NewStyle().Width(width).Render(ansi.Truncate(line, width, ""))
}

func (a *App) statusText() string {
	if a.board == nil {
		return "dragscroll " + a.version
	}
	cards := 0
	for _, col := range a.board.Columns {
		cards += len(col.Cards)
	}
	return fmt.Sprintf("dragscroll %s  %d columns  %d cards  q quit", a.version, len(a.board.Columns), cards)
}
