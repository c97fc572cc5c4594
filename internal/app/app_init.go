package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/dragscroll/internal/config"
	"github.com/andyrewlee/dragscroll/internal/data"
	"github.com/andyrewlee/dragscroll/internal/logging"
	"github.com/andyrewlee/dragscroll/internal/messages"
	"github.com/andyrewlee/dragscroll/internal/perf"
	"github.com/andyrewlee/dragscroll/internal/safego"
	"github.com/andyrewlee/dragscroll/internal/ui/board"
	"github.com/andyrewlee/dragscroll/internal/ui/common"
)

// New creates the app for cfg. The board is read from cfg.Paths.BoardPath
// once the program starts.
func New(cfg *config.Config, version string) *App {
	if cfg == nil {
		cfg = &config.Config{}
	}
	common.SetCurrentTheme(common.ThemeID(cfg.UI.Theme))

	z := zone.New()
	boardView := board.New(cfg.AutoScroll)
	boardView.SetZone(z)
	boardView.SetShowKeymapHints(cfg.UI.ShowKeymapHints)
	boardView.Focus()

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		config:    cfg,
		boardView: boardView,
		toast:     common.NewToastModel(),
		zone:      z,
		styles:    common.DefaultStyles(),
		reloads:   make(chan messages.ConfigReloaded, configReloadBuffer),
		ctx:       ctx,
		cancel:    cancel,
		version:   version,
	}
	a.applyKeyMap(cfg.KeyMap)
	if cfg.Paths != nil {
		a.store = data.NewBoardStore(cfg.Paths.BoardPath)
		watcher, err := config.NewWatcher(cfg.Paths, a.enqueueConfigReload)
		if err != nil {
			logging.Warn("Config watcher disabled: %v", err)
			a.watcherErr = err
		} else {
			a.watcher = watcher
		}
	}
	return a
}

// Init loads the board and starts watching config.json.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.loadBoard(),
		a.startConfigWatcher(),
	}
	if a.watcherErr != nil {
		cmds = append(cmds, a.toast.ShowWarning("Config watching disabled; restart to apply changes"))
	}
	return common.SafeBatch(cmds...)
}

// Shutdown stops background work. It is safe to call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.cancel()
		if a.watcher != nil {
			if err := a.watcher.Close(); err != nil {
				logging.Warn("closing config watcher: %v", err)
			}
		}
		a.zone.Close()
		perf.Flush("shutdown")
	})
}

// enqueueConfigReload runs on the watcher's timer goroutine.
func (a *App) enqueueConfigReload(cfg *config.Config, err error) {
	select {
	case a.reloads <- messages.ConfigReloaded{Config: cfg, Err: err}:
	case <-a.ctx.Done():
	default:
		// A newer reload will follow; the file is re-read each time.
		logging.Debug("config reload dropped; queue full")
	}
}

func (a *App) startConfigWatcher() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	safego.GoErr(a.ctx, "config-watcher", a.watcher.Run)
	return a.waitForConfigReload()
}

// waitForConfigReload blocks until the watcher reports a change.
func (a *App) waitForConfigReload() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case msg := <-a.reloads:
			return msg
		case <-a.ctx.Done():
			return nil
		}
	}
}

// handleConfigReloaded applies tuning, theme, hints and log level from a
// fresh config. A failed reload keeps the previous config.
func (a *App) handleConfigReloaded(msg messages.ConfigReloaded) tea.Cmd {
	if msg.Err != nil {
		return a.toast.ShowError("Config not reloaded: " + msg.Err.Error())
	}
	cfg := msg.Config
	if cfg == nil {
		return nil
	}
	if cfg.Paths == nil {
		cfg.Paths = a.config.Paths
	}
	a.config = cfg
	logging.SetLevel(cfg.LogLevel)
	a.boardView.SetAutoScrollConfig(cfg.AutoScroll)
	a.applyTheme(cfg.UI.Theme)
	a.applyKeyMap(cfg.KeyMap)
	if cfg.UI.ShowKeymapHints != a.boardView.ShowKeymapHints() {
		a.boardView.SetShowKeymapHints(cfg.UI.ShowKeymapHints)
		a.resizeBoard()
	}
	return a.toast.ShowInfo("Config reloaded")
}
