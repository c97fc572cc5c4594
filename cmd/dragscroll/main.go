package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/dragscroll/internal/app"
	"github.com/andyrewlee/dragscroll/internal/cli"
	"github.com/andyrewlee/dragscroll/internal/config"
	"github.com/andyrewlee/dragscroll/internal/logging"
	"github.com/andyrewlee/dragscroll/internal/safego"
)

// Version info set via ldflags
var version = "dev"

func main() {
	args := os.Args[1:]
	if len(args) == 1 && (args[0] == "--version" || args[0] == "-v") {
		fmt.Printf("dragscroll %s\n", version)
		os.Exit(0)
	}

	launchTUI := shouldLaunchTUI(
		term.IsTerminal(os.Stdin.Fd()),
		term.IsTerminal(os.Stdout.Fd()),
	)
	if routeToCLI(args, launchTUI) {
		os.Exit(cli.Run(args, version))
	}
	os.Exit(runTUI())
}

func shouldLaunchTUI(stdinIsTTY, stdoutIsTTY bool) bool {
	return stdinIsTTY && stdoutIsTTY
}

// routeToCLI sends every invocation with arguments to the headless CLI.
// Without arguments the board opens unless there is no terminal to draw on.
func routeToCLI(args []string, launchTUI bool) bool {
	if len(args) > 0 {
		return true
	}
	return !launchTUI
}

func runTUI() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", cfg.Paths.Home, err)
		return 1
	}
	if err := logging.Initialize(cfg.Paths.LogDir, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	safego.SetPanicHandler(func(name string, recovered any, _ []byte) {
		fmt.Fprintf(os.Stderr, "dragscroll: %s panicked: %v (see %s)\n", name, recovered, logging.GetLogPath())
	})
	logging.Info("Starting dragscroll %s", version)
	startPprof()

	a := app.New(cfg, version)
	defer a.Shutdown()

	p := tea.NewProgram(a, tea.WithFilter(mouseEventFilter))
	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		return 1
	}
	logging.Info("dragscroll shutdown complete")
	return 0
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseWheelEvent    time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter drops repeated motion at the same cell and bursts of
// wheel events. Motion to a new cell always passes so drags stay smooth.
func mouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg := msg.(type) {
	case tea.MouseMotionMsg:
		if msg.X != lastMouseX || msg.Y != lastMouseY {
			lastMouseX = msg.X
			lastMouseY = msg.Y
			lastMouseMotionEvent = time.Now()
			return msg
		}
		now := time.Now()
		if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseMotionEvent = now
	case tea.MouseWheelMsg:
		now := time.Now()
		if now.Sub(lastMouseWheelEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseWheelEvent = now
	}
	return msg
}

// pprofAddr maps DRAGSCROLL_PPROF to a listen address. "1" or "true" use
// the default port and a bare number picks the port.
func pprofAddr(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "0", "false", "no":
		return "", false
	case "1", "true":
		return "127.0.0.1:6060", true
	}
	if _, err := strconv.Atoi(raw); err == nil {
		return "127.0.0.1:" + raw, true
	}
	return raw, true
}

func startPprof() {
	addr, ok := pprofAddr(os.Getenv("DRAGSCROLL_PPROF"))
	if !ok {
		return
	}
	safego.Go("pprof", func() {
		logging.Info("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logging.Warn("pprof server stopped: %v", err)
		}
	})
}
