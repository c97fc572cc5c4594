package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/dragscroll/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionUp    Action = "up"
	ActionDown  Action = "down"
	ActionLeft  Action = "left"
	ActionRight Action = "right"

	ActionLift   Action = "lift"
	ActionDrop   Action = "drop"
	ActionCancel Action = "cancel"

	ActionCopy  Action = "copy"
	ActionHints Action = "hints"
	ActionQuit  Action = "quit"
)

type bindingDef struct {
	action Action
	keys   []string
	help   string
	desc   string
}

// KeyMap defines all keybindings for the board.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Lift   key.Binding
	Drop   key.Binding
	Cancel key.Binding

	Copy  key.Binding
	Hints key.Binding
	Quit  key.Binding
}

var defaults = []bindingDef{
	{action: ActionUp, keys: []string{"k", "up"}, desc: "up"},
	{action: ActionDown, keys: []string{"j", "down"}, desc: "down"},
	{action: ActionLeft, keys: []string{"h", "left"}, desc: "column left"},
	{action: ActionRight, keys: []string{"l", "right"}, desc: "column right"},
	// The space key reports as "space"; " " covers terminals that send text.
	{action: ActionLift, keys: []string{"space", " "}, help: "space", desc: "lift/drop"},
	{action: ActionDrop, keys: []string{"enter"}, desc: "drop"},
	{action: ActionCancel, keys: []string{"esc"}, desc: "cancel"},
	{action: ActionCopy, keys: []string{"y"}, desc: "copy"},
	{action: ActionHints, keys: []string{"?"}, desc: "hints"},
	{action: ActionQuit, keys: []string{"q"}, desc: "quit"},
}

// Actions lists every configurable action in display order.
func Actions() []Action {
	out := make([]Action, len(defaults))
	for i, def := range defaults {
		out[i] = def.action
	}
	return out
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	b := make(map[Action]key.Binding, len(defaults))
	for _, def := range defaults {
		b[def.action] = bindingFromDef(cfg, def)
	}
	return KeyMap{
		Up:     b[ActionUp],
		Down:   b[ActionDown],
		Left:   b[ActionLeft],
		Right:  b[ActionRight],
		Lift:   b[ActionLift],
		Drop:   b[ActionDrop],
		Cancel: b[ActionCancel],
		Copy:   b[ActionCopy],
		Hints:  b[ActionHints],
		Quit:   b[ActionQuit],
	}
}

// Default returns the keymap with no overrides.
func Default() KeyMap {
	return New(config.KeyMapConfig{})
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	helpKey := def.help
	if !ok {
		keys = def.keys
	}
	if ok || helpKey == "" {
		helpKey = strings.Join(keys, "/")
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}
