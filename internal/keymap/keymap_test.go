package keymap

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/dragscroll/internal/config"
)

func TestDefaultBindings(t *testing.T) {
	km := Default()
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{name: "j moves down", msg: tea.KeyPressMsg{Code: 'j', Text: "j"}, binding: km.Down},
		{name: "arrow up", msg: tea.KeyPressMsg{Code: tea.KeyUp}, binding: km.Up},
		{name: "space lifts", msg: tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, binding: km.Lift},
		{name: "enter drops", msg: tea.KeyPressMsg{Code: tea.KeyEnter}, binding: km.Drop},
		{name: "esc cancels", msg: tea.KeyPressMsg{Code: tea.KeyEscape}, binding: km.Cancel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Fatalf("%q did not match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
	if got := km.Lift.Help().Key; got != "space" {
		t.Fatalf("lift help key = %q, want space", got)
	}
}

func TestOverrides(t *testing.T) {
	km := New(config.KeyMapConfig{Bindings: map[string][]string{
		"lift": {"x", "m"},
		"quit": {},
	}})

	if got := km.Lift.Help().Key; got != "x/m" {
		t.Fatalf("lift help key = %q, want x/m", got)
	}
	if key.Matches(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, km.Lift) {
		t.Fatal("expected space to be unbound after override")
	}
	if !key.Matches(tea.KeyPressMsg{Code: 'm', Text: "m"}, km.Lift) {
		t.Fatal("expected m to lift")
	}
	if !key.Matches(tea.KeyPressMsg{Code: 'q', Text: "q"}, km.Quit) {
		t.Fatal("empty override should keep the default quit key")
	}
}

func TestActionsCoverKeyMap(t *testing.T) {
	if got := len(Actions()); got != 10 {
		t.Fatalf("Actions() = %d, want 10", got)
	}
}
