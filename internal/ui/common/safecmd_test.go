package common

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dragscroll/internal/messages"
)

func TestSafeCmdRecoversPanic(t *testing.T) {
	cmd := SafeCmd(func() tea.Msg { panic("boom") })
	msg := cmd()
	errMsg, ok := msg.(messages.Error)
	if !ok {
		t.Fatalf("msg = %T, want messages.Error", msg)
	}
	if errMsg.Context != "command" {
		t.Fatalf("Context = %q", errMsg.Context)
	}
}

func TestSafeBatch(t *testing.T) {
	if SafeBatch() != nil || SafeBatch(nil, nil) != nil {
		t.Fatal("expected nil batch for no commands")
	}
	single := SafeBatch(nil, func() tea.Msg { return messages.ToggleKeymapHints{} })
	if _, ok := single().(messages.ToggleKeymapHints); !ok {
		t.Fatal("single command should run directly")
	}
}
