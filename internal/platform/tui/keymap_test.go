package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"i", runeKey('i'), core.ActionUp},
		{"k", runeKey('k'), core.ActionDown},
		{"j", runeKey('j'), core.ActionLeft},
		{"l", runeKey('l'), core.ActionRight},
		{"pause", runeKey('p'), core.ActionPause},
		{"grid", runeKey('g'), core.ActionToggleGrid},
		{"faster", runeKey('+'), core.ActionSpeedUp},
		{"slower", runeKey('-'), core.ActionSpeedDown},
		{"help", runeKey('?'), core.ActionHelp},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %s, expected %s", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	km := NewKeyMap(config.PacmanKeys{
		Up:    []string{"8"},
		Down:  []string{"2"},
		Left:  []string{"4"},
		Right: []string{"6"},
	})

	if got := km.Action(runeKey('8')); got != core.ActionUp {
		t.Errorf("Action(8) = %s, expected up", got)
	}
	if got := km.Action(runeKey('6')); got != core.ActionRight {
		t.Errorf("Action(6) = %s, expected right", got)
	}
	if got := km.Action(runeKey('w')); got != core.ActionNone {
		t.Errorf("Action(w) = %s, expected none once directions are rebound", got)
	}
}

func TestQuitWinsOverDirections(t *testing.T) {
	km := NewKeyMap(config.PacmanKeys{
		Up:    []string{"q"},
		Down:  []string{"s"},
		Left:  []string{"a"},
		Right: []string{"d"},
	})

	if got := km.Action(runeKey('q')); got != core.ActionQuit {
		t.Errorf("Action(q) = %s, expected quit", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if got := km.Up.Help().Key; got != "up/w/i" {
		t.Errorf("Up help key = %q, expected up/w/i", got)
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("FullHelp() has %d bindings, expected 10", total)
	}
}
