// Package tui runs the Pac-Man game inside Bubble Tea.
// It owns the tick loop, key bindings, sprite loading, the status line and
// the debug surfaces; the game itself stays free of terminal code.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the loop period for a rate in ticks per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick. The loop reschedules after every tick's
// work, so one command is in flight at a time.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
