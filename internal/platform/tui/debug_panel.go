package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

var (
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("4")).Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// Status is the read-only view of a running game shared with the debug
// HTTP server.
type Status struct {
	Game     string `json:"game"`
	Ready    bool   `json:"ready"`
	Score    int    `json:"score"`
	Lives    int    `json:"lives"`
	Level    int    `json:"level"`
	GameOver bool   `json:"game_over"`
	Paused   bool   `json:"paused"`
	ShowGrid bool   `json:"show_grid"`
	Speed    int    `json:"speed"`
	MinSpeed int    `json:"min_speed"`
	MaxSpeed int    `json:"max_speed"`
	Ticks    uint64 `json:"ticks"`
}

// StatusBoard holds the latest Status published by the model.
// The model writes it from the event loop; HTTP handlers read it from
// their own goroutines.
type StatusBoard struct {
	mu     sync.RWMutex
	status Status
}

// NewStatusBoard creates an empty board.
func NewStatusBoard() *StatusBoard {
	return &StatusBoard{}
}

// Publish replaces the current status.
func (b *StatusBoard) Publish(s Status) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.status = s
	b.mu.Unlock()
}

// Load returns the latest status.
func (b *StatusBoard) Load() Status {
	if b == nil {
		return Status{}
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// SetSpeedMsg asks the model to change the debug speed.
type SetSpeedMsg struct {
	Speed int
}

// ToggleGridMsg asks the model to flip the debug grid.
type ToggleGridMsg struct{}

// renderPanel draws the in-terminal debug panel.
func renderPanel(st core.GameState, ticks uint64) string {
	grid := "off"
	if st.ShowGrid {
		grid = "on"
	}
	body := fmt.Sprintf("%s  speed %d tps  grid %s  ticks %d",
		panelTitleStyle.Render("debug"), st.Speed, grid, ticks)
	return panelStyle.Render(body)
}
