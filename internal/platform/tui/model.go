package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/assets"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Game is what the model drives. Games contain pure logic; the model owns
// timing, input mapping and the terminal.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	SetSprites(atlas *assets.Atlas)
	// Input applies an action and reports whether it restarted the game.
	Input(a core.Action) bool
	Step() core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	SetSpeed(n int) int
	SpeedRange() (minSpeed, maxSpeed int)
	ToggleGrid() bool
}

// spriteLoadedMsg reports the outcome of one sprite load.
type spriteLoadedMsg struct {
	name   assets.Name
	sprite *assets.Sprite
	err    error
}

// loadSpriteCmd loads a sprite off the event loop.
func loadSpriteCmd(loader *assets.Loader, name assets.Name) tea.Cmd {
	return func() tea.Msg {
		s, err := loader.Load(name)
		return spriteLoadedMsg{name: name, sprite: s, err: err}
	}
}

// Options configures a Model.
type Options struct {
	Config    core.RuntimeConfig
	Keys      KeyMap
	Loader    *assets.Loader
	Status    *StatusBoard // Optional, fed after every tick
	ShowPanel bool
	Logger    *log.Logger // Optional, defaults to the global logger
}

// Model is the Bubble Tea model for one Pac-Man game.
type Model struct {
	game   Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	loader *assets.Loader
	status *StatusBoard
	logger *log.Logger

	atlas   *assets.Atlas
	pending int // Sprite loads still in flight
	ready   bool
	ticking bool // A tick command is scheduled
	ticks   uint64

	gameState core.GameState
	showPanel bool
	quitting  bool
}

// NewModel creates a model for the game and resets it.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Loader == nil {
		opts.Loader = assets.NewLoader("")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if len(opts.Keys.Up.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	game.Reset(cfg)

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      opts.Keys,
		help:      help.New(),
		loader:    opts.Loader,
		status:    opts.Status,
		logger:    opts.Logger,
		atlas:     assets.NewAtlas(),
		pending:   len(assets.Names()),
		gameState: game.State(),
		showPanel: opts.ShowPanel,
	}
	m.publish()
	return m
}

// Init starts loading every sprite. Ticking begins once all have resolved.
func (m Model) Init() tea.Cmd {
	names := assets.Names()
	cmds := make([]tea.Cmd, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, loadSpriteCmd(m.loader, name))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spriteLoadedMsg:
		return m.handleSprite(msg)

	case TickMsg:
		return m.handleTick()

	case SetSpeedMsg:
		speed := m.game.SetSpeed(msg.Speed)
		m.logger.Debug("speed changed", "speed", speed)
		m.refresh()
		return m, nil

	case ToggleGridMsg:
		m.game.ToggleGrid()
		m.refresh()
		return m, nil
	}

	return m, nil
}

// handleSprite records one load result and starts the loop after the last one.
func (m Model) handleSprite(msg spriteLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("sprite load failed", "sprite", msg.name, "err", msg.err)
	} else {
		m.atlas.Put(msg.sprite)
	}

	m.pending--
	if m.pending > 0 || m.ready {
		return m, nil
	}

	m.ready = true
	m.game.SetSprites(m.atlas)
	m.logger.Info("sprites ready", "loaded", m.atlas.Len(), "expected", len(assets.Names()))
	m.refresh()
	cmd := m.startTicking()
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	if m.gameState.GameOver {
		// Any key restarts, bound or not.
		action = core.ActionRestart
	} else if action == core.ActionHelp {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if action == core.ActionNone {
		return m, nil
	}

	restarted := m.game.Input(action)
	m.refresh()
	if restarted {
		m.logger.Info("game restarted", "game", m.game.ID())
		cmd := m.startTicking()
		return m, cmd
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and schedules the next one unless the
// game just ended.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	if !m.ready || m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step()
	m.gameState = result.State
	if !result.State.Paused {
		m.ticks++
	}

	if result.LostLife {
		m.logger.Debug("life lost", "lives", result.State.Lives)
	}
	if result.LevelCleared {
		m.logger.Info("level cleared", "level", result.State.Level, "score", result.State.Score)
	}
	m.publish()

	if m.gameState.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
		return m, nil
	}
	cmd := m.startTicking()
	return m, cmd
}

// startTicking schedules a tick unless one is already in flight.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.gameState.Speed)
}

// refresh re-reads the game state and publishes it.
func (m *Model) refresh() {
	m.gameState = m.game.State()
	m.publish()
}

func (m *Model) publish() {
	if m.status == nil {
		return
	}
	minSpeed, maxSpeed := m.game.SpeedRange()
	m.status.Publish(Status{
		Game:     m.game.ID(),
		Ready:    m.ready,
		Score:    m.gameState.Score,
		Lives:    m.gameState.Lives,
		Level:    m.gameState.Level,
		GameOver: m.gameState.GameOver,
		Paused:   m.gameState.Paused,
		ShowGrid: m.gameState.ShowGrid,
		Speed:    m.gameState.Speed,
		MinSpeed: minSpeed,
		MaxSpeed: maxSpeed,
		Ticks:    m.ticks,
	})
}

// View renders the board, the status line and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		loaded := len(assets.Names()) - m.pending
		return fmt.Sprintf("%s: loading sprites %d/%d...", m.game.Title(), loaded, len(assets.Names()))
	}

	footer := []string{renderStatus(m.gameState)}
	if m.showPanel {
		footer = append(footer, renderPanel(m.gameState, m.ticks))
	}
	footer = append(footer, m.help.View(m.keys))
	bottom := lipgloss.JoinVertical(lipgloss.Left, footer...)

	boardH := max(m.config.ScreenH-lipgloss.Height(bottom), 1)
	m.screen.Resize(max(m.config.ScreenW, 1), boardH)
	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), bottom)
}

// Ticking reports whether a tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// Ready reports whether every sprite load has resolved.
func (m Model) Ready() bool {
	return m.ready
}

// Run starts the game in the current terminal. When debugAddr is set the
// debug HTTP server runs alongside the program.
func Run(game Game, opts Options, debugAddr string) error {
	if debugAddr != "" && opts.Status == nil {
		opts.Status = NewStatusBoard()
	}
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if debugAddr != "" {
		dbg := NewDebugServer(debugAddr, opts.Status, p.Send, model.logger)
		if err := dbg.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := dbg.Shutdown(ctx); err != nil {
				model.logger.Warn("debug server shutdown", "err", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
