package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/assets"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Options configures a new Game.
type Options struct {
	Maze     *Maze
	Rules    Rules
	MinSpeed int // Slowest debug speed, ticks per second
	MaxSpeed int // Fastest debug speed, ticks per second
	ShowGrid bool
}

// DefaultOptions returns the classic maze with classic rules.
func DefaultOptions() Options {
	return Options{
		Maze:     ClassicMaze(),
		Rules:    DefaultRules(),
		MinSpeed: 1,
		MaxSpeed: 60,
	}
}

// Game implements Pac-Man on top of State.
// It adds the controls that live outside the simulation: pause, the debug
// grid and the debug speed.
type Game struct {
	opts  Options
	rng   *rand.Rand
	tick  uint64
	state *State
	atlas *assets.Atlas

	paused   bool
	showGrid bool
	speed    int
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.Maze == nil {
		opts.Maze = ClassicMaze()
	}
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}
	if opts.MinSpeed <= 0 {
		opts.MinSpeed = 1
	}
	if opts.MaxSpeed < opts.MinSpeed {
		opts.MaxSpeed = opts.MinSpeed
	}
	return &Game{
		opts:     opts,
		atlas:    assets.NewAtlas(),
		showGrid: opts.ShowGrid,
		speed:    opts.MinSpeed,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset starts a fresh game with the seed and tick rate from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.speed = core.Clamp(cfg.TickRate, g.opts.MinSpeed, g.opts.MaxSpeed)
	g.state = NewState(g.opts.Maze, g.opts.Rules, g.rng)
	g.state.SetSprites(g.atlas)
}

// SetSprites installs the loaded sprites.
func (g *Game) SetSprites(atlas *assets.Atlas) {
	g.atlas = atlas
	if g.state != nil {
		g.state.SetSprites(atlas)
	}
}

// Input applies one action. It reports whether the action restarted the game.
// After game over every action except quit restarts.
func (g *Game) Input(a core.Action) bool {
	if g.state.GameOver {
		if a == core.ActionNone || a == core.ActionQuit {
			return false
		}
		g.Restart()
		return true
	}

	switch a {
	case core.ActionRestart:
		g.Restart()
		return true
	case core.ActionPause:
		g.paused = !g.paused
	case core.ActionToggleGrid:
		g.showGrid = !g.showGrid
	case core.ActionSpeedUp:
		g.SetSpeed(g.speed + 1)
	case core.ActionSpeedDown:
		g.SetSpeed(g.speed - 1)
	default:
		if !a.IsDirection() || g.paused {
			return false
		}
		dir, _ := directionForAction(a)
		g.state.Steer(dir)
	}
	return false
}

// Restart reloads the maze and resets score, lives and level.
func (g *Game) Restart() {
	g.state.Restart(g.rng)
	g.paused = false
}

// Step advances the game by one tick.
// Nothing moves while paused or after game over.
func (g *Game) Step() core.StepResult {
	if g.paused || g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	res := g.state.Move(g.rng)
	return core.StepResult{
		State:        g.State(),
		AteFood:      res.AteFood,
		LostLife:     res.LostLife,
		LevelCleared: res.LevelCleared,
	}
}

// Render draws the board.
func (g *Game) Render(dst *core.Screen) {
	g.state.Draw(dst, g.showGrid)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		Level:    g.state.Level,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
		ShowGrid: g.showGrid,
		Speed:    g.speed,
	}
}

// Speed returns the debug speed in ticks per second.
func (g *Game) Speed() int {
	return g.speed
}

// SetSpeed sets the debug speed, clamped to the configured range.
func (g *Game) SetSpeed(n int) int {
	g.speed = core.Clamp(n, g.opts.MinSpeed, g.opts.MaxSpeed)
	return g.speed
}

// SpeedRange returns the allowed debug speeds.
func (g *Game) SpeedRange() (minSpeed, maxSpeed int) {
	return g.opts.MinSpeed, g.opts.MaxSpeed
}

// ToggleGrid flips the debug grid.
func (g *Game) ToggleGrid() bool {
	g.showGrid = !g.showGrid
	return g.showGrid
}

// Sim exposes the simulation state.
func (g *Game) Sim() *State {
	return g.state
}
