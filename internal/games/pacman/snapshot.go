package pacman

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the comparable game state, used to check that equal seeds
// replay equal games.
type Snapshot struct {
	Tick      uint64
	Maze      string
	Score     int
	Lives     int
	Level     int
	FoodLeft  int
	PacmanX   int
	PacmanY   int
	PacmanDir string
	Ghosts    [][2]int
	Speed     int
	ShowGrid  bool
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.state.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	ghosts := make([][2]int, 0, len(g.state.Ghosts))
	for _, ghost := range g.state.Ghosts {
		ghosts = append(ghosts, [2]int{ghost.X, ghost.Y})
	}

	return Snapshot{
		Tick:      g.tick,
		Maze:      g.state.Maze.ID,
		Score:     g.state.Score,
		Lives:     g.state.Lives,
		Level:     g.state.Level,
		FoodLeft:  len(g.state.Foods),
		PacmanX:   g.state.Pacman.X,
		PacmanY:   g.state.Pacman.Y,
		PacmanDir: g.state.Pacman.Dir.String(),
		Ghosts:    ghosts,
		Speed:     g.speed,
		ShowGrid:  g.showGrid,
		State:     state,
	}
}
