package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/assets"
)

// Rules holds the tunable gameplay constants.
type Rules struct {
	TileSize   int // Canvas pixels per tile, a multiple of 8
	Lives      int // Lives at start and after restart
	FoodPoints int // Score per pellet
}

// DefaultRules returns the classic constants.
func DefaultRules() Rules {
	return Rules{
		TileSize:   32,
		Lives:      3,
		FoodPoints: 10,
	}
}

// ghostKinds maps maze characters to ghost sprites.
var ghostKinds = map[byte]assets.Name{
	TileBlueGhost:   assets.BlueGhost,
	TileOrangeGhost: assets.OrangeGhost,
	TilePinkGhost:   assets.PinkGhost,
	TileRedGhost:    assets.RedGhost,
}

// pacmanKinds maps a heading to the player sprite.
var pacmanKinds = [...]assets.Name{
	DirUp:    assets.PacmanUp,
	DirDown:  assets.PacmanDown,
	DirLeft:  assets.PacmanLeft,
	DirRight: assets.PacmanRight,
}

// State is the complete simulation state of one game.
type State struct {
	Maze    *Maze
	Rules   Rules
	Sprites *assets.Atlas

	Walls  []*Entity
	Foods  []*Entity
	Ghosts []*Entity
	Pacman *Entity

	Score    int
	Lives    int
	Level    int
	GameOver bool
}

// NewState builds a state for the maze and loads it.
func NewState(maze *Maze, rules Rules, rng *rand.Rand) *State {
	s := &State{
		Maze:    maze,
		Rules:   rules,
		Sprites: assets.NewAtlas(),
		Lives:   rules.Lives,
		Level:   1,
	}
	s.LoadMap(rng)
	return s
}

// BoardWidth returns the board width in canvas pixels.
func (s *State) BoardWidth() int {
	return s.Maze.Cols() * s.Rules.TileSize
}

// BoardHeight returns the board height in canvas pixels.
func (s *State) BoardHeight() int {
	return s.Maze.RowCount() * s.Rules.TileSize
}

// LoadMap rebuilds every entity from the maze template.
// Previous entities are discarded, so repeated calls yield the same board.
func (s *State) LoadMap(rng *rand.Rand) {
	tile := s.Rules.TileSize
	foodSize := tile / 8
	foodOffset := (tile - foodSize) / 2

	s.Walls = nil
	s.Foods = nil
	s.Ghosts = nil
	s.Pacman = nil

	for r, row := range s.Maze.Rows {
		for c := 0; c < len(row); c++ {
			x, y := c*tile, r*tile
			ch := row[c]

			switch ch {
			case TileWall:
				s.Walls = append(s.Walls, NewEntity(assets.Wall, x, y, tile, tile))
			case TilePacman:
				s.Pacman = NewEntity(assets.PacmanRight, x, y, tile, tile)
			case TileFood:
				s.Foods = append(s.Foods, NewEntity("", x+foodOffset, y+foodOffset, foodSize, foodSize))
			default:
				if kind, ok := ghostKinds[ch]; ok {
					s.Ghosts = append(s.Ghosts, NewEntity(kind, x, y, tile, tile))
				}
			}
		}
	}
	s.bindSprites()

	for _, ghost := range s.Ghosts {
		ghost.UpdateDirection(randomDirection(rng), s.Walls, tile)
	}
}

// ResetPositions returns the player and ghosts to their spawns.
// The player stops; each ghost picks a new random heading.
func (s *State) ResetPositions(rng *rand.Rand) {
	s.Pacman.Reset()
	s.Pacman.Stop()

	for _, ghost := range s.Ghosts {
		ghost.Reset()
		ghost.Stop()
		ghost.UpdateDirection(randomDirection(rng), s.Walls, s.Rules.TileSize)
	}
}

// Restart begins a new game on the same maze.
func (s *State) Restart(rng *rand.Rand) {
	s.LoadMap(rng)
	s.ResetPositions(rng)
	s.Lives = s.Rules.Lives
	s.Score = 0
	s.Level = 1
	s.GameOver = false
}

// Steer requests a player turn. The player sprite follows the resulting heading.
func (s *State) Steer(dir Direction) bool {
	ok := s.Pacman.UpdateDirection(dir, s.Walls, s.Rules.TileSize)
	s.Pacman.Kind = pacmanKinds[s.Pacman.Dir]
	s.Pacman.Sprite = s.Sprites.Get(s.Pacman.Kind)
	return ok
}

// SetSprites replaces the atlas and rebinds every entity.
func (s *State) SetSprites(atlas *assets.Atlas) {
	if atlas == nil {
		atlas = assets.NewAtlas()
	}
	s.Sprites = atlas
	s.bindSprites()
}

func (s *State) bindSprites() {
	bind := func(e *Entity) {
		if e.Kind != "" {
			e.Sprite = s.Sprites.Get(e.Kind)
		}
	}
	for _, e := range s.Walls {
		bind(e)
	}
	for _, e := range s.Ghosts {
		bind(e)
	}
	if s.Pacman != nil {
		bind(s.Pacman)
	}
}
