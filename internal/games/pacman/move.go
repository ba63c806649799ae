package pacman

import "math/rand"

// MoveResult reports what happened during one tick.
type MoveResult struct {
	AteFood      bool
	LostLife     bool
	LevelCleared bool
	GameOver     bool
}

// Move advances the simulation by one tick.
// A game that is already over does not change.
func (s *State) Move(rng *rand.Rand) MoveResult {
	var res MoveResult
	if s.GameOver {
		res.GameOver = true
		return res
	}

	tile := s.Rules.TileSize
	boardWidth := s.BoardWidth()
	p := s.Pacman

	p.X += p.VX
	p.Y += p.VY
	if s.hitsWall(p) {
		p.X -= p.VX
		p.Y -= p.VY
	}

	// Tunnel: the player wraps on its leading edge.
	if p.X+p.Width > boardWidth {
		p.X = 0
	} else if p.X < 0 {
		p.X = boardWidth - tile
	}

	for _, ghost := range s.Ghosts {
		if !Collision(ghost, p) {
			continue
		}
		s.Lives--
		res.LostLife = true
		if s.Lives <= 0 {
			s.Lives = 0
			s.GameOver = true
			res.GameOver = true
			return res
		}
		s.ResetPositions(rng)
		break
	}

	if !res.LostLife {
		for _, ghost := range s.Ghosts {
			ghost.X += ghost.VX
			ghost.Y += ghost.VY
			if s.hitsWall(ghost) {
				ghost.X -= ghost.VX
				ghost.Y -= ghost.VY
				ghost.UpdateDirection(randomDirection(rng), s.Walls, tile)
			}

			// Ghosts wrap on their trailing edge.
			if ghost.X >= boardWidth {
				ghost.X = 0
			} else if ghost.X+ghost.Width <= 0 {
				ghost.X = boardWidth - tile
			}
		}
	}

	for i, food := range s.Foods {
		if !Collision(p, food) {
			continue
		}
		last := len(s.Foods) - 1
		s.Foods[i] = s.Foods[last]
		s.Foods[last] = nil
		s.Foods = s.Foods[:last]
		s.Score += s.Rules.FoodPoints
		res.AteFood = true
		break
	}

	if len(s.Foods) == 0 {
		s.LoadMap(rng)
		s.ResetPositions(rng)
		s.Level++
		res.LevelCleared = true
	}
	return res
}

func (s *State) hitsWall(e *Entity) bool {
	for _, wall := range s.Walls {
		if Collision(e, wall) {
			return true
		}
	}
	return false
}
