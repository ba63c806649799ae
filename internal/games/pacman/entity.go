// Package pacman implements a single-player Pac-Man game on a fixed tile maze.
// It contains pure game logic: the platform drives it through Input, Step
// and Render and owns timing, terminal and logging setup.
package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/assets"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Direction is one of the four cardinal headings.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionForAction maps a movement action to a heading.
func directionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

func randomDirection(rng *rand.Rand) Direction {
	return directions[rng.Intn(len(directions))]
}

// Entity is a positioned rectangle: a wall, a food pellet, the player or a ghost.
// Food has no sprite and is drawn as a filled cell.
type Entity struct {
	X, Y          int
	Width, Height int
	Kind          assets.Name // Empty for food
	Sprite        *assets.Sprite
	Dir           Direction
	VX, VY        int

	// Spawn position, restored after a life is lost or the maze reloads.
	StartX, StartY int
}

// NewEntity creates a stationary entity facing right.
// The sprite is bound later from an atlas by kind.
func NewEntity(kind assets.Name, x, y, width, height int) *Entity {
	return &Entity{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Kind:   kind,
		Dir:    DirRight,
		StartX: x,
		StartY: y,
	}
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Collision reports whether two entities overlap.
func Collision(a, b *Entity) bool {
	return a.Rect().Intersects(b.Rect())
}

// UpdateVelocity derives the velocity from the current direction.
// Speed is a quarter tile per tick along a single axis.
func (e *Entity) UpdateVelocity(tileSize int) {
	speed := tileSize / 4
	dx, dy := e.Dir.Delta()
	e.VX = dx * speed
	e.VY = dy * speed
}

// UpdateDirection turns the entity and takes one step in the new direction.
// If that step lands on a wall the step is undone, the previous direction is
// restored and the velocity is derived from it again, so an entity spawned at
// rest resumes its old heading. Returns false in that case; the request is
// not retried later.
func (e *Entity) UpdateDirection(dir Direction, walls []*Entity, tileSize int) bool {
	prev := e.Dir
	e.Dir = dir
	e.UpdateVelocity(tileSize)
	e.X += e.VX
	e.Y += e.VY

	for _, wall := range walls {
		if Collision(e, wall) {
			e.X -= e.VX
			e.Y -= e.VY
			e.Dir = prev
			e.UpdateVelocity(tileSize)
			return false
		}
	}
	return true
}

// Reset returns the entity to its spawn position.
func (e *Entity) Reset() {
	e.X = e.StartX
	e.Y = e.StartY
}

// Stop zeroes the velocity.
func (e *Entity) Stop() {
	e.VX = 0
	e.VY = 0
}
