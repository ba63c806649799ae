package pacman

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/assets"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

const (
	foodRune = '•'
	gridRune = '+'
)

// BoardCells returns the board size in terminal cells.
func (s *State) BoardCells() (w, h int) {
	return s.Maze.Cols() * assets.GlyphWidth, s.Maze.RowCount()
}

// Draw renders the board into dst, centered horizontally.
func (s *State) Draw(dst *core.Screen, showGrid bool) {
	dst.Clear()
	dst.Fill(' ', core.ColorDefault)

	boardW, boardH := s.BoardCells()
	if dst.Width() < boardW || dst.Height() < boardH {
		y := dst.Height() / 2
		dst.DrawTextCentered(y-1, "Window too small")
		dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", boardW, boardH))
		return
	}

	offX := (dst.Width() - boardW) / 2
	tile := s.Rules.TileSize

	if showGrid {
		for r := 0; r < s.Maze.RowCount(); r++ {
			for c := 0; c < s.Maze.Cols(); c++ {
				dst.SetColored(offX+c*assets.GlyphWidth, r, gridRune, core.ColorGray)
			}
		}
	}

	if s.Pacman != nil {
		s.drawSprite(dst, offX, s.Pacman)
	}
	for _, ghost := range s.Ghosts {
		s.drawSprite(dst, offX, ghost)
	}

	missing := 0
	for _, wall := range s.Walls {
		if wall.Sprite == nil {
			missing++
			continue
		}
		s.drawSprite(dst, offX, wall)
	}
	if missing > 0 {
		log.Error("wall sprite not loaded", "walls", missing)
	}

	for _, food := range s.Foods {
		cx := food.X + food.Width/2
		cy := food.Y + food.Height/2
		col := core.FloorDiv(cx, tile) * assets.GlyphWidth
		row := core.FloorDiv(cy, tile)
		dst.DrawRect(core.NewRect(offX+col, row, 1, 1), foodRune, core.ColorWhite)
	}

	var overlay string
	if s.GameOver {
		overlay = fmt.Sprintf("Game Over: %d", s.Score)
	} else {
		overlay = fmt.Sprintf("x%d %d", s.Lives, s.Score)
	}
	dst.DrawTextColored(offX+1, 0, overlay, core.ColorBrightWhite)
}

// cellOf maps a canvas position to the nearest terminal cell.
// One tile spans GlyphWidth columns and one row.
func (s *State) cellOf(x, y int) (col, row int) {
	tile := s.Rules.TileSize
	col = core.FloorDiv(x*assets.GlyphWidth+tile/2, tile)
	row = core.FloorDiv(y+tile/2, tile)
	return col, row
}

func (s *State) drawSprite(dst *core.Screen, offX int, e *Entity) {
	if e.Sprite == nil {
		return
	}
	col, row := s.cellOf(e.X, e.Y)
	for i, r := range e.Sprite.Glyph {
		x := offX + col + i
		// Keep tunnel sprites inside the board.
		if x < offX || x >= offX+s.Maze.Cols()*assets.GlyphWidth {
			continue
		}
		dst.SetColored(x, row, r, e.Sprite.Color)
	}
}
