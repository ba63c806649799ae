package pacman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func newRenderState(t *testing.T) *State {
	t.Helper()
	s := NewState(ClassicMaze(), DefaultRules(), rand.New(rand.NewSource(1)))
	s.SetSprites(loadAtlas(t))
	return s
}

func TestDrawClassicBoard(t *testing.T) {
	s := newRenderState(t)
	w, h := s.BoardCells()
	if w != 38 || h != 21 {
		t.Fatalf("BoardCells() = %dx%d, expected 38x21", w, h)
	}

	dst := core.NewScreen(w, h)
	s.Draw(dst, false)

	if cell := dst.GetCell(0, 0); cell.Rune != '█' || cell.Color != core.ColorBlue {
		t.Errorf("wall cell = %q/%v, expected blue block", cell.Rune, cell.Color)
	}
	if got := dst.Get(18, 15); got != 'ᗧ' {
		t.Errorf("pacman cell = %q, expected ᗧ", got)
	}
	if got := dst.Get(2, 1); got != foodRune {
		t.Errorf("food cell = %q, expected %q", got, foodRune)
	}
	if row := dst.Row(0); !strings.HasPrefix(row[len("█"):], "x3 0") {
		t.Errorf("overlay row = %q, expected lives and score", row)
	}
}

func TestDrawCentersBoard(t *testing.T) {
	s := newRenderState(t)
	dst := core.NewScreen(48, 21)
	s.Draw(dst, false)

	if got := dst.Get(4, 0); got != ' ' {
		t.Errorf("margin cell = %q, expected blank", got)
	}
	if got := dst.Get(5, 0); got != '█' {
		t.Errorf("first board cell = %q, expected wall", got)
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	s := newRenderState(t)
	s.Score = 120
	s.GameOver = true

	dst := core.NewScreen(38, 21)
	s.Draw(dst, false)

	if !strings.Contains(dst.Row(0), "Game Over: 120") {
		t.Errorf("row 0 = %q, expected game over overlay", dst.Row(0))
	}
}

func TestDrawWindowTooSmall(t *testing.T) {
	s := newRenderState(t)
	dst := core.NewScreen(30, 10)
	s.Draw(dst, false)

	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("screen = %q, expected too small message", dst.String())
	}
	if strings.ContainsRune(dst.String(), '█') {
		t.Error("board drawn on a screen that is too small")
	}
}

func TestDrawGrid(t *testing.T) {
	s := newRenderState(t)
	dst := core.NewScreen(38, 21)

	s.Draw(dst, false)
	if got := dst.Get(0, 7); got != ' ' {
		t.Errorf("skip cell without grid = %q, expected blank", got)
	}

	s.Draw(dst, true)
	if cell := dst.GetCell(0, 7); cell.Rune != gridRune || cell.Color != core.ColorGray {
		t.Errorf("skip cell with grid = %q/%v, expected gray %q", cell.Rune, cell.Color, gridRune)
	}
}

func TestDrawWithoutSprites(t *testing.T) {
	s := NewState(ClassicMaze(), DefaultRules(), rand.New(rand.NewSource(1)))
	dst := core.NewScreen(38, 21)

	s.Draw(dst, false)

	if got := dst.Get(0, 1); got != ' ' {
		t.Errorf("wall without sprite drawn as %q", got)
	}
	if got := dst.Get(2, 1); got != foodRune {
		t.Errorf("food cell = %q, expected %q", got, foodRune)
	}
}
