package pacman

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustMaze(t *testing.T, rows ...string) *Maze {
	t.Helper()
	m, err := ParseMaze("test", "Test", rows)
	if err != nil {
		t.Fatalf("ParseMaze() error = %v", err)
	}
	return m
}

func TestClassicMaze(t *testing.T) {
	m := ClassicMaze()

	if m.ID != "classic" {
		t.Errorf("ID = %q, expected classic", m.ID)
	}
	if m.Cols() != 19 || m.RowCount() != 21 {
		t.Errorf("size = %dx%d, expected 19x21", m.Cols(), m.RowCount())
	}
	if m.FoodCount() != 184 {
		t.Errorf("FoodCount() = %d, expected 184", m.FoodCount())
	}
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want string
	}{
		{"empty", nil, "empty layout"},
		{"empty row", []string{""}, "empty layout"},
		{"ragged", []string{"XXXX", "XP X", "XXX"}, "row 2"},
		{"unknown tile", []string{"XXXX", "XP#X", "XXXX"}, "unknown tile"},
		{"no player", []string{"XXXX", "X  X", "XXXX"}, "found 0"},
		{"two players", []string{"XXXX", "XPPX", "X  X"}, "found 2"},
		{"no food", []string{"XXXX", "XPOX", "XXXX"}, "no food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaze("bad", "Bad", tt.rows)
			if err == nil {
				t.Fatal("ParseMaze() error = nil")
			}
			if !strings.HasPrefix(err.Error(), "pacman: maze bad: ") {
				t.Errorf("error %q missing maze prefix", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseMazeCopiesRows(t *testing.T) {
	rows := []string{"XXXX", "XP X", "XXXX"}
	m := mustMaze(t, rows...)
	rows[1] = "XXXX"

	if m.Rows[1] != "XP X" {
		t.Errorf("maze row changed to %q after caller mutation", m.Rows[1])
	}
}

func TestLoadMazeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	doc := "id: tiny\nname: Tiny\nrows:\n  - \"XXXXX\"\n  - \"XP bX\"\n  - \"XXXXX\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMazeFile(path)
	if err != nil {
		t.Fatalf("LoadMazeFile() error = %v", err)
	}
	if m.ID != "tiny" || m.Name != "Tiny" {
		t.Errorf("got %q/%q, expected tiny/Tiny", m.ID, m.Name)
	}
	if m.FoodCount() != 1 {
		t.Errorf("FoodCount() = %d, expected 1", m.FoodCount())
	}

	if _, err := LoadMazeFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadMazeFile() on missing file: error = nil")
	}
}

func TestParseMazeYAMLDefaults(t *testing.T) {
	m, err := ParseMazeYAML([]byte("rows: [\"XXX\", \"XPX\", \"O X\"]\n"))
	if err != nil {
		t.Fatalf("ParseMazeYAML() error = %v", err)
	}
	if m.ID != "custom" || m.Name != "custom" {
		t.Errorf("got %q/%q, expected custom/custom", m.ID, m.Name)
	}

	if _, err := ParseMazeYAML([]byte("rows: {")); err == nil {
		t.Error("ParseMazeYAML() on malformed yaml: error = nil")
	}
}

func TestResolveMaze(t *testing.T) {
	m, err := ResolveMaze("")
	if err != nil || m.ID != "classic" {
		t.Errorf("ResolveMaze(\"\") = %v, %v; expected classic", m, err)
	}

	m, err = ResolveMaze("classic")
	if err != nil || m.ID != "classic" {
		t.Errorf("ResolveMaze(classic) = %v, %v; expected classic", m, err)
	}

	if _, err := ResolveMaze(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("ResolveMaze() on unknown path: error = nil")
	}
}

func TestMazesSorted(t *testing.T) {
	mazes, err := Mazes()
	if err != nil {
		t.Fatalf("Mazes() error = %v", err)
	}
	if len(mazes) == 0 {
		t.Fatal("Mazes() returned nothing")
	}
	for i := 1; i < len(mazes); i++ {
		if mazes[i-1].ID >= mazes[i].ID {
			t.Errorf("mazes not sorted: %q before %q", mazes[i-1].ID, mazes[i].ID)
		}
	}
}
