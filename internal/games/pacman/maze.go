package pacman

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Maze template characters.
const (
	TileWall        = 'X'
	TileSkip        = 'O' // Empty floor without food
	TileFood        = ' '
	TilePacman      = 'P'
	TileBlueGhost   = 'b'
	TileOrangeGhost = 'o'
	TilePinkGhost   = 'p'
	TileRedGhost    = 'r'
)

// Maze is a validated rectangular character grid.
type Maze struct {
	ID   string
	Name string
	Rows []string
}

// Cols returns the maze width in tiles.
func (m *Maze) Cols() int {
	return len(m.Rows[0])
}

// RowCount returns the maze height in tiles.
func (m *Maze) RowCount() int {
	return len(m.Rows)
}

// FoodCount returns the number of food cells in the template.
func (m *Maze) FoodCount() int {
	n := 0
	for _, row := range m.Rows {
		n += strings.Count(row, string(TileFood))
	}
	return n
}

// ParseMaze validates a template.
// Rows must all have the same length, use only known characters, contain
// exactly one player start and at least one food cell.
func ParseMaze(id, name string, rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("pacman: maze %s: empty layout", id)
	}

	width := len(rows[0])
	players := 0
	food := 0
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("pacman: maze %s: row %d has %d columns, expected %d", id, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case TilePacman:
				players++
			case TileFood:
				food++
			case TileWall, TileSkip, TileBlueGhost, TileOrangeGhost, TilePinkGhost, TileRedGhost:
			default:
				return nil, fmt.Errorf("pacman: maze %s: unknown tile %q at (%d, %d)", id, row[x], x, y)
			}
		}
	}

	if players != 1 {
		return nil, fmt.Errorf("pacman: maze %s: expected exactly one player start, found %d", id, players)
	}
	if food == 0 {
		return nil, fmt.Errorf("pacman: maze %s: no food cells", id)
	}

	return &Maze{
		ID:   id,
		Name: name,
		Rows: append([]string(nil), rows...),
	}, nil
}

// mazeFile is the YAML shape of a maze document.
type mazeFile struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseMazeYAML parses a YAML maze document.
func ParseMazeYAML(data []byte) (*Maze, error) {
	var mf mazeFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("pacman: maze yaml unmarshal: %w", err)
	}
	if mf.ID == "" {
		mf.ID = "custom"
	}
	if mf.Name == "" {
		mf.Name = mf.ID
	}
	return ParseMaze(mf.ID, mf.Name, mf.Rows)
}

// LoadMazeFile reads a maze from disk.
func LoadMazeFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pacman: cannot read maze %s: %w", path, err)
	}
	return ParseMazeYAML(data)
}

//go:embed mazes/*.yaml
var bundledMazes embed.FS

// Mazes returns all bundled mazes sorted by ID.
func Mazes() ([]*Maze, error) {
	entries, err := bundledMazes.ReadDir("mazes")
	if err != nil {
		return nil, fmt.Errorf("pacman: list bundled mazes: %w", err)
	}

	out := make([]*Maze, 0, len(entries))
	for _, entry := range entries {
		data, err := bundledMazes.ReadFile(path.Join("mazes", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("pacman: read bundled maze %s: %w", entry.Name(), err)
		}
		m, err := ParseMazeYAML(data)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MazeByID returns a bundled maze.
func MazeByID(id string) (*Maze, bool) {
	mazes, err := Mazes()
	if err != nil {
		return nil, false
	}
	for _, m := range mazes {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// ResolveMaze picks a bundled maze by ID, otherwise loads ref as a file path.
// An empty ref selects the classic maze.
func ResolveMaze(ref string) (*Maze, error) {
	if ref == "" {
		return ClassicMaze(), nil
	}
	if m, ok := MazeByID(ref); ok {
		return m, nil
	}
	return LoadMazeFile(ref)
}

// ClassicMaze returns the built-in 19x21 maze.
func ClassicMaze() *Maze {
	m, ok := MazeByID("classic")
	if !ok {
		panic("pacman: embedded classic maze missing")
	}
	return m
}
