// Package assets loads the named sprites the game draws with.
// Every sprite ships embedded in the binary; a directory of YAML files with
// the same names can override any of them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// GlyphWidth is the number of terminal cells one tile occupies.
const GlyphWidth = 2

// Name identifies a sprite.
type Name string

const (
	Wall        Name = "wall"
	BlueGhost   Name = "blueGhost"
	OrangeGhost Name = "orangeGhost"
	PinkGhost   Name = "pinkGhost"
	RedGhost    Name = "redGhost"
	PacmanUp    Name = "pacmanUp"
	PacmanDown  Name = "pacmanDown"
	PacmanLeft  Name = "pacmanLeft"
	PacmanRight Name = "pacmanRight"
)

// Names returns every sprite the game needs before it can start.
func Names() []Name {
	return []Name{
		Wall,
		BlueGhost, OrangeGhost, PinkGhost, RedGhost,
		PacmanUp, PacmanDown, PacmanLeft, PacmanRight,
	}
}

func known(name Name) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Sprite is a tile-sized glyph with a color.
type Sprite struct {
	Name  Name
	Glyph [GlyphWidth]rune
	Color core.Color
}

// spriteFile is the YAML shape of a sprite document.
type spriteFile struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

//go:embed sprites/*.yaml
var embedded embed.FS

// Loader reads sprites from an optional override directory, falling back to
// the embedded defaults.
type Loader struct {
	Dir string
}

// NewLoader creates a loader. An empty dir uses the embedded sprites only.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load reads and parses a single sprite.
func (l *Loader) Load(name Name) (*Sprite, error) {
	if !known(name) {
		return nil, fmt.Errorf("assets: unknown sprite %q", name)
	}

	data, err := l.read(name)
	if err != nil {
		return nil, err
	}

	sprite, err := parseSprite(name, data)
	if err != nil {
		return nil, fmt.Errorf("assets: sprite %s: %w", name, err)
	}
	return sprite, nil
}

// read returns the raw document, preferring the override directory.
func (l *Loader) read(name Name) ([]byte, error) {
	file := string(name) + ".yaml"

	if l.Dir != "" {
		path := filepath.Join(l.Dir, file)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
		}
	}

	data, err := embedded.ReadFile("sprites/" + file)
	if err != nil {
		return nil, fmt.Errorf("assets: missing sprite %s: %w", name, err)
	}
	return data, nil
}

func parseSprite(name Name, data []byte) (*Sprite, error) {
	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	n := utf8.RuneCountInString(sf.Glyph)
	if n == 0 || n > GlyphWidth {
		return nil, fmt.Errorf("glyph %q must be 1 to %d characters", sf.Glyph, GlyphWidth)
	}

	color, ok := core.ParseColor(sf.Color)
	if !ok {
		return nil, fmt.Errorf("unknown color %q", sf.Color)
	}

	s := &Sprite{Name: name, Color: color, Glyph: [GlyphWidth]rune{' ', ' '}}
	i := 0
	for _, r := range sf.Glyph {
		s.Glyph[i] = r
		i++
	}
	return s, nil
}

// Atlas holds the sprites that loaded successfully.
// A missing entry means the sprite failed to load and is skipped when drawing.
type Atlas struct {
	sprites map[Name]*Sprite
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{sprites: make(map[Name]*Sprite)}
}

// Put adds or replaces a sprite.
func (a *Atlas) Put(s *Sprite) {
	if s == nil {
		return
	}
	a.sprites[s.Name] = s
}

// Get returns the sprite, or nil when it is not loaded.
func (a *Atlas) Get(name Name) *Sprite {
	if a == nil {
		return nil
	}
	return a.sprites[name]
}

// Len returns the number of loaded sprites.
func (a *Atlas) Len() int {
	if a == nil {
		return 0
	}
	return len(a.sprites)
}
