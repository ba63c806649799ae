package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPacmanConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultPacmanConfig())
	}
	if len(GetDefaultYAML()) == 0 {
		t.Error("embedded default YAML is empty")
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 5\nkeys:\n  up: [\"up\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.FoodPoints != 10 {
		t.Errorf("FoodPoints = %d, expected default 10", cfg.Gameplay.FoodPoints)
	}
	if !reflect.DeepEqual(cfg.Keys.Up, []string{"up"}) {
		t.Errorf("Keys.Up = %v, expected [up]", cfg.Keys.Up)
	}
	if len(cfg.Keys.Left) != 3 {
		t.Errorf("Keys.Left = %v, expected the three default bindings", cfg.Keys.Left)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadPacman(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPacman() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  tile_size: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPacman(path); err == nil {
		t.Error("LoadPacman() should reject a tile size that is not a multiple of 8")
	}
}

func TestSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	// Local ./configs file
	if err := os.MkdirAll(filepath.Join(wd, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(wd, "configs", "pacman.yaml")
	if err := os.WriteFile(local, []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("local config should be used, Lives = %d", cfg.Gameplay.Lives)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".pacman", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "pacman.yaml"), []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("user config should take precedence, Lives = %d", cfg.Gameplay.Lives)
	}
}

func TestSearchSkipsInvalidFiles(t *testing.T) {
	_, wd := isolate(t)

	if err := os.MkdirAll(filepath.Join(wd, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(wd, "configs", "pacman.yaml")
	if err := os.WriteFile(local, []byte("gameplay: [broken\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("invalid local file should fall through to defaults, Lives = %d", cfg.Gameplay.Lives)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PacmanConfig)
		wantErr bool
	}{
		{"defaults", func(*PacmanConfig) {}, false},
		{"tile size zero", func(c *PacmanConfig) { c.Board.TileSize = 0 }, true},
		{"tile size 16", func(c *PacmanConfig) { c.Board.TileSize = 16 }, false},
		{"no lives", func(c *PacmanConfig) { c.Gameplay.Lives = 0 }, true},
		{"negative points", func(c *PacmanConfig) { c.Gameplay.FoodPoints = -1 }, true},
		{"tick rate above range", func(c *PacmanConfig) { c.Gameplay.TickRate = 61 }, true},
		{"inverted speed range", func(c *PacmanConfig) { c.Debug.MinSpeed = 10; c.Debug.MaxSpeed = 5 }, true},
		{"missing key binding", func(c *PacmanConfig) { c.Keys.Left = nil }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
