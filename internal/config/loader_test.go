package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadT2048EmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048() error: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded YAML and DefaultT2048Config disagree:\n%+v\n%+v", cfg, DefaultT2048Config())
	}
}

func TestLoadT2048CustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  spawn_four_threshold: 0.75\nanimation:\n  slide_ticks: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048(%q) error: %v", path, err)
	}
	if cfg.Board.SpawnFourThreshold != 0.75 {
		t.Errorf("SpawnFourThreshold = %v, want 0.75", cfg.Board.SpawnFourThreshold)
	}
	if cfg.Animation.SlideTicks != 0 {
		t.Errorf("SlideTicks = %d, want 0", cfg.Animation.SlideTicks)
	}
	if cfg.Board.InitialTiles != 2 {
		t.Errorf("unset keys should keep defaults, InitialTiles = %d", cfg.Board.InitialTiles)
	}
}

func TestLoadT2048CustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadT2048(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  spawn_four_threshold: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadT2048(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("out of range threshold error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadT2048UserDirectory(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, t2048File), []byte("animation:\n  pop_ticks: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048() error: %v", err)
	}
	if cfg.Animation.PopTicks != 12 {
		t.Errorf("PopTicks = %d, want 12 from user config", cfg.Animation.PopTicks)
	}
}

func TestLoadT2048SkipsBrokenLocalFile(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", t2048File), []byte("board: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048() error: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("broken local file should fall through to defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
	}{
		{"negative initial tiles", func(c *T2048Config) { c.Board.InitialTiles = -1 }},
		{"threshold below zero", func(c *T2048Config) { c.Board.SpawnFourThreshold = -0.1 }},
		{"negative slide", func(c *T2048Config) { c.Animation.SlideTicks = -1 }},
		{"zero swipe distance", func(c *T2048Config) { c.Input.SwipeMinDistance = 0 }},
		{"zero row scale", func(c *T2048Config) { c.Input.SwipeRowScale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultT2048Config().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
