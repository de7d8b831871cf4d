package rings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[params]
name = "Mini Atlas"
grid_size = 32
matrix_width = 16
flip_vertically = true

[[ring]]
ring = 2
leds = 8
reversed = true

[[ring]]
ring = 1
leds = 6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "Mini Atlas" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Mini Atlas")
	}
	if cfg.GridSize != 32 || cfg.MatrixWidth != 16 || !cfg.FlipVertically {
		t.Errorf("params = (%d, %d, %v), want (32, 16, true)", cfg.GridSize, cfg.MatrixWidth, cfg.FlipVertically)
	}
	if len(cfg.Table) != 2 || cfg.Table[0].Ring != 1 || cfg.Table[1].Ring != 2 {
		t.Errorf("table not sorted by ring id: %+v", cfg.Table)
	}
	if !cfg.Table[1].Reversed {
		t.Error("ring 2 lost its reversed flag")
	}
}

func TestLoadDefaultsOmittedParams(t *testing.T) {
	path := writeConfig(t, `
[[ring]]
ring = 1
leds = 6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GridSize != DefaultGridSize {
		t.Errorf("GridSize = %d, want default %d", cfg.GridSize, DefaultGridSize)
	}
	if cfg.MatrixWidth != DefaultMatrixWidth {
		t.Errorf("MatrixWidth = %d, want default %d", cfg.MatrixWidth, DefaultMatrixWidth)
	}
	if cfg.Name == "" {
		t.Error("Name defaulted to empty")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no rings", "[params]\nname = \"x\"\n"},
		{"bad toml", "[[ring\n"},
		{"duplicate ring", "[[ring]]\nring = 1\nleds = 4\n[[ring]]\nring = 1\nleds = 5\n"},
		{"zero leds", "[[ring]]\nring = 1\nleds = 0\n"},
		{"grid too small", "[params]\ngrid_size = 1\n[[ring]]\nring = 1\nleds = 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() accepted an invalid config")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() did not report a missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Table) != 22 {
		t.Errorf("default table has %d rings, want 22", len(cfg.Table))
	}
	if got := cfg.Table.TotalLEDs(); got != 1422 {
		t.Errorf("default table has %d LEDs, want 1422", got)
	}
	if got := cfg.Table.MaxLEDs(); got != 81 {
		t.Errorf("default equator has %d LEDs, want 81", got)
	}
	if !cfg.FlipVertically {
		t.Error("default config should place ring 1 at the bottom")
	}
	// Zigzag wiring: direction alternates every ring.
	for i, s := range cfg.Table {
		if want := i%2 == 1; s.Reversed != want {
			t.Errorf("ring %d Reversed = %v, want %v", s.Ring, s.Reversed, want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	base := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default ok", func(c *Config) {}, false},
		{"grid too small", func(c *Config) { c.GridSize = 1 }, true},
		{"zero matrix width", func(c *Config) { c.MatrixWidth = 0 }, true},
		{"empty table", func(c *Config) { c.Table = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
