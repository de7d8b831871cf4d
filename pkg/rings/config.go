package rings

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default parameters, matching the physical Atlas v2 fixture.
const (
	DefaultGridSize    = 120 // voxel cube edge; leaves headroom for tall models
	DefaultMatrixWidth = 500 // 2D matrix row length
)

// Config is the full generation input: the ring table plus the three scalar
// parameters that control rasterization.
type Config struct {
	Name           string // fixture name, used for model names and file names
	GridSize       int    // 3D voxel cube edge length
	MatrixWidth    int    // 2D matrix row length
	FlipVertically bool   // true places ring 1 at the bottom of the model
	Table          Table
}

// Validate checks the scalar parameters and the ring table.
func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("grid size must be at least 2, got %d", c.GridSize)
	}
	if c.MatrixWidth < 1 {
		return fmt.Errorf("matrix width must be at least 1, got %d", c.MatrixWidth)
	}
	return c.Table.Validate()
}

// fileConfig mirrors the TOML layout of a fixture file.
type fileConfig struct {
	Params struct {
		Name           string `toml:"name"`
		GridSize       int    `toml:"grid_size"`
		MatrixWidth    int    `toml:"matrix_width"`
		FlipVertically bool   `toml:"flip_vertically"`
	} `toml:"params"`
	Rings []struct {
		Ring     int  `toml:"ring"`
		LEDs     int  `toml:"leds"`
		Reversed bool `toml:"reversed"`
	} `toml:"ring"`
}

// Load reads a fixture description from a TOML file:
//
//	[params]
//	name = "Atlas v2"
//	grid_size = 120
//	matrix_width = 500
//	flip_vertically = true
//
//	[[ring]]
//	ring = 1
//	leds = 53
//	reversed = false
//
// Omitted scalar parameters fall back to the defaults above. The ring list
// may appear in any order; it is sorted by ring id.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	specs := make([]Spec, len(fc.Rings))
	for i, r := range fc.Rings {
		specs[i] = Spec{Ring: r.Ring, LEDs: r.LEDs, Reversed: r.Reversed}
	}
	table, err := New(specs)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	cfg := Config{
		Name:           fc.Params.Name,
		GridSize:       fc.Params.GridSize,
		MatrixWidth:    fc.Params.MatrixWidth,
		FlipVertically: fc.Params.FlipVertically,
		Table:          table,
	}
	if cfg.Name == "" {
		cfg.Name = "Atlas"
	}
	if cfg.GridSize == 0 {
		cfg.GridSize = DefaultGridSize
	}
	if cfg.MatrixWidth == 0 {
		cfg.MatrixWidth = DefaultMatrixWidth
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in Atlas v2 fixture: 22 rings, 1422 LEDs, widest
// at the equator (ring 10), with zigzag wiring alternating every ring and
// ring 1 physically at the bottom of the sphere.
func Default() Config {
	return Config{
		Name:           "Atlas v2",
		GridSize:       DefaultGridSize,
		MatrixWidth:    DefaultMatrixWidth,
		FlipVertically: true,
		Table: Table{
			{Ring: 1, LEDs: 53},
			{Ring: 2, LEDs: 59, Reversed: true},
			{Ring: 3, LEDs: 65},
			{Ring: 4, LEDs: 69, Reversed: true},
			{Ring: 5, LEDs: 71},
			{Ring: 6, LEDs: 73, Reversed: true},
			{Ring: 7, LEDs: 75},
			{Ring: 8, LEDs: 77, Reversed: true},
			{Ring: 9, LEDs: 79},
			{Ring: 10, LEDs: 81, Reversed: true}, // equator
			{Ring: 11, LEDs: 79},
			{Ring: 12, LEDs: 77, Reversed: true},
			{Ring: 13, LEDs: 75},
			{Ring: 14, LEDs: 73, Reversed: true},
			{Ring: 15, LEDs: 71},
			{Ring: 16, LEDs: 69, Reversed: true},
			{Ring: 17, LEDs: 65},
			{Ring: 18, LEDs: 59, Reversed: true},
			{Ring: 19, LEDs: 53},
			{Ring: 20, LEDs: 45, Reversed: true},
			{Ring: 21, LEDs: 35},
			{Ring: 22, LEDs: 19, Reversed: true},
		},
	}
}
