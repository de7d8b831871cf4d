// Package layout computes exact ring placements inside the voxel grid.
//
// The solver treats one LED pitch (the spacing between adjacent LEDs on a
// ring) as the fundamental unit of length. The widest ring's circumference is
// max_leds pitch units, so its radius is max_leds/2π units; scaling that
// radius to the usable grid radius yields a single voxels-per-pitch factor.
// The same factor sets both every ring's radius and the vertical step between
// rings, which is what gives the model its 1:1 aspect ratio.
//
// Output is exact floating point. Rounding to voxel cells happens in the
// rasterizer, not here.
package layout

import (
	"fmt"
	"math"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
)

// Placement locates one ring in grid units.
type Placement struct {
	Spec   rings.Spec
	Radius float64 // ring radius in voxels
	Y      float64 // vertical coordinate in voxels; low Y is the top of the model
}

// Plan is the solved geometry for a whole fixture.
type Plan struct {
	Grid       int     // voxel cube edge length
	Pitch      float64 // voxels per LED pitch; also the vertical ring-to-ring step
	Height     float64 // total model height in voxels, (rings-1) * Pitch
	Overflow   bool    // the model is taller than the grid can hold; output will clip
	Placements []Placement
}

// Solve derives placements for every ring in the table.
//
// padding is the fraction of the grid edge reserved as a margin around the
// widest ring, in [0, 0.5). flip selects which end of the model ring 0
// occupies: when true the first ring is placed at the bottom (largest Y,
// since voxel row 0 renders at the top).
//
// A model taller than grid-2 voxels is not an error; the plan is returned
// with Overflow set and out-of-range rows clamp during rasterization.
func Solve(t rings.Table, grid int, padding float64, flip bool) (Plan, error) {
	if err := t.Validate(); err != nil {
		return Plan{}, err
	}
	if grid < 2 {
		return Plan{}, fmt.Errorf("grid size must be at least 2, got %d", grid)
	}
	if padding < 0 || padding >= 0.5 {
		return Plan{}, fmt.Errorf("padding must be in [0, 0.5), got %g", padding)
	}

	usable := float64(grid)/2 - float64(grid)*padding
	unitRadius := float64(t.MaxLEDs()) / (2 * math.Pi) // widest ring's radius in pitch units
	pitch := usable / unitRadius

	height := float64(len(t)-1) * pitch
	startY := (float64(grid) - height) / 2

	placements := make([]Placement, len(t))
	for i, s := range t {
		y := startY + float64(i)*pitch
		if flip {
			y = (startY + height) - float64(i)*pitch
		}
		placements[i] = Placement{
			Spec:   s,
			Radius: float64(s.LEDs) / (2 * math.Pi) * pitch,
			Y:      y,
		}
	}

	return Plan{
		Grid:       grid,
		Pitch:      pitch,
		Height:     height,
		Overflow:   height > float64(grid-2),
		Placements: placements,
	}, nil
}
