package layout

import (
	"math"
	"testing"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
)

const eps = 1e-9

func testTable(counts ...int) rings.Table {
	t := make(rings.Table, len(counts))
	for i, c := range counts {
		t[i] = rings.Spec{Ring: i + 1, LEDs: c}
	}
	return t
}

func TestSolveErrors(t *testing.T) {
	valid := testTable(10, 20)

	tests := []struct {
		name    string
		table   rings.Table
		grid    int
		padding float64
	}{
		{"empty table", rings.Table{}, 64, 0.1},
		{"grid too small", valid, 1, 0.1},
		{"negative padding", valid, 64, -0.1},
		{"padding eats whole grid", valid, 64, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Solve(tt.table, tt.grid, tt.padding, false); err == nil {
				t.Errorf("Solve(%v, %d, %g) accepted invalid input", tt.table, tt.grid, tt.padding)
			}
		})
	}
}

// The defining property of the solver: one scale factor serves both axes, so
// the vertical ring-to-ring step equals the horizontal LED pitch exactly.
func TestSolveUnitAspectRatio(t *testing.T) {
	plan, err := Solve(testTable(40, 60, 80, 60, 40), 100, 0.1, false)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	for i := 1; i < len(plan.Placements); i++ {
		step := plan.Placements[i].Y - plan.Placements[i-1].Y
		if math.Abs(step-plan.Pitch) > eps {
			t.Errorf("step between rings %d and %d = %g, want pitch %g", i-1, i, step, plan.Pitch)
		}
	}

	// Horizontal pitch on the equator: circumference / led count.
	equator := plan.Placements[2]
	horizontal := 2 * math.Pi * equator.Radius / float64(equator.Spec.LEDs)
	if math.Abs(horizontal-plan.Pitch) > eps {
		t.Errorf("horizontal LED pitch = %g, want vertical step %g", horizontal, plan.Pitch)
	}
}

func TestSolveEquatorFillsUsableRadius(t *testing.T) {
	const grid, padding = 120, 0.1
	plan, err := Solve(testTable(53, 81, 53), grid, padding, false)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	usable := float64(grid)/2 - float64(grid)*padding
	if r := plan.Placements[1].Radius; math.Abs(r-usable) > eps {
		t.Errorf("equator radius = %g, want usable radius %g", r, usable)
	}
	// Narrower rings scale linearly with their LED count.
	want := usable * 53.0 / 81.0
	if r := plan.Placements[0].Radius; math.Abs(r-want) > eps {
		t.Errorf("ring 1 radius = %g, want %g", r, want)
	}
}

func TestSolveVerticalCentering(t *testing.T) {
	const grid = 100
	plan, err := Solve(testTable(30, 40, 50, 40, 30), grid, 0.1, false)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	top := plan.Placements[0].Y
	bottom := plan.Placements[len(plan.Placements)-1].Y
	mid := (top + bottom) / 2
	if math.Abs(mid-float64(grid)/2) > eps {
		t.Errorf("model midpoint = %g, want grid center %g", mid, float64(grid)/2)
	}
}

// Flipping places ring i where ring n-1-i sat, and flipping twice is a no-op
// by the same equality.
func TestSolveFlipMirrorsPlacements(t *testing.T) {
	table := testTable(20, 40, 60, 35)
	straight, err := Solve(table, 80, 0.1, false)
	if err != nil {
		t.Fatalf("Solve(flip=false) error = %v", err)
	}
	flipped, err := Solve(table, 80, 0.1, true)
	if err != nil {
		t.Fatalf("Solve(flip=true) error = %v", err)
	}

	n := len(table)
	for i := 0; i < n; i++ {
		want := straight.Placements[n-1-i].Y
		if got := flipped.Placements[i].Y; math.Abs(got-want) > eps {
			t.Errorf("flipped ring %d Y = %g, want %g", i, got, want)
		}
		// Radius is unaffected by the flip.
		if got, want := flipped.Placements[i].Radius, straight.Placements[i].Radius; got != want {
			t.Errorf("flipped ring %d radius = %g, want %g", i, got, want)
		}
	}
}

func TestSolveOverflowWarning(t *testing.T) {
	// 30 rings of nearly equal width: tall and narrow, cannot fit a small grid.
	counts := make([]int, 30)
	for i := range counts {
		counts[i] = 60
	}
	plan, err := Solve(testTable(counts...), 40, 0.1, false)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !plan.Overflow {
		t.Errorf("Overflow = false for height %g in grid 40", plan.Height)
	}

	// A squat model must not warn.
	plan, err = Solve(testTable(40, 80, 40), 100, 0.1, false)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if plan.Overflow {
		t.Errorf("Overflow = true for height %g in grid 100", plan.Height)
	}
}

func TestSolveSingleRing(t *testing.T) {
	plan, err := Solve(testTable(24), 50, 0.1, true)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if plan.Height != 0 {
		t.Errorf("single-ring height = %g, want 0", plan.Height)
	}
	if y := plan.Placements[0].Y; math.Abs(y-25) > eps {
		t.Errorf("single ring Y = %g, want grid center 25", y)
	}
}
