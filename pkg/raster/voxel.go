// Package raster converts solved ring geometry into discrete output grids:
// a 3D voxel cube for the volumetric model and a flat strip-per-ring matrix
// for the 2D model. Both consume the same channel blocks, so the numbering in
// the two outputs can never drift apart.
package raster

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/layout"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
)

// Cell addresses one voxel in the cube.
type Cell struct {
	X, Y, Z int
}

// VoxelGrid maps occupied cells to global channel numbers.
type VoxelGrid struct {
	Size  int
	Cells map[Cell]int

	// Collisions counts LEDs whose cell was already occupied when they were
	// written. The later LED wins; the earlier one is lost from the model.
	// This is a known precision artifact of the grid resolution, not an error.
	Collisions int
}

// Rasterize projects every ring of the plan onto the voxel cube.
//
// For each ring, LED angles are evenly spaced over [0, 2π) starting at angle
// zero; the half-open interval avoids a duplicate point at the seam.
// Coordinates round to the nearest cell and clamp to the grid on all three
// axes. A reversed ring keeps its channel block but hands out offsets back to
// front, so reversal permutes slots without changing the channel set.
//
// Cells are written in ring order, then angle order; on collision the last
// writer wins and the collision counter increments.
func Rasterize(p layout.Plan, blocks []rings.Block) (*VoxelGrid, error) {
	if len(blocks) != len(p.Placements) {
		return nil, fmt.Errorf("got %d channel blocks for %d placements", len(blocks), len(p.Placements))
	}

	g := &VoxelGrid{Size: p.Grid, Cells: make(map[Cell]int)}
	center := float64(p.Grid) / 2

	for i, pl := range p.Placements {
		block := blocks[i]
		n := pl.Spec.LEDs
		y := clamp(int(math.Round(pl.Y)), 0, p.Grid-1)

		for idx := 0; idx < n; idx++ {
			theta := 2 * math.Pi * float64(idx) / float64(n)
			x := clamp(int(math.Round(center+pl.Radius*math.Cos(theta))), 0, p.Grid-1)
			z := clamp(int(math.Round(center+pl.Radius*math.Sin(theta))), 0, p.Grid-1)

			offset := idx
			if pl.Spec.Reversed {
				offset = n - 1 - idx
			}

			cell := Cell{X: x, Y: y, Z: z}
			if _, occupied := g.Cells[cell]; occupied {
				g.Collisions++
			}
			g.Cells[cell] = block.Start + offset
		}
	}
	return g, nil
}

// CustomModel renders the cube as the xLights CustomModel attribute value:
// cells joined by comma, rows by semicolon, planes by pipe, enumerating all
// Size³ cells x-fastest, y-next, z-slowest, with empty fields for unoccupied
// cells.
func (g *VoxelGrid) CustomModel() string {
	var sb strings.Builder
	// Worst case one digit-bearing cell per position plus delimiters.
	sb.Grow(g.Size*g.Size*g.Size + 8*len(g.Cells))

	for z := 0; z < g.Size; z++ {
		if z > 0 {
			sb.WriteByte('|')
		}
		for y := 0; y < g.Size; y++ {
			if y > 0 {
				sb.WriteByte(';')
			}
			for x := 0; x < g.Size; x++ {
				if x > 0 {
					sb.WriteByte(',')
				}
				if ch, ok := g.Cells[Cell{X: x, Y: y, Z: z}]; ok {
					sb.WriteString(strconv.Itoa(ch))
				}
			}
		}
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
