package raster

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
)

// Matrix is the flattened strip-per-ring projection of the fixture: one row
// per ring, each row Width columns wide. A zero entry means the column is
// unoccupied (channels are 1-based, so zero is never a valid channel).
type Matrix struct {
	Width int
	Rows  [][]int
}

// Flatten builds the 2D matrix from the channel blocks.
//
// Each ring's LEDs are spread over the closed interval [0, Width-1], so the
// first and last LED land exactly on the boundary columns. Channels are
// placed in generation order; a reversed ring then has its completed row
// mirrored end to end. After all rows are built, flip reverses the row order
// so ring 0 renders at the bottom.
//
// Unlike the voxel cube, which degrades gracefully through collisions, a ring
// wider than the matrix cannot be represented at all and is a fatal
// configuration error.
func Flatten(blocks []rings.Block, width int, flip bool) (*Matrix, error) {
	if width < 1 {
		return nil, fmt.Errorf("matrix width must be at least 1, got %d", width)
	}

	m := &Matrix{Width: width, Rows: make([][]int, 0, len(blocks))}
	for _, b := range blocks {
		n := b.Spec.LEDs
		if n > width {
			return nil, fmt.Errorf("ring %d has %d LEDs but the matrix is only %d columns wide", b.Spec.Ring, n, width)
		}

		row := make([]int, width)
		for i := 0; i < n; i++ {
			pos := 0.0
			if n > 1 {
				pos = float64(i) * float64(width-1) / float64(n-1)
			}
			col := int(math.Round(pos))
			if col >= width {
				col = width - 1
			}
			row[col] = b.Start + i
		}
		if b.Spec.Reversed {
			reverseRow(row)
		}
		m.Rows = append(m.Rows, row)
	}

	if flip {
		for i, j := 0, len(m.Rows)-1; i < j; i, j = i+1, j-1 {
			m.Rows[i], m.Rows[j] = m.Rows[j], m.Rows[i]
		}
	}
	return m, nil
}

// CustomModel renders the matrix as the xLights CustomModel attribute value:
// cells joined by comma, rows by semicolon, empty fields for unoccupied
// columns.
func (m *Matrix) CustomModel() string {
	var sb strings.Builder
	sb.Grow(len(m.Rows) * (m.Width + 1))

	for r, row := range m.Rows {
		if r > 0 {
			sb.WriteByte(';')
		}
		for c, ch := range row {
			if c > 0 {
				sb.WriteByte(',')
			}
			if ch != 0 {
				sb.WriteString(strconv.Itoa(ch))
			}
		}
	}
	return sb.String()
}

func reverseRow(row []int) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}
