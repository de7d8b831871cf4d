// Package rings defines the ring table that drives all layout computation.
//
// An Atlas fixture is a stack of horizontal LED rings. Each ring is described
// by a [Spec]: its id (which fixes the vertical stacking order), the number of
// addressable LEDs on its circumference, and the wiring direction. The full
// ordered set of specs is the sole input to the geometry solver and both
// rasterizers.
//
// Channel numbering is a fold over the table: each ring owns a contiguous
// 1-based block of channels, assigned in ascending ring-id order. Wiring
// direction and vertical flip never change which channels a ring owns, only
// how they map onto physical positions.
package rings

import (
	"fmt"
	"sort"
)

// Spec describes one horizontal ring of LEDs.
type Spec struct {
	Ring     int  // ring id, positive and unique; defines stacking order
	LEDs     int  // addressable LEDs on the circumference
	Reversed bool // zigzag wiring: data enters at the far end of the ring
}

// Table is an ordered set of ring specs, ascending by ring id.
type Table []Spec

// Block is the contiguous range of global channels owned by one ring.
// Channels are 1-based and inclusive on both ends.
type Block struct {
	Spec  Spec
	Start int
	End   int
}

// Count returns the number of channels in the block.
func (b Block) Count() int { return b.End - b.Start + 1 }

// New builds a table from specs, sorting by ring id and validating.
func New(specs []Spec) (Table, error) {
	t := make(Table, len(specs))
	copy(t, specs)
	sort.Slice(t, func(i, j int) bool { return t[i].Ring < t[j].Ring })
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that the table is non-empty, sorted by ring id, and that
// every spec has a positive unique id and a positive LED count.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("ring table is empty")
	}
	for i, s := range t {
		if s.Ring <= 0 {
			return fmt.Errorf("ring id must be positive, got %d", s.Ring)
		}
		if s.LEDs <= 0 {
			return fmt.Errorf("ring %d: LED count must be positive, got %d", s.Ring, s.LEDs)
		}
		if i > 0 && s.Ring <= t[i-1].Ring {
			return fmt.Errorf("ring ids must be unique and ascending: %d follows %d", s.Ring, t[i-1].Ring)
		}
	}
	return nil
}

// MaxLEDs returns the LED count of the widest ring (the equator).
func (t Table) MaxLEDs() int {
	max := 0
	for _, s := range t {
		if s.LEDs > max {
			max = s.LEDs
		}
	}
	return max
}

// TotalLEDs returns the number of LEDs across all rings, which equals the
// highest assigned channel.
func (t Table) TotalLEDs() int {
	total := 0
	for _, s := range t {
		total += s.LEDs
	}
	return total
}

// Blocks folds the table into per-ring channel blocks. The first ring starts
// at channel 1 and each subsequent ring starts right after the previous one,
// so blocks are contiguous and non-overlapping by construction.
func (t Table) Blocks() []Block {
	blocks := make([]Block, len(t))
	next := 1
	for i, s := range t {
		blocks[i] = Block{Spec: s, Start: next, End: next + s.LEDs - 1}
		next += s.LEDs
	}
	return blocks
}
