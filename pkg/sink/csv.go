package sink

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
)

// Wiring direction labels as they appear in the CSV report.
const (
	DirectionForward  = "Normal ( ---> )"
	DirectionReversed = "Reverse ( <--- )"
)

// DirectionLabel returns the report label for a wiring direction.
func DirectionLabel(reversed bool) string {
	if reversed {
		return DirectionReversed
	}
	return DirectionForward
}

// RenderCSV serializes the wiring report: one row per ring in ring-id order
// with its direction and channel range. Row order is fixed regardless of the
// vertical flip; the report describes wiring, not display orientation.
func RenderCSV(blocks []rings.Block) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(blocks)+1)
	records = append(records, []string{"Ring", "Direction", "LED Count", "Start Channel", "End Channel"})
	for _, b := range blocks {
		records = append(records, []string{
			strconv.Itoa(b.Spec.Ring),
			DirectionLabel(b.Spec.Reversed),
			strconv.Itoa(b.Spec.LEDs),
			strconv.Itoa(b.Start),
			strconv.Itoa(b.End),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
