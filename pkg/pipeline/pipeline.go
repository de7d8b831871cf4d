// Package pipeline runs the complete channels → solve → rasterize → render
// sequence and returns the three output artifacts as bytes.
//
// The pipeline is a deterministic batch transform: the same configuration
// always produces the same artifacts. There is no caching and no incremental
// recomputation; a full run takes well under a second even for the largest
// grids the format supports.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Config: rings.Default()})
//	if err != nil {
//	    return err
//	}
//	model3D := result.Artifacts[pipeline.ArtifactModel3D]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/layout"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
)

// Artifact keys in [Result.Artifacts].
const (
	ArtifactModel3D = "model3d"
	ArtifactModel2D = "model2d"
	ArtifactCSV     = "csv"
)

// DefaultPadding is the fraction of the grid edge reserved as a margin
// around the widest ring.
const DefaultPadding = 0.1

// Options configures a pipeline run.
type Options struct {
	// Config is the fixture description: ring table plus scalar parameters.
	Config rings.Config

	// Padding is the grid-edge margin fraction, in [0, 0.5).
	// Zero means DefaultPadding.
	Padding float64

	// Logger receives stage progress and degraded-output warnings.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.Padding < 0 || o.Padding >= 0.5 {
		return fmt.Errorf("padding must be in [0, 0.5), got %g", o.Padding)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Stats contains timing and size information for a run.
type Stats struct {
	Rings      int
	Channels   int // total assigned channels, equals the LED count
	Voxels     int // occupied cells in the 3D grid
	Collisions int // LEDs lost to cell collisions
	SolveTime  time.Duration
	RasterTime time.Duration
	RenderTime time.Duration
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifacts holds the rendered outputs keyed by the Artifact* constants.
	Artifacts map[string][]byte

	// Blocks is the per-ring channel assignment shared by every artifact.
	Blocks []rings.Block

	// Plan is the solved geometry, kept for inspection output.
	Plan layout.Plan

	// Warnings lists degraded-output conditions. The run still produced all
	// artifacts; these are for the operator.
	Warnings []string

	Stats Stats
}
