package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/layout"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/raster"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/sink"
)

// Runner executes the generation pipeline. It is stateless apart from its
// logger; a single Runner can serve any number of runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the full pipeline: assign channels, flatten the 2D matrix,
// solve the 3D geometry, rasterize the voxel cube, and render all three
// artifacts.
//
// The matrix is flattened first because an over-wide ring is the only fatal
// configuration error; failing before the expensive voxel work means a bad
// config aborts with nothing rendered. Degraded-output conditions (height
// overflow, voxel collisions) are logged, appended to Result.Warnings, and
// never abort the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger.With("run", uuid.NewString()[:8])

	cfg := opts.Config
	result := &Result{Artifacts: make(map[string][]byte, 3)}

	// Stage 1: channel assignment.
	result.Blocks = cfg.Table.Blocks()
	result.Stats.Rings = len(result.Blocks)
	result.Stats.Channels = cfg.Table.TotalLEDs()
	logger.Info("assigned channels",
		"rings", result.Stats.Rings,
		"channels", result.Stats.Channels)

	// Stage 2: flatten the 2D matrix (the only fatal configuration check).
	matrix, err := raster.Flatten(result.Blocks, cfg.MatrixWidth, cfg.FlipVertically)
	if err != nil {
		return nil, err
	}

	// Stage 3: solve 3D geometry.
	solveStart := time.Now()
	plan, err := layout.Solve(cfg.Table, cfg.GridSize, opts.Padding, cfg.FlipVertically)
	if err != nil {
		return nil, fmt.Errorf("solve geometry: %w", err)
	}
	result.Plan = plan
	result.Stats.SolveTime = time.Since(solveStart)
	logger.Info("solved geometry",
		"pitch", fmt.Sprintf("%.2f", plan.Pitch),
		"height", fmt.Sprintf("%.1f", plan.Height),
		"duration", result.Stats.SolveTime)
	if plan.Overflow {
		w := fmt.Sprintf("model height %.1f voxels exceeds grid %d; output will be clipped, increase grid size", plan.Height, cfg.GridSize)
		logger.Warn(w)
		result.Warnings = append(result.Warnings, w)
	}

	// Stage 4: rasterize the voxel cube. This is the only stage whose cost
	// grows with the cube of the grid size, so honor cancellation before it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rasterStart := time.Now()
	grid, err := raster.Rasterize(plan, result.Blocks)
	if err != nil {
		return nil, fmt.Errorf("rasterize voxels: %w", err)
	}
	result.Stats.Voxels = len(grid.Cells)
	result.Stats.Collisions = grid.Collisions
	result.Stats.RasterTime = time.Since(rasterStart)
	logger.Info("rasterized voxels",
		"cells", result.Stats.Voxels,
		"collisions", grid.Collisions,
		"duration", result.Stats.RasterTime)
	if grid.Collisions > 0 {
		w := fmt.Sprintf("%d LEDs share a voxel cell with another LED (last writer wins)", grid.Collisions)
		logger.Warn(w)
		result.Warnings = append(result.Warnings, w)
	}

	// Stage 5: render artifacts.
	renderStart := time.Now()
	model3D, err := sink.RenderXModel(sink.Model{
		Name:   cfg.Name + " 3D",
		Width:  cfg.GridSize,
		Height: cfg.GridSize,
		Depth:  cfg.GridSize,
		Data:   grid.CustomModel(),
	})
	if err != nil {
		return nil, err
	}
	model2D, err := sink.RenderXModel(sink.Model{
		Name:   cfg.Name + " 2D",
		Width:  cfg.MatrixWidth,
		Height: len(cfg.Table),
		Depth:  1,
		Data:   matrix.CustomModel(),
	})
	if err != nil {
		return nil, err
	}
	report, err := sink.RenderCSV(result.Blocks)
	if err != nil {
		return nil, fmt.Errorf("render wiring report: %w", err)
	}
	result.Artifacts[ArtifactModel3D] = model3D
	result.Artifacts[ArtifactModel2D] = model2D
	result.Artifacts[ArtifactCSV] = report
	result.Stats.RenderTime = time.Since(renderStart)
	logger.Info("rendered artifacts",
		"formats", []string{ArtifactModel3D, ArtifactModel2D, ArtifactCSV},
		"duration", result.Stats.RenderTime)

	return result, nil
}
