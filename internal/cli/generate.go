package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/pipeline"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output  string  // base path for the three output files
	grid    int     // grid size override
	width   int     // matrix width override
	flip    bool    // vertical flip override
	padding float64 // grid-edge margin fraction
}

// newGenerateCmd creates the generate command, the main entry point of the
// tool. It loads the fixture configuration (or the built-in Atlas v2 table),
// runs the pipeline, and writes the three descriptor files.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [config.toml]",
		Short: "Generate the 3D/2D xmodel files and the CSV wiring report",
		Long: `Generate the descriptor files for an Atlas fixture.

Without an argument the built-in Atlas v2 ring table is used. With a TOML
config file the ring table and parameters come from the file; the --grid,
--matrix-width and --flip flags override individual parameters.

Three files are written next to each other:

  <base>_3D.xmodel   voxel custom model (grid x grid x grid)
  <base>_2D.xmodel   flattened matrix custom model (width x rings)
  <base>.csv         wiring report with per-ring channel ranges

A ring with more LEDs than the matrix is wide is a fatal configuration
error and aborts before any file is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runGenerate(cmd, path, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "base path for output files (default: fixture name)")
	cmd.Flags().IntVar(&opts.grid, "grid", 0, "override the 3D grid size")
	cmd.Flags().IntVar(&opts.width, "matrix-width", 0, "override the 2D matrix width")
	cmd.Flags().BoolVar(&opts.flip, "flip", false, "override vertical flip (ring 1 at the bottom)")
	cmd.Flags().Float64Var(&opts.padding, "padding", pipeline.DefaultPadding, "grid-edge margin as a fraction of the grid size")

	return cmd
}

func runGenerate(cmd *cobra.Command, configPath string, opts *generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("grid") {
		cfg.GridSize = opts.grid
	}
	if cmd.Flags().Changed("matrix-width") {
		cfg.MatrixWidth = opts.width
	}
	if cmd.Flags().Changed("flip") {
		cfg.FlipVertically = opts.flip
	}

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Config:  cfg,
		Padding: opts.padding,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	base := opts.output
	if base == "" {
		base = defaultBase(cfg.Name)
	}
	paths := outputPaths(base)
	for _, key := range []string{pipeline.ArtifactModel3D, pipeline.ArtifactModel2D, pipeline.ArtifactCSV} {
		path := paths[key]
		if err := os.WriteFile(path, result.Artifacts[key], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printSuccess("wrote %s", styleValue.Render(path))
	}

	for _, w := range result.Warnings {
		printWarning("%s", w)
	}
	printDetail("%d rings, %d channels, %d voxels occupied",
		result.Stats.Rings, result.Stats.Channels, result.Stats.Voxels)
	return nil
}

// loadConfig reads a fixture config, falling back to the built-in Atlas v2
// table when no path is given.
func loadConfig(path string) (rings.Config, error) {
	if path == "" {
		return rings.Default(), nil
	}
	return rings.Load(path)
}
