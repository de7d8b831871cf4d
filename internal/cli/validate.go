package cli

import (
	"github.com/spf13/cobra"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/layout"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/pipeline"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/raster"
)

// newValidateCmd creates the validate command. It runs every check the
// pipeline would run, including the fatal matrix-width check, but renders
// nothing and writes nothing.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config.toml]",
		Short: "Check a fixture configuration without generating files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := loadConfig(path)
			if err != nil {
				printError("%v", err)
				return err
			}

			blocks := cfg.Table.Blocks()
			if _, err := raster.Flatten(blocks, cfg.MatrixWidth, cfg.FlipVertically); err != nil {
				printError("%v", err)
				return err
			}

			plan, err := layout.Solve(cfg.Table, cfg.GridSize, pipeline.DefaultPadding, cfg.FlipVertically)
			if err != nil {
				printError("%v", err)
				return err
			}
			if plan.Overflow {
				printWarning("model height %.1f exceeds grid %d; 3D output will be clipped", plan.Height, cfg.GridSize)
			}

			printSuccess("%s: %d rings, %d channels, configuration valid",
				cfg.Name, len(blocks), cfg.Table.TotalLEDs())
			return nil
		},
	}
}
