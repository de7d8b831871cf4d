package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/layout"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/pipeline"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/rings"
	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/sink"
)

// newInspectCmd creates the inspect command. It prints the channel table and
// the solved geometry to the terminal without writing any files, which is
// handy when wiring the fixture or checking a config change.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [config.toml]",
		Short: "Print the channel table and solved geometry without writing files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			return runInspect(cfg)
		},
	}
}

func runInspect(cfg rings.Config) error {
	plan, err := layout.Solve(cfg.Table, cfg.GridSize, pipeline.DefaultPadding, cfg.FlipVertically)
	if err != nil {
		return err
	}
	blocks := cfg.Table.Blocks()

	fmt.Println(styleTitle.Render(cfg.Name))
	printDetail("grid %d³, matrix %d wide, flip=%v", cfg.GridSize, cfg.MatrixWidth, cfg.FlipVertically)
	printDetail("pitch %.2f voxels/LED, model height %.1f voxels", plan.Pitch, plan.Height)
	if plan.Overflow {
		printWarning("model height %.1f exceeds grid %d; 3D output will be clipped", plan.Height, cfg.GridSize)
	}
	fmt.Println()

	// Pad before styling: styled strings carry ANSI escapes that would throw
	// off %-Ns column widths.
	header := fmt.Sprintf("%-5s %-17s %6s %11s %8s %8s", "Ring", "Direction", "LEDs", "Channels", "Radius", "Y")
	fmt.Println(styleDim.Render(header))
	for i, b := range blocks {
		p := plan.Placements[i]
		row := fmt.Sprintf("%-5d %-17s %6d %11s %8.1f %8.1f",
			b.Spec.Ring,
			sink.DirectionLabel(b.Spec.Reversed),
			b.Spec.LEDs,
			fmt.Sprintf("%d-%d", b.Start, b.End),
			p.Radius,
			p.Y,
		)
		fmt.Println(row)
	}
	fmt.Println()
	printDetail("%d rings, %d channels total", len(blocks), cfg.Table.TotalLEDs())
	return nil
}
