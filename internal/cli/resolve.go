package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fxui/popper/pkg/popper"
)

// resolveCommand creates the resolve command, which computes clipped
// viewport coordinates for one or more placements without a live host.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		scenarioPath string
		placements   []string
		offset       float64

		viewport  = Size{Width: 1920, Height: 1080}
		reference Box
		popperBox = Size{Width: 100, Height: 40}
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve placements to viewport coordinates",
		Long: `Resolve computes the clipped viewport coordinate for each requested
placement given reference geometry, popper size, viewport size, and offset.

Geometry comes from flags or from a TOML scenario file (--scenario);
flags are ignored when a scenario is given. Without --placement, all
twelve placements are resolved.`,
		Example: `  popper resolve --ref-left 450 --ref-top 450 --ref-width 100 --ref-height 100 \
      --popper-width 50 --popper-height 50 --viewport-width 1000 --viewport-height 1000 \
      --placement bottom-start
  popper resolve --scenario examples/centered.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := &Scenario{
				Offset:     offset,
				Placements: placements,
				Viewport:   viewport,
				Reference:  reference,
				Popper:     popperBox,
			}
			if scenarioPath != "" {
				loaded, err := LoadScenario(scenarioPath)
				if err != nil {
					return err
				}
				scenario = loaded
			} else if err := scenario.Validate(); err != nil {
				return err
			}

			c.Logger.Debug("resolving placements",
				"viewport", fmt.Sprintf("%gx%g", scenario.Viewport.Width, scenario.Viewport.Height),
				"offset", scenario.Offset)

			out := cmd.OutOrStdout()
			for _, placement := range scenario.ResolvedPlacements() {
				coord := popper.Resolve(scenario.Context(placement))
				fmt.Fprintf(out, "%s  %s %s\n",
					StyleValue.Render(fmt.Sprintf("%-13s", placement)),
					StyleNumber.Render(fmt.Sprintf("x=%g", coord.X)),
					StyleNumber.Render(fmt.Sprintf("y=%g", coord.Y)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "TOML scenario file")
	cmd.Flags().StringSliceVar(&placements, "placement", nil, "placement token (repeatable; default: all twelve)")
	cmd.Flags().Float64Var(&offset, "offset", 0, "offset distance in pixels")
	cmd.Flags().Float64Var(&viewport.Width, "viewport-width", viewport.Width, "viewport width in pixels")
	cmd.Flags().Float64Var(&viewport.Height, "viewport-height", viewport.Height, "viewport height in pixels")
	cmd.Flags().Float64Var(&reference.Left, "ref-left", 0, "reference left edge")
	cmd.Flags().Float64Var(&reference.Top, "ref-top", 0, "reference top edge")
	cmd.Flags().Float64Var(&reference.Width, "ref-width", 0, "reference width")
	cmd.Flags().Float64Var(&reference.Height, "ref-height", 0, "reference height")
	cmd.Flags().Float64Var(&popperBox.Width, "popper-width", popperBox.Width, "popper width")
	cmd.Flags().Float64Var(&popperBox.Height, "popper-height", popperBox.Height, "popper height")

	return cmd
}
