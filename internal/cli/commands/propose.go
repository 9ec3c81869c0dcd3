package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/hearthplan/internal/config"
	"github.com/mistakeknot/hearthplan/internal/design"
	"github.com/mistakeknot/hearthplan/internal/report"
)

const defaultRooms = "3 bedrooms,2 bathrooms,open kitchen,living room"

type proposeOptions struct {
	Brief       string
	Images      string
	Rooms       string
	PlotWidth   float64
	PlotDepth   float64
	Slope       string
	Climate     string
	Orientation string
	JSON        bool
}

// ProposeCmd builds the root command: one invocation, one proposal.
func ProposeCmd() *cobra.Command {
	var opts proposeOptions
	cmd := &cobra.Command{
		Use:   "hearthplan",
		Short: "Generate a detailed house design proposal",
		Long: `hearthplan turns a written design brief into a structured house-design
concept: inferred architectural style, exterior and interior finishes,
feature ideas, and site and room planning notes.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if err != nil {
					err = wrapCommandError("propose", err)
				}
			}()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, cfg, &opts)

			proposal := design.Propose(design.UserInputs{
				Brief:             opts.Brief,
				ImageDescriptions: design.SplitList(opts.Images),
				RequiredRooms:     design.SplitList(opts.Rooms),
				Plot: design.PlotDetails{
					WidthM:      opts.PlotWidth,
					DepthM:      opts.PlotDepth,
					Slope:       opts.Slope,
					Climate:     opts.Climate,
					Orientation: opts.Orientation,
				},
			})
			if opts.JSON {
				return writeJSON(cmd, proposal)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Render(proposal))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Brief, "brief", "", "Written description of desired house style and goals")
	flags.StringVar(&opts.Images, "images", "", "Comma-separated image descriptors (e.g. 'dark roof, white facade, stone porch')")
	flags.StringVar(&opts.Rooms, "rooms", defaultRooms, "Comma-separated required rooms/spaces")
	flags.Float64Var(&opts.PlotWidth, "plot-width", 15.0, "Plot width in meters")
	flags.Float64Var(&opts.PlotDepth, "plot-depth", 30.0, "Plot depth in meters")
	flags.StringVar(&opts.Slope, "slope", "flat", "Plot slope description")
	flags.StringVar(&opts.Climate, "climate", "temperate", "Climate description")
	flags.StringVar(&opts.Orientation, "orientation", "north-facing street", "Street orientation")
	flags.BoolVar(&opts.JSON, "json", false, "Print output as JSON")
	_ = cmd.MarkFlagRequired("brief")
	return cmd
}

// applyConfigDefaults replaces built-in defaults with config values for
// flags the user did not set explicitly.
func applyConfigDefaults(cmd *cobra.Command, cfg config.Config, opts *proposeOptions) {
	flags := cmd.Flags()
	if !flags.Changed("rooms") && len(cfg.Rooms) > 0 {
		opts.Rooms = strings.Join(cfg.Rooms, ",")
	}
	if !flags.Changed("plot-width") && cfg.PlotWidth > 0 {
		opts.PlotWidth = cfg.PlotWidth
	}
	if !flags.Changed("plot-depth") && cfg.PlotDepth > 0 {
		opts.PlotDepth = cfg.PlotDepth
	}
	if !flags.Changed("slope") && cfg.Slope != "" {
		opts.Slope = cfg.Slope
	}
	if !flags.Changed("climate") && cfg.Climate != "" {
		opts.Climate = cfg.Climate
	}
	if !flags.Changed("orientation") && cfg.Orientation != "" {
		opts.Orientation = cfg.Orientation
	}
}
