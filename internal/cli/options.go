package cli

import (
	"github.com/spf13/cobra"

	"github.com/permlens/permlens/pkg/config"
	"github.com/permlens/permlens/pkg/errors"
	"github.com/permlens/permlens/pkg/layout"
)

// diagramFlags are the layout-shaping flags shared by the layout, render,
// and view commands. Empty values defer to the config file.
type diagramFlags struct {
	direction string
	strategy  string
	width     string
	height    string
	seed      uint64
}

func (f *diagramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "rank direction: TB (default), LR, BT, RL")
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "layout strategy: hierarchical (default), grid-scatter")
	cmd.Flags().StringVar(&f.width, "width", "", "viewport width (e.g. 800 or 800px)")
	cmd.Flags().StringVar(&f.height, "height", "", "viewport height")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "jitter seed for grid-scatter")
}

// resolveOptions merges the config file with command-line flag overrides.
func resolveOptions(configPath string, f *diagramFlags) (layout.Options, layout.Viewport, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return layout.Options{}, layout.Viewport{}, config.Config{}, err
	}

	opts, err := cfg.LayoutOptions()
	if err != nil {
		return layout.Options{}, layout.Viewport{}, config.Config{}, err
	}

	if f.direction != "" {
		dir, err := layout.ParseDirection(f.direction)
		if err != nil {
			return layout.Options{}, layout.Viewport{}, config.Config{}, errors.Wrap(errors.ErrCodeInvalidDirection, err, "--direction")
		}
		opts.Direction = dir
	}
	if f.strategy != "" {
		strat, err := layout.ParseStrategy(f.strategy)
		if err != nil {
			return layout.Options{}, layout.Viewport{}, config.Config{}, errors.Wrap(errors.ErrCodeInvalidStrategy, err, "--strategy")
		}
		opts.Strategy = strat
	}
	if f.seed != 0 {
		opts.Seed = f.seed
	}

	vp := cfg.Viewport()
	if f.width != "" || f.height != "" {
		override := layout.ResolveViewport(f.width, f.height)
		if f.width != "" {
			vp.Width = override.Width
		}
		if f.height != "" {
			vp.Height = override.Height
		}
	}

	return opts, vp, cfg, nil
}
