package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/permlens/permlens/pkg/errors"
	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/layout"
)

// newLayoutCmd creates the layout command. It computes node positions,
// connection sides, and the fit transform for a graph, and writes the
// result as JSON for later rendering or inspection.
func newLayoutCmd(configPath *string) *cobra.Command {
	var (
		flags  diagramFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a diagram layout for a permission graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			opts, vp, _, err := resolveOptions(*configPath, &flags)
			if err != nil {
				return err
			}

			g, err := graph.ReadFile(args[0])
			if err != nil {
				return err
			}
			m := graph.NewModel(graph.Normalize(g))
			logger.Debug("loaded graph", "nodes", m.NodeCount(), "edges", m.EdgeCount())

			p := newProgress(logger)
			res, err := layout.Compute(cmd.Context(), m, opts, vp)
			if err != nil {
				return errors.Wrap(errors.ErrCodeLayoutFailed, err, "layout of %s", args[0])
			}
			p.done(fmt.Sprintf("Laid out %d nodes", len(res.Nodes)))

			if output == "" {
				data, err := layout.MarshalResult(res)
				if err != nil {
					return err
				}
				data = append(data, '\n')
				_, err = os.Stdout.Write(data)
				return err
			}

			if err := layout.WriteResultFile(res, output); err != nil {
				return err
			}
			printSuccess("Layout written")
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
