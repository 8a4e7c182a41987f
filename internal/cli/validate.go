package cli

import (
	"github.com/spf13/cobra"

	"github.com/permlens/permlens/pkg/graph"
)

// newValidateCmd creates the validate command, a structural check for
// graph files before they are laid out or uploaded.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [graph.json]",
		Short: "Check a permission graph file for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadFile(args[0])
			if err != nil {
				return err
			}

			m := graph.NewModel(graph.Normalize(g))
			printSuccess("%s is valid", args[0])
			printStats(m.NodeCount(), m.EdgeCount())

			dangling := 0
			for _, e := range m.Edges() {
				_, okS := m.Node(e.Source)
				_, okD := m.Node(e.Target)
				if !okS || !okD {
					dangling++
				}
			}
			if dangling > 0 {
				printWarning("%d edge(s) reference missing nodes and will be skipped when rendering", dangling)
			}

			if cycles := graph.FindCycleEdges(m); len(cycles) > 0 {
				for _, i := range cycles {
					e := m.Edges()[i]
					printWarning("cycle through %s -> %s: a permission chain grants access back to itself", e.Source, e.Target)
				}
			}
			return nil
		},
	}
}
