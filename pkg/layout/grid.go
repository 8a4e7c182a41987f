package layout

import (
	"math"
	"math/rand/v2"

	"github.com/permlens/permlens/pkg/graph"
)

// gridScatter places nodes on a square grid with a small seeded jitter.
// Cells are pre-spaced wider than the footprint, so there is no
// collision-avoidance obligation and the jitter never pushes a node into
// a neighboring cell.
func gridScatter(nodes []graph.Node, opts Options) []PositionedNode {
	positioned := make([]PositionedNode, len(nodes))
	if len(nodes) == 0 {
		return positioned
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(nodes)))))
	cellW := opts.NodeWidth + opts.NodeSep
	cellH := opts.NodeHeight + opts.RankSep
	jitter := math.Min(opts.NodeSep, opts.RankSep) / 3

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	for i, n := range nodes {
		col := i % cols
		row := i / cols
		positioned[i] = PositionedNode{
			Node: n,
			X:    opts.Margin + float64(col)*cellW + opts.NodeWidth/2 + (rng.Float64()*2-1)*jitter,
			Y:    opts.Margin + float64(row)*cellH + opts.NodeHeight/2 + (rng.Float64()*2-1)*jitter,
		}
	}
	return positioned
}
