package graph

// FindCycleEdges returns the edges that close directed cycles, as indexes
// into the edge slice. Permission models are expected to be acyclic (a
// group granting itself access through a chain is almost always a
// modeling mistake), but cyclic input still lays out and renders; this
// exists so validation can warn about it.
//
// Detection is a depth-first walk with three-color marking; the back
// edges found depend on node order but the count is stable for a given
// input.
func FindCycleEdges(m *Model) []int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, m.NodeCount())
	var backEdges []int

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, i := range m.TouchingEdges(id) {
			e := m.graph.Edges[i]
			if e.Source != id {
				continue
			}
			if _, ok := m.nodes[e.Target]; !ok {
				continue // dangling edges never close a cycle
			}
			switch color[e.Target] {
			case white:
				dfs(e.Target)
			case gray:
				backEdges = append(backEdges, i)
			}
		}
		color[id] = black
	}

	for _, n := range m.graph.Nodes {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	return backEdges
}
