package graph

import "fmt"

// Model is an indexed, in-process view of a [Graph]. It precomputes the
// adjacency maps needed by selection neighbor scans and drag-time edge
// lookups, so those operations cost O(edges touching a node) instead of a
// full edge scan.
//
// Model is not safe for concurrent use without external synchronization.
// The rendering pipeline is single-threaded, so none is applied here.
type Model struct {
	graph    Graph
	nodes    map[string]*Node
	touching map[string][]int // nodeID -> indexes into graph.Edges
}

// NewModel indexes g. Edges referencing unknown nodes are retained (they
// are skipped later at render time) but still indexed for their known
// endpoint, if any.
func NewModel(g Graph) *Model {
	m := &Model{
		graph:    g,
		nodes:    make(map[string]*Node, len(g.Nodes)),
		touching: make(map[string][]int),
	}
	for i := range g.Nodes {
		n := &m.graph.Nodes[i]
		m.nodes[n.ID] = n
	}
	for i, e := range g.Edges {
		if _, ok := m.nodes[e.Source]; ok {
			m.touching[e.Source] = append(m.touching[e.Source], i)
		}
		if _, ok := m.nodes[e.Target]; ok && e.Target != e.Source {
			m.touching[e.Target] = append(m.touching[e.Target], i)
		}
	}
	return m
}

// Graph returns the underlying graph.
func (m *Model) Graph() Graph { return m.graph }

// Node returns the node with the given ID and true, or nil and false.
func (m *Model) Node(id string) (*Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Nodes returns the node slice in input order.
func (m *Model) Nodes() []Node { return m.graph.Nodes }

// Edges returns the edge slice in input order.
func (m *Model) Edges() []Edge { return m.graph.Edges }

// NodeCount returns the number of nodes.
func (m *Model) NodeCount() int { return len(m.graph.Nodes) }

// EdgeCount returns the number of edges.
func (m *Model) EdgeCount() int { return len(m.graph.Edges) }

// TouchingEdges returns the indexes of edges having id as either endpoint.
// This is the drag-tick lookup: only these edges are re-routed when the
// node moves. The returned slice is a read-only view.
func (m *Model) TouchingEdges(id string) []int { return m.touching[id] }

// Degree returns the number of edges touching id.
func (m *Model) Degree(id string) int { return len(m.touching[id]) }

// Neighbors returns the set of node IDs directly connected to id in either
// direction. Dangling endpoints are excluded. This is the selection
// highlight scan.
func (m *Model) Neighbors(id string) map[string]bool {
	out := make(map[string]bool)
	for _, i := range m.touching[id] {
		e := m.graph.Edges[i]
		other := e.Target
		if other == id {
			other = e.Source
		}
		if _, ok := m.nodes[other]; ok && other != id {
			out[other] = true
		}
	}
	return out
}

// Validate checks the graph for structural problems and returns the first
// one found: empty node IDs, duplicate node IDs, or unknown enum values.
// Edges with missing endpoints pass validation; they are skipped at render
// time instead.
func Validate(g Graph) error {
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return ErrInvalidNodeID
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = true
		if !ValidNodeType(n.Type) {
			return fmt.Errorf("%w: %s (node %s)", ErrInvalidNodeType, n.Type, n.ID)
		}
	}
	for _, e := range g.Edges {
		if !ValidAccess(e.Access) {
			return fmt.Errorf("%w: %s (edge %s→%s)", ErrInvalidAccess, e.Access, e.Source, e.Target)
		}
	}
	return nil
}

// Normalize fills in defaulted enum values: empty node types become
// [TypeOther] and empty access values become [AccessAllow]. It returns a
// copy; the input is not modified.
func Normalize(g Graph) Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)
	for i := range out.Nodes {
		if out.Nodes[i].Type == "" {
			out.Nodes[i].Type = TypeOther
		}
	}
	for i := range out.Edges {
		if out.Edges[i].Access == "" {
			out.Edges[i].Access = AccessAllow
		}
	}
	return out
}
