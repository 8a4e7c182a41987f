package scene

import (
	"github.com/permlens/permlens/pkg/geometry"
	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/layout"
)

// NodeDraw is one node ready to draw: its model data, live center, and
// selection-derived visual state.
type NodeDraw struct {
	Node  graph.Node
	X     float64
	Y     float64
	State VisualState
}

// EdgeDraw is one routed edge ready to draw.
type EdgeDraw struct {
	Edge  graph.Edge
	Path  string
	State VisualState
}

// Frame is a self-contained snapshot for a renderer: everything needed
// to draw, nothing that can mutate under the renderer's feet.
type Frame struct {
	Nodes      []NodeDraw
	Edges      []EdgeDraw
	Transform  layout.Transform
	Viewport   layout.Viewport
	NodeWidth  float64
	NodeHeight float64
	Empty      bool
}

// Frame snapshots the current scene. Edges whose endpoints could not be
// resolved are omitted. Nodes come out in stable input order so the
// draw stacking never flickers between frames.
func (s *Scene) Frame() Frame {
	f := Frame{
		Transform:  s.transform,
		Viewport:   s.viewport,
		NodeWidth:  s.opts.NodeWidth,
		NodeHeight: s.opts.NodeHeight,
		Empty:      s.IsEmpty(),
	}
	if f.Empty {
		return f
	}

	f.Nodes = make([]NodeDraw, 0, len(s.order))
	for _, id := range s.order {
		n, ok := s.model.Node(id)
		if !ok {
			continue
		}
		p := s.positions[id]
		f.Nodes = append(f.Nodes, NodeDraw{Node: *n, X: p.X, Y: p.Y, State: s.nodeState(id)})
	}

	f.Edges = make([]EdgeDraw, 0, len(s.edges))
	for i := range s.edges {
		ev := &s.edges[i]
		if !ev.valid {
			continue
		}
		f.Edges = append(f.Edges, EdgeDraw{Edge: ev.edge, Path: ev.path, State: s.edgeState(ev)})
	}
	return f
}

// NodeAt hit-tests a screen-space point against the node footprints,
// inverting the viewport transform first. Later nodes draw on top, so
// the scan runs back to front. Returns "" on a miss.
func (s *Scene) NodeAt(screenX, screenY float64) string {
	if s.transform.Scale == 0 {
		return ""
	}
	x := (screenX - s.transform.TranslateX) / s.transform.Scale
	y := (screenY - s.transform.TranslateY) / s.transform.Scale

	for i := len(s.order) - 1; i >= 0; i-- {
		id := s.order[i]
		p := s.positions[id]
		r := geometry.Rect{X: p.X, Y: p.Y, Width: s.opts.NodeWidth, Height: s.opts.NodeHeight}
		if r.Contains(geometry.Point{X: x, Y: y}) {
			return id
		}
	}
	return ""
}
