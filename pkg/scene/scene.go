package scene

import (
	"github.com/permlens/permlens/pkg/geometry"
	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/layout"
	"github.com/permlens/permlens/pkg/route"
)

// edgeView is one edge's per-frame render state. Sides are fixed per
// layout pass; the curve and path are recomputed whenever an endpoint
// moves.
type edgeView struct {
	edge  graph.Edge
	sides route.Sides
	curve geometry.Curve
	path  string
	valid bool // both endpoints resolved against the live node set
}

// Scene owns the live state of one diagram.
type Scene struct {
	model    *graph.Model
	opts     layout.Options
	viewport layout.Viewport

	// Live node positions, keyed by node ID. The explicit store (rather
	// than positions embedded in shared node structs) keeps the layout
	// result and the draggable state from aliasing each other; the drag
	// handler is the only writer during a drag.
	positions map[string]geometry.Point
	order     []string // draw order (input order)

	edges []edgeView

	transform layout.Transform
	fit       layout.Transform // last fit transform, the reset target

	selected  string
	connected map[string]bool

	drag *dragState
}

// New creates a scene for the model. The scene is not renderable until
// [Scene.Apply] installs a layout result.
func New(m *graph.Model, opts layout.Options, vp layout.Viewport) *Scene {
	return &Scene{
		model:     m,
		opts:      opts,
		viewport:  vp,
		positions: make(map[string]geometry.Point),
		transform: layout.Identity(),
		fit:       layout.Identity(),
		connected: map[string]bool{},
	}
}

// Model returns the underlying graph model.
func (s *Scene) Model() *graph.Model { return s.model }

// Viewport returns the scene's viewport size.
func (s *Scene) Viewport() layout.Viewport { return s.viewport }

// IsEmpty reports whether there is nothing to draw: the content-empty
// state surfaced to the user instead of a diagram.
func (s *Scene) IsEmpty() bool { return s.model.Graph().IsEmpty() }

// Apply atomically installs a layout result: live positions, fixed
// connection sides, routed edge paths, and the fit transform all come
// from the same pass. With preserveViewport the current pan/zoom (and
// selection) survive, which is the "reset layout" behavior; without it
// the viewport snaps to the new fit transform, the initial-load behavior.
//
// An in-flight drag is discarded: none of its partial edge updates
// survive the new layout.
func (s *Scene) Apply(res *layout.Result, preserveViewport bool) {
	s.drag = nil

	s.positions = make(map[string]geometry.Point, len(res.Nodes))
	s.order = make([]string, len(res.Nodes))
	for i, n := range res.Nodes {
		s.positions[n.ID] = geometry.Point{X: n.X, Y: n.Y}
		s.order[i] = n.ID
	}

	s.edges = make([]edgeView, len(res.Edges))
	for i, e := range res.Edges {
		s.edges[i] = edgeView{edge: e, sides: res.Sides[i]}
		s.routeEdge(i)
	}

	s.fit = res.Fit
	if !preserveViewport {
		s.transform = res.Fit
		s.selected = ""
	}
	s.retag()
}

// obstacles snapshots the live node set for the router.
func (s *Scene) obstacles() []route.Obstacle {
	out := make([]route.Obstacle, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, route.Obstacle{ID: id, Center: s.positions[id]})
	}
	return out
}

// routeEdge recomputes one edge's curve and path from the endpoints'
// current live positions and the edge's fixed sides. Edges referencing a
// node absent from the live set are marked invalid and skipped by
// renderers; a dangling reference is a no-op, never a failure.
func (s *Scene) routeEdge(i int) {
	ev := &s.edges[i]
	src, okS := s.positions[ev.edge.Source]
	dst, okD := s.positions[ev.edge.Target]
	if !okS || !okD {
		ev.valid = false
		ev.path = ""
		return
	}

	cfg := route.Config{
		NodeWidth:  s.opts.NodeWidth,
		NodeHeight: s.opts.NodeHeight,
		MinOffset:  route.DefaultConfig.MinOffset,
		MaxOffset:  route.DefaultConfig.MaxOffset,
	}
	start := route.Anchor(src, ev.sides.Source, s.opts.NodeWidth)
	end := route.Anchor(dst, ev.sides.Target, s.opts.NodeWidth)

	ev.curve = route.Route(start, end, ev.sides, s.obstacles(), ev.edge.Source, ev.edge.Target, cfg)
	ev.path = route.ToPath(ev.curve)
	ev.valid = true
}

// Position returns a node's live center, if it exists.
func (s *Scene) Position(id string) (geometry.Point, bool) {
	p, ok := s.positions[id]
	return p, ok
}
