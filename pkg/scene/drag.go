package scene

import "github.com/permlens/permlens/pkg/geometry"

// dragState marks the single node currently being dragged. At most one
// drag is active at a time; holding the state here (rather than on the
// node) is what enforces the single-writer rule.
type dragState struct {
	nodeID string
	origin geometry.Point // position at grab time, the drag subject
}

// StartDrag begins dragging the node. The node's current position is
// captured as the drag subject, so the node does not jump to the pointer
// on grab. Returns false for unknown nodes. Starting a drag while one is
// active replaces it.
func (s *Scene) StartDrag(id string) bool {
	p, ok := s.positions[id]
	if !ok {
		return false
	}
	s.drag = &dragState{nodeID: id, origin: p}
	return true
}

// Dragging returns the ID of the node being dragged, or "".
func (s *Scene) Dragging() string {
	if s.drag == nil {
		return ""
	}
	return s.drag.nodeID
}

// DragBy is one drag-move tick: it moves the dragged node by the given
// diagram-space delta, then re-routes exactly the edges touching that
// node. The position write strictly precedes the edge recomputation, and
// edges not touching the node are left byte-identical.
func (s *Scene) DragBy(dx, dy float64) {
	if s.drag == nil {
		return
	}
	id := s.drag.nodeID
	p := s.positions[id]
	s.positions[id] = geometry.Point{X: p.X + dx, Y: p.Y + dy}

	for _, i := range s.model.TouchingEdges(id) {
		s.routeEdge(i)
	}
}

// EndDrag finishes the drag. The node stays where it was released until
// the next full layout pass; nothing snaps.
func (s *Scene) EndDrag() { s.drag = nil }
