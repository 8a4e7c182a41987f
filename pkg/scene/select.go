package scene

// VisualState is the render emphasis of a node or edge. With no
// selection everything is neutral; with a selection the selected node,
// its neighbors, and the edges between them are emphasized while the
// rest of the diagram is dimmed.
type VisualState string

const (
	StateNeutral    VisualState = "neutral"
	StateSelected   VisualState = "selected"
	StateConnected  VisualState = "connected"
	StateUnselected VisualState = "unselected"
)

// Select toggles the selection. Selecting the already-selected node
// clears the selection; selecting an unknown node also clears it. The
// toggle only re-tags visual states, routed geometry is untouched.
func (s *Scene) Select(id string) {
	if id == s.selected {
		id = ""
	}
	if _, ok := s.positions[id]; !ok {
		id = ""
	}
	s.selected = id
	s.retag()
}

// ClearSelection drops the selection and returns every element to the
// neutral state.
func (s *Scene) ClearSelection() {
	s.selected = ""
	s.retag()
}

// Selected returns the selected node ID, or "".
func (s *Scene) Selected() string { return s.selected }

// retag recomputes the connected set from the current selection. The
// connected set is derived from graph adjacency, not from geometry, so
// dragging never changes it.
func (s *Scene) retag() {
	if s.selected == "" {
		s.connected = map[string]bool{}
		return
	}
	s.connected = s.model.Neighbors(s.selected)
}

// nodeState returns the visual state of one node under the current
// selection.
func (s *Scene) nodeState(id string) VisualState {
	switch {
	case s.selected == "":
		return StateNeutral
	case id == s.selected:
		return StateSelected
	case s.connected[id]:
		return StateConnected
	default:
		return StateUnselected
	}
}

// edgeState returns the visual state of one edge: connected when it
// touches the selected node, unselected otherwise.
func (s *Scene) edgeState(ev *edgeView) VisualState {
	switch {
	case s.selected == "":
		return StateNeutral
	case ev.edge.Touches(s.selected):
		return StateConnected
	default:
		return StateUnselected
	}
}
