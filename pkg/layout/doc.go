// Package layout positions permission graphs for rendering.
//
// # Strategies
//
// The primary strategy is hierarchical: rank assignment is delegated to
// Graphviz dot (via goccy/go-graphviz) as an opaque external algorithm.
// The adapter builds a DOT document with the configured rank direction and
// separations, runs the layout, and extracts per-node center coordinates
// from the laid-out output. Nodes the engine fails to place default to the
// origin.
//
// The secondary grid-scatter strategy spaces nodes on a square grid with a
// small seeded jitter per node. Grid cells are pre-spaced wider than the
// node footprint, so grid layouts carry no collision-avoidance obligation
// and their jitter is exempt from the router's determinism guarantee.
//
// # Fit-to-Viewport
//
// [FitTransform] derives the initial viewport transform from the padded
// bounding box of all positioned nodes: the diagram is scaled to fit
// within the configured fraction of the viewport and centered. The
// zero-node case centers on the viewport without dividing by zero.
//
// # Connection Sides
//
// [Compute] also fixes each edge's connection sides (see
// [github.com/permlens/permlens/pkg/route.SidesFor]) for the lifetime of
// the layout pass; the interaction layer keeps them stable across drags.
package layout
