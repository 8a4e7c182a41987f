// Package scene is the interaction controller for permission diagrams.
//
// A [Scene] owns the mutable state of one rendered diagram: the live node
// positions, the per-edge connection sides and routed paths, the viewport
// transform, and the selection. All mutation happens on a single
// goroutine in response to discrete input events; the scene applies no
// locking and is not safe for concurrent use.
//
// # Update Ordering
//
// The scene enforces the write-before-read ordering the geometry depends
// on. A drag tick first overwrites the node's live position, then
// re-routes only the edges touching that node. A layout pass replaces
// positions, connection sides, edge paths, and (unless preserved) the
// viewport transform in one step, so consumers never observe new
// positions paired with stale sides. A layout pass arriving mid-drag
// discards the drag.
//
// Geometry recomputation and selection-driven visual tagging are two
// separate passes: selecting a node re-tags nodes and edges without
// touching any routed path.
package scene
