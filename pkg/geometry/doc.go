// Package geometry provides the low-level primitives for diagram layout
// and edge routing: points, center-anchored rectangles, and cubic Bézier
// curves.
//
// All coordinates are in user units (typically pixels in SVG). Rectangles
// are anchored at their center point, matching how diagram nodes store
// their position, so containment tests work directly against node centers
// and footprints.
//
// The package has no dependencies and is purely computational; it is used
// by [github.com/permlens/permlens/pkg/route] for collision sampling and by
// [github.com/permlens/permlens/pkg/layout] for bounding-box computation.
package geometry
