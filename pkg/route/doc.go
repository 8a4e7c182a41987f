// Package route computes collision-aware edge geometry for permission
// diagrams.
//
// # Curve Router
//
// [Route] produces a cubic Bézier for one edge. Control points are
// projected horizontally outward from each anchor in the direction implied
// by the edge's connection side, which gives edges a perpendicular-looking
// departure and arrival at the node boundary. A fixed ladder of curvature
// multipliers is tried in order; each candidate is sampled at 18 interior
// points and tested against every node footprint except the edge's own
// endpoints. The first clean candidate wins. If none is clean, [Route]
// falls back to a detour curve displaced away from the congested side.
// The detour is an escape hatch, not a guarantee: it is intentionally not
// collision-checked.
//
// # Connection Sides
//
// [SidesFor] picks the left/right sides once per layout pass from the
// relative horizontal position of the two node centers. Sides are held
// fixed during drags even when an endpoint crosses the other's
// x-coordinate, so edges never flip sides mid-drag.
//
// # Path Renderer
//
// [ToPath] converts a routed curve into the drawable SVG path: a
// three-segment orthogonal silhouette (horizontal run, vertical spine at
// the anchors' x midpoint, horizontal run) joined by two rounded corners.
// Edges that do not dock into the spine at 90° read as visually broken,
// so the corner placement here is load-bearing, not cosmetic.
package route
