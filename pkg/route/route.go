package route

import (
	"math"

	"github.com/permlens/permlens/pkg/geometry"
)

// Side is the horizontal side of a node's bounding box an edge departs
// from or arrives at.
type Side string

// Connection sides.
const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// dir returns the outward x direction for a side: +1 for right, -1 for left.
func (s Side) dir() float64 {
	if s == SideRight {
		return 1
	}
	return -1
}

// Sides holds the connection sides for one edge, chosen once per layout
// pass and held fixed for the lifetime of that layout (drags included).
type Sides struct {
	Source Side `json:"source" bson:"source"`
	Target Side `json:"target" bson:"target"`
}

// SidesFor picks connection sides from the relative horizontal position of
// the source and target centers: a source left of its target exits right
// and the target receives left, and vice versa. Ties resolve to the
// left/right orientation.
func SidesFor(sourceX, targetX float64) Sides {
	if sourceX < targetX {
		return Sides{Source: SideRight, Target: SideLeft}
	}
	return Sides{Source: SideLeft, Target: SideRight}
}

// Anchor returns the point on the node boundary where an edge attaches:
// the vertical center of the given side.
func Anchor(center geometry.Point, side Side, nodeWidth float64) geometry.Point {
	return geometry.Point{X: center.X + side.dir()*nodeWidth/2, Y: center.Y}
}

// Obstacle is a node footprint the router must steer around. Every node
// shares the same width and height (the layout footprint), so only the
// center varies per obstacle.
type Obstacle struct {
	ID     string
	Center geometry.Point
}

// Config carries the routing parameters: the uniform node footprint and
// the control-offset clamp.
type Config struct {
	NodeWidth  float64
	NodeHeight float64
	MinOffset  float64 // control-offset floor; must be positive so degenerate anchors never collapse
	MaxOffset  float64 // control-offset ceiling
}

// DefaultConfig is the routing profile for hierarchical layouts with the
// standard 200×100 footprint.
var DefaultConfig = Config{
	NodeWidth:  200,
	NodeHeight: 100,
	MinOffset:  120,
	MaxOffset:  200,
}

// CompactConfig is a tighter profile for dense graphs and small footprints.
var CompactConfig = Config{
	NodeWidth:  40,
	NodeHeight: 20,
	MinOffset:  8,
	MaxOffset:  100,
}

// curvatures is the ordered ladder of curvature multipliers tried by Route.
var curvatures = [...]float64{0.3, 0.5, 0.7, 0.9, 1.2}

// sampleCount is the number of interior points tested per candidate curve.
// Endpoints are excluded: they sit on the source and target boundaries by
// construction.
const sampleCount = 18

// controlOffset derives the base control-point projection distance from
// the horizontal span between the anchors, clamped to the config bounds.
// The positive floor guards zero-distance anchors against degenerate
// (and division-prone) geometry.
func (c Config) controlOffset(dx float64) float64 {
	off := math.Abs(dx) / 2
	if off < c.MinOffset {
		return c.MinOffset
	}
	if off > c.MaxOffset {
		return c.MaxOffset
	}
	return off
}

// Route returns the curve for one edge between the given anchors.
//
// nodes is the full positioned node set; the entries whose IDs match
// sourceID or targetID are ignored during collision sampling. The search
// short-circuits on the first collision-free candidate. When every
// curvature collides, the uncurved detour fallback is returned as-is.
//
// Route is deterministic: identical inputs always produce identical
// curves.
func Route(start, end geometry.Point, sides Sides, nodes []Obstacle, sourceID, targetID string, cfg Config) geometry.Curve {
	base := cfg.controlOffset(end.X - start.X)
	for _, k := range curvatures {
		c := candidate(start, end, sides, base*k)
		if clear(c, nodes, sourceID, targetID, cfg) {
			return c
		}
	}
	return detour(start, end, sides, cfg)
}

// candidate builds a curve whose control points are projected offset units
// outward from each anchor along its connection side.
func candidate(start, end geometry.Point, sides Sides, offset float64) geometry.Curve {
	return geometry.Curve{
		Start:    start,
		Control1: geometry.Point{X: start.X + sides.Source.dir()*offset, Y: start.Y},
		Control2: geometry.Point{X: end.X + sides.Target.dir()*offset, Y: end.Y},
		End:      end,
	}
}

// clear samples the curve's interior and reports whether no sample falls
// inside any obstacle other than the edge's own endpoints.
func clear(c geometry.Curve, nodes []Obstacle, sourceID, targetID string, cfg Config) bool {
	for i := 1; i <= sampleCount; i++ {
		p := c.PointAt(float64(i) / (sampleCount + 1))
		for _, n := range nodes {
			if n.ID == sourceID || n.ID == targetID {
				continue
			}
			r := geometry.Rect{X: n.Center.X, Y: n.Center.Y, Width: cfg.NodeWidth, Height: cfg.NodeHeight}
			if r.Contains(p) {
				return false
			}
		}
	}
	return true
}

// detour builds the fallback curve: the midpoint height is displaced by
// 1.5 node heights away from the likely-congested side (opposite the sign
// of the vertical span, ties route upward), and both control points are
// pinned to that height, offset one node width along each connection side.
func detour(start, end geometry.Point, sides Sides, cfg Config) geometry.Curve {
	midY := (start.Y + end.Y) / 2
	if end.Y >= start.Y {
		midY -= 1.5 * cfg.NodeHeight
	} else {
		midY += 1.5 * cfg.NodeHeight
	}
	return geometry.Curve{
		Start:    start,
		Control1: geometry.Point{X: start.X + sides.Source.dir()*cfg.NodeWidth, Y: midY},
		Control2: geometry.Point{X: end.X + sides.Target.dir()*cfg.NodeWidth, Y: midY},
		End:      end,
	}
}
