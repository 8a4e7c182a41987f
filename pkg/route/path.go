package route

import (
	"fmt"
	"math"

	"github.com/permlens/permlens/pkg/geometry"
)

// Corner radius bounds for the orthogonal silhouette.
const (
	minCornerRadius = 8
	maxCornerRadius = 20
)

// ToPath converts a routed curve into its drawable SVG path description:
// a horizontal run from the start anchor to the spine at
// middleX = (start.x+end.x)/2, the vertical spine, and a horizontal run
// to the end anchor, with the two joints rounded.
//
// The corner radius is proportional to the shortest of the three segments
// (30%), clamped to [8, 20] and capped so corners on short segments never
// overlap. The corner quadrants follow the sign of end.y−start.y and the
// sign of end.x−middleX, which keeps both runs docking into the spine at
// exactly 90°.
func ToPath(c geometry.Curve) string {
	start, end := c.Start, c.End
	middleX := (start.X + end.X) / 2

	run1 := math.Abs(middleX - start.X)
	run2 := math.Abs(end.X - middleX)
	rise := math.Abs(end.Y - start.Y)

	// Degenerate silhouettes collapse to a straight segment.
	if rise < 1e-6 || (run1 < 1e-6 && run2 < 1e-6) {
		return fmt.Sprintf("M %s %s L %s %s", coord(start.X), coord(start.Y), coord(end.X), coord(end.Y))
	}

	radius := 0.3 * math.Min(run1, math.Min(run2, rise))
	radius = math.Max(minCornerRadius, math.Min(maxCornerRadius, radius))
	// The clamp floor can exceed very short segments; cap so the two
	// corners stay disjoint.
	radius = math.Min(radius, math.Min(rise/2, math.Min(run1, run2)))

	vdir := sign(end.Y - start.Y)
	hdir := sign(end.X - middleX)

	return fmt.Sprintf("M %s %s L %s %s Q %s %s %s %s L %s %s Q %s %s %s %s L %s %s",
		coord(start.X), coord(start.Y),
		coord(middleX-hdir*radius), coord(start.Y),
		coord(middleX), coord(start.Y), coord(middleX), coord(start.Y+vdir*radius),
		coord(middleX), coord(end.Y-vdir*radius),
		coord(middleX), coord(end.Y), coord(middleX+hdir*radius), coord(end.Y),
		coord(end.X), coord(end.Y))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
