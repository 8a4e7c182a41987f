package geometry

// Curve is a cubic Bézier curve. It fully describes one edge's routed
// geometry for a single frame: curves are recomputed on every layout pass
// and on every drag tick, never persisted.
type Curve struct {
	Start    Point `json:"start" bson:"start"`
	Control1 Point `json:"control1" bson:"control1"`
	Control2 Point `json:"control2" bson:"control2"`
	End      Point `json:"end" bson:"end"`
}

// PointAt evaluates the curve at parameter t using the standard cubic
// Bézier formula. t is expected in [0,1]; t=0 yields Start and t=1 yields
// End. Values outside the interval extrapolate along the same polynomial.
func (c Curve) PointAt(t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*c.Start.X + b1*c.Control1.X + b2*c.Control2.X + b3*c.End.X,
		Y: b0*c.Start.Y + b1*c.Control1.Y + b2*c.Control2.Y + b3*c.End.Y,
	}
}
