package geometry

// Point is a position in user units.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns the point scaled by f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Rect is an axis-aligned rectangle anchored at its center.
type Rect struct {
	X      float64 // center x
	Y      float64 // center y
	Width  float64
	Height float64
}

// Left returns the minimum x coordinate of the rectangle.
func (r Rect) Left() float64 { return r.X - r.Width/2 }

// Right returns the maximum x coordinate of the rectangle.
func (r Rect) Right() float64 { return r.X + r.Width/2 }

// Top returns the minimum y coordinate of the rectangle.
func (r Rect) Top() float64 { return r.Y - r.Height/2 }

// Bottom returns the maximum y coordinate of the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.Height/2 }

// Contains reports whether p lies within the rectangle. Boundary points
// count as inside. This is the collision predicate used when sampling
// candidate edge curves; it is an approximation, not a rendering test.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}
