package layout

import "math"

const eps = 1e-9

// Transform is a viewport transform: translate then uniform scale.
// Interactive scaling is clamped elsewhere (pkg/scene) to [0.1, 10].
type Transform struct {
	TranslateX float64 `json:"translate_x" bson:"translate_x"`
	TranslateY float64 `json:"translate_y" bson:"translate_y"`
	Scale      float64 `json:"scale" bson:"scale"`
}

// Identity returns the neutral transform.
func Identity() Transform { return Transform{Scale: 1} }

// Apply maps a diagram coordinate to a viewport coordinate.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.TranslateX, y*t.Scale + t.TranslateY
}

// Lerp interpolates toward target with f in [0,1]. Used by the animated
// viewport reset; f=0 returns t and f=1 returns target.
func (t Transform) Lerp(target Transform, f float64) Transform {
	return Transform{
		TranslateX: t.TranslateX + (target.TranslateX-t.TranslateX)*f,
		TranslateY: t.TranslateY + (target.TranslateY-t.TranslateY)*f,
		Scale:      t.Scale + (target.Scale-t.Scale)*f,
	}
}

// BoundingBox returns the axis-aligned bounds of the positioned nodes,
// expanded by each node's half footprint. ok is false for an empty slice.
func BoundingBox(nodes []PositionedNode, nodeWidth, nodeHeight float64) (minX, minY, maxX, maxY float64, ok bool) {
	if len(nodes) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, n := range nodes {
		minX = math.Min(minX, n.X-nodeWidth/2)
		maxX = math.Max(maxX, n.X+nodeWidth/2)
		minY = math.Min(minY, n.Y-nodeHeight/2)
		maxY = math.Max(maxY, n.Y+nodeHeight/2)
	}
	return minX, minY, maxX, maxY, true
}

// FitTransform derives the transform that scales the padded content box to
// fit within factor of the viewport and centers it. The scale never
// exceeds maxScale. Zero nodes yield the identity scale centered on the
// viewport, with no division by zero.
func FitTransform(nodes []PositionedNode, opts Options, vp Viewport) Transform {
	minX, minY, maxX, maxY, ok := BoundingBox(nodes, opts.NodeWidth, opts.NodeHeight)
	if !ok {
		return Transform{TranslateX: vp.Width / 2, TranslateY: vp.Height / 2, Scale: 1}
	}

	paddedW := maxX - minX + 2*opts.Margin
	paddedH := maxY - minY + 2*opts.Margin
	scale := opts.MaxFitScale
	if paddedW > eps {
		scale = math.Min(scale, vp.Width*opts.FitFactor/paddedW)
	}
	if paddedH > eps {
		scale = math.Min(scale, vp.Height*opts.FitFactor/paddedH)
	}

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	return Transform{
		TranslateX: vp.Width/2 - centerX*scale,
		TranslateY: vp.Height/2 - centerY*scale,
		Scale:      scale,
	}
}
