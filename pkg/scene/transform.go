package scene

import (
	"time"

	"github.com/permlens/permlens/pkg/layout"
)

// Interactive scale bounds.
const (
	MinScale = 0.1
	MaxScale = 10
)

// ResetDuration is how long the animated viewport reset takes.
const ResetDuration = 750 * time.Millisecond

// Transform returns the current viewport transform.
func (s *Scene) Transform() layout.Transform { return s.transform }

// SetTransform installs a transform, clamping the scale to [0.1, 10].
func (s *Scene) SetTransform(t layout.Transform) {
	t.Scale = clampScale(t.Scale)
	s.transform = t
}

// Pan shifts the viewport by a screen-space delta.
func (s *Scene) Pan(dx, dy float64) {
	s.transform.TranslateX += dx
	s.transform.TranslateY += dy
}

// ZoomAt scales the viewport by factor, keeping the screen point (cx, cy)
// fixed. The resulting scale is clamped to [0.1, 10]; at the bounds the
// translation is left untouched so the view doesn't drift.
func (s *Scene) ZoomAt(factor, cx, cy float64) {
	next := clampScale(s.transform.Scale * factor)
	if next == s.transform.Scale {
		return
	}
	ratio := next / s.transform.Scale
	s.transform = layout.Transform{
		TranslateX: cx - (cx-s.transform.TranslateX)*ratio,
		TranslateY: cy - (cy-s.transform.TranslateY)*ratio,
		Scale:      next,
	}
}

// FitTarget returns the reset target: the fit transform of the last
// applied layout. The caller animates toward it over [ResetDuration]
// using [layout.Transform.Lerp] and installs frames via [Scene.SetTransform].
func (s *Scene) FitTarget() layout.Transform { return s.fit }

func clampScale(v float64) float64 {
	if v < MinScale {
		return MinScale
	}
	if v > MaxScale {
		return MaxScale
	}
	return v
}
