package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownDirection is returned by [ParseDirection] for an
	// unrecognized rank direction.
	ErrUnknownDirection = errors.New("unknown rank direction")

	// ErrUnknownStrategy is returned by [ParseStrategy] for an
	// unrecognized layout strategy.
	ErrUnknownStrategy = errors.New("unknown layout strategy")
)

// Direction is the axis and sense along which the hierarchical layout
// orders nodes by dependency depth. Values match Graphviz rankdir.
type Direction string

// Rank directions.
const (
	DirectionTB Direction = "TB" // top to bottom
	DirectionLR Direction = "LR" // left to right
	DirectionBT Direction = "BT" // bottom to top
	DirectionRL Direction = "RL" // right to left
)

// ParseDirection parses a rank direction, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(s)) {
	case DirectionTB, DirectionLR, DirectionBT, DirectionRL:
		return Direction(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Strategy selects how nodes are positioned.
type Strategy string

// Layout strategies.
const (
	StrategyHierarchical Strategy = "hierarchical"
	StrategyGrid         Strategy = "grid-scatter"
)

// ParseStrategy parses a layout strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyHierarchical, StrategyGrid:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Options configures a layout pass.
type Options struct {
	Direction Direction
	Strategy  Strategy

	// Node footprint. Every node shares the same fixed size.
	NodeWidth  float64
	NodeHeight float64

	// Separation between adjacent nodes in a rank and between ranks.
	NodeSep float64
	RankSep float64

	// Margin around the whole diagram.
	Margin float64

	// Fit-to-viewport tuning.
	FitFactor   float64 // fraction of the viewport the content may occupy
	MaxFitScale float64 // upper bound so tiny graphs aren't blown up

	// Seed drives grid-scatter jitter. Ignored by hierarchical layouts.
	Seed uint64
}

// DefaultOptions returns the standard layout configuration.
func DefaultOptions() Options {
	return Options{
		Direction:   DirectionTB,
		Strategy:    StrategyHierarchical,
		NodeWidth:   200,
		NodeHeight:  100,
		NodeSep:     60,
		RankSep:     80,
		Margin:      40,
		FitFactor:   0.85,
		MaxFitScale: 1.5,
		Seed:        42,
	}
}

// Viewport is the concrete pixel size of the rendering surface.
type Viewport struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Fallback viewport used when a size cannot be resolved to pixels.
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// ResolveViewport resolves string sizes (e.g. "800", "640px") to a
// concrete viewport. Percentage, "auto", and other non-numeric sizes fall
// back to 800×600; layout never fails on an unresolvable size.
func ResolveViewport(width, height string) Viewport {
	return Viewport{
		Width:  resolveSize(width, DefaultViewportWidth),
		Height: resolveSize(height, DefaultViewportHeight),
	}
}

func resolveSize(s string, fallback float64) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
