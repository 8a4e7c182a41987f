package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/route"
)

// PositionedNode is a graph node with layout-assigned center coordinates.
type PositionedNode struct {
	graph.Node `bson:",inline"`
	X          float64 `json:"x" bson:"x"`
	Y          float64 `json:"y" bson:"y"`
}

// Result is a completed layout pass: positioned nodes, the edges with
// their fixed connection sides, and the fit-to-viewport transform. It is
// the unit the interaction layer applies atomically — node positions,
// sides, and transform always come from the same pass.
type Result struct {
	Direction Direction        `json:"direction" bson:"direction"`
	Strategy  Strategy         `json:"strategy" bson:"strategy"`
	Nodes     []PositionedNode `json:"nodes" bson:"nodes"`
	Edges     []graph.Edge     `json:"edges" bson:"edges"`
	// Sides is parallel to Edges. Entries for edges with missing
	// endpoints are zero and those edges are skipped downstream.
	Sides    []route.Sides `json:"sides" bson:"sides"`
	Viewport Viewport      `json:"viewport" bson:"viewport"`
	Fit      Transform     `json:"fit" bson:"fit"`
}

// Compute runs a full layout pass over the model: position assignment per
// the selected strategy, connection-side fixing, and the fit transform.
func Compute(ctx context.Context, m *graph.Model, opts Options, vp Viewport) (*Result, error) {
	var (
		positioned []PositionedNode
		err        error
	)
	switch opts.Strategy {
	case StrategyGrid:
		positioned = gridScatter(m.Nodes(), opts)
	case StrategyHierarchical, "":
		positioned, err = hierarchical(ctx, m, opts)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, opts.Strategy)
	}

	res := &Result{
		Direction: opts.Direction,
		Strategy:  opts.Strategy,
		Nodes:     positioned,
		Edges:     m.Edges(),
		Sides:     make([]route.Sides, m.EdgeCount()),
		Viewport:  vp,
		Fit:       FitTransform(positioned, opts, vp),
	}

	// Fix connection sides once per pass from the relative horizontal
	// position of the endpoint centers.
	pos := make(map[string]PositionedNode, len(positioned))
	for _, n := range positioned {
		pos[n.ID] = n
	}
	for i, e := range res.Edges {
		src, okS := pos[e.Source]
		dst, okD := pos[e.Target]
		if !okS || !okD {
			continue
		}
		res.Sides[i] = route.SidesFor(src.X, dst.X)
	}

	return res, nil
}

// MarshalResult serializes a Result to pretty-printed JSON bytes.
func MarshalResult(r *Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a Result.
func UnmarshalResult(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}
	if len(r.Sides) != len(r.Edges) {
		return nil, fmt.Errorf("layout has %d side entries for %d edges", len(r.Sides), len(r.Edges))
	}
	return &r, nil
}

// WriteResultFile writes a Result to a JSON file.
func WriteResultFile(r *Result, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadResultFile reads a Result from a JSON file.
func ReadResultFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalResult(data)
}
