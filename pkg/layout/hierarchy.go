package layout

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/permlens/permlens/pkg/geometry"
	"github.com/permlens/permlens/pkg/graph"
)

// Graphviz works in points, 72 per inch; node sizes in DOT are inches.
const pointsPerInch = 72

// hierarchical delegates rank assignment to Graphviz dot. The engine's
// output is treated as opaque per-node coordinates: the adapter builds a
// DOT document, renders it in dot's own output format, and extracts the
// pos attribute per node. Nodes the engine did not place land at the
// origin.
func hierarchical(ctx context.Context, m *graph.Model, opts Options) ([]PositionedNode, error) {
	positioned := make([]PositionedNode, m.NodeCount())
	if m.NodeCount() == 0 {
		return positioned, nil
	}

	laidOut, err := runDot(ctx, toDOT(m, opts))
	if err != nil {
		return nil, fmt.Errorf("hierarchical layout: %w", err)
	}

	coords := parsePositions(laidOut)

	// Graphviz y grows upward; screen y grows downward. Flip within the
	// occupied band so ranks read in the requested direction.
	var maxY float64
	for _, p := range coords {
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for i, n := range m.Nodes() {
		pn := PositionedNode{Node: n}
		if p, ok := coords[n.ID]; ok {
			pn.X = p.X
			pn.Y = maxY - p.Y
		}
		positioned[i] = pn
	}
	return positioned, nil
}

// toDOT builds the DOT document handed to the external layout engine:
// fixed-size box nodes, the configured rank direction, and separations
// converted to inches.
func toDOT(m *graph.Model, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.Direction)
	fmt.Fprintf(&buf, "  nodesep=%.4f;\n", opts.NodeSep/pointsPerInch)
	fmt.Fprintf(&buf, "  ranksep=%.4f;\n", opts.RankSep/pointsPerInch)
	fmt.Fprintf(&buf, "  node [shape=box, fixedsize=true, width=%.4f, height=%.4f];\n",
		opts.NodeWidth/pointsPerInch, opts.NodeHeight/pointsPerInch)
	buf.WriteString("\n")

	for _, n := range m.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", n.ID)
	}

	buf.WriteString("\n")
	for _, e := range m.Edges() {
		if _, ok := m.Node(e.Source); !ok {
			continue
		}
		if _, ok := m.Node(e.Target); !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// runDot feeds the DOT document through Graphviz and returns the laid-out
// document (dot output format), which carries a pos attribute per node.
func runDot(ctx context.Context, dot string) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return "", fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

var (
	// A node statement: an optionally quoted name directly followed by an
	// attribute block. Edge statements never match (the name is followed
	// by an arrow, not a bracket).
	nodeStmtRe = regexp.MustCompile(`(?ms)^\s*("(?:[^"\\]|\\.)*"|[^\s\[\]=]+)\s*\[(.*?)\];?$`)
	posAttrRe  = regexp.MustCompile(`\bpos="(-?[0-9.]+),(-?[0-9.]+)"`)
)

// parsePositions extracts node centers from laid-out DOT text. Statements
// without a pos attribute (graph/node/edge defaults) are skipped.
func parsePositions(laidOut string) map[string]geometry.Point {
	out := make(map[string]geometry.Point)
	for _, m := range nodeStmtRe.FindAllStringSubmatch(laidOut, -1) {
		name := m[1]
		if strings.HasPrefix(name, `"`) {
			if unq, err := strconv.Unquote(name); err == nil {
				name = unq
			}
		}
		pos := posAttrRe.FindStringSubmatch(m[2])
		if pos == nil {
			continue
		}
		x, errX := strconv.ParseFloat(pos[1], 64)
		y, errY := strconv.ParseFloat(pos[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		out[name] = geometry.Point{X: x, Y: y}
	}
	return out
}
