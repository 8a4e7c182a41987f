// Package render assembles permission diagrams into SVG documents.
//
// # Overview
//
// The renderer consumes a [scene.Frame] snapshot, so everything it draws
// comes from one consistent state: node positions, routed edge paths, the
// viewport transform, and selection emphasis.
//
//	f := sc.Frame()
//	svg := render.SVG(f, render.WithTitle("production model"))
//
// Drawing rules:
//   - Edges draw beneath nodes.
//   - ALLOW and DENY edges are distinguished by color and arrowhead.
//   - De-emphasized elements fade to near-zero opacity rather than
//     disappear, so the diagram keeps its shape during selection.
//   - An empty model renders a placeholder message instead of a diagram.
//
// [scene.Frame]: github.com/permlens/permlens/pkg/scene
package render
