package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/scene"
)

// Edge and emphasis palette.
const (
	colorAllow = "#2f9e44"
	colorDeny  = "#e03131"
	colorDim   = "#adb5bd"

	strokeSelected = "#1c7ed6"
	strokeDefault  = "#495057"

	dimOpacity = 0.08
)

// nodeFill maps a node type to its box fill.
func nodeFill(t graph.NodeType) string {
	switch t {
	case graph.TypePermissionSet:
		return "#d0ebff"
	case graph.TypePermissionGroup:
		return "#e5dbff"
	case graph.TypeControl:
		return "#fff3bf"
	default:
		return "#f1f3f5"
	}
}

const hoverCSS = `
    .node rect { transition: stroke-width 0.2s ease; }
    .node:hover rect { stroke-width: 3; }
    .node text { pointer-events: none; }
    .edge { transition: opacity 0.2s ease; }`

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title        string
	emptyMessage string
	hover        bool
}

// WithTitle sets the document title element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithEmptyMessage overrides the placeholder text for empty models.
func WithEmptyMessage(msg string) SVGOption { return func(r *svgRenderer) { r.emptyMessage = msg } }

// WithHover embeds hover emphasis CSS for browser viewing.
func WithHover() SVGOption { return func(r *svgRenderer) { r.hover = true } }

// SVG renders a frame into a standalone SVG document.
func SVG(f scene.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{emptyMessage: "No permissions to display"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Viewport.Width, f.Viewport.Height, f.Viewport.Width, f.Viewport.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}

	if f.Empty {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="16" fill="%s">%s</text>`+"\n",
			f.Viewport.Width/2, f.Viewport.Height/2, colorDim, html.EscapeString(r.emptyMessage))
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	renderDefs(&buf)
	if r.hover {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", hoverCSS)
	}

	fmt.Fprintf(&buf, `  <g transform="translate(%.2f %.2f) scale(%.4f)">`+"\n",
		f.Transform.TranslateX, f.Transform.TranslateY, f.Transform.Scale)

	for _, e := range f.Edges {
		renderEdge(&buf, e)
	}
	for _, n := range f.Nodes {
		renderNode(&buf, n, f.NodeWidth, f.NodeHeight)
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

// renderDefs emits the arrowhead markers, one per edge coloring.
func renderDefs(buf *bytes.Buffer) {
	markers := []struct{ name, color string }{
		{"arrow-allow", colorAllow},
		{"arrow-deny", colorDeny},
		{"arrow-dim", colorDim},
	}

	buf.WriteString("  <defs>\n")
	for _, m := range markers {
		fmt.Fprintf(buf, `    <marker id="%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/></marker>`+"\n",
			m.name, m.color)
	}
	buf.WriteString("  </defs>\n")
}

func renderEdge(buf *bytes.Buffer, e scene.EdgeDraw) {
	color := colorAllow
	marker := "arrow-allow"
	dash := ""
	if e.Edge.Access == graph.AccessDeny {
		color = colorDeny
		marker = "arrow-deny"
		dash = ` stroke-dasharray="6 4"`
	}

	width := 2.0
	opacity := 1.0
	switch e.State {
	case scene.StateConnected:
		width = 3
	case scene.StateUnselected:
		// Faded edges keep the diagram's shape without competing with
		// the selection.
		opacity = dimOpacity
		marker = "arrow-dim"
	}

	fmt.Fprintf(buf, `    <path class="edge" d="%s" fill="none" stroke="%s" stroke-width="%.0f" opacity="%.2f"%s marker-end="url(#%s)"/>`+"\n",
		e.Path, color, width, opacity, dash, marker)
}

func renderNode(buf *bytes.Buffer, n scene.NodeDraw, w, h float64) {
	stroke := strokeDefault
	strokeWidth := 1.5
	opacity := 1.0
	switch n.State {
	case scene.StateSelected:
		stroke = strokeSelected
		strokeWidth = 3
	case scene.StateConnected:
		stroke = strokeSelected
	case scene.StateUnselected:
		opacity = 0.15
	}

	dash := ""
	if !n.Node.IsEnabled() {
		dash = ` stroke-dasharray="4 3"`
	}

	fmt.Fprintf(buf, `    <g class="node" opacity="%.2f">`+"\n", opacity)
	fmt.Fprintf(buf, `      <rect x="%.2f" y="%.2f" width="%.1f" height="%.1f" rx="6" fill="%s" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		n.X-w/2, n.Y-h/2, w, h, nodeFill(n.Node.Type), stroke, strokeWidth, dash)
	fmt.Fprintf(buf, `      <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="13" fill="#212529">%s</text>`+"\n",
		n.X, n.Y, html.EscapeString(n.Node.DisplayName()))
	buf.WriteString("    </g>\n")
}
