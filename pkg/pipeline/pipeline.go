// Package pipeline runs the layout → scene → render flow with caching.
//
// The CLI and the API server both turn a permission graph into an SVG
// diagram. Centralizing that flow here keeps their cache keys, hook
// invocations, and option defaults identical, so a diagram rendered on
// the command line is byte-for-byte the one the server would cache.
//
// # Stages
//
//  1. Layout: compute node positions, connection sides, and the fit
//     transform (cached by graph hash and layout options)
//  2. Scene: apply the layout and the optional selection emphasis
//  3. Render: serialize the frame to SVG (cached by layout hash and
//     render options)
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, g, pipeline.Options{
//	    Layout:   layout.DefaultOptions(),
//	    Viewport: layout.ResolveViewport("", ""),
//	    Hover:    true,
//	})
//	svg := result.SVG
package pipeline

import (
	"time"

	"github.com/permlens/permlens/pkg/layout"
)

// Options configures a pipeline run.
type Options struct {
	// Layout controls the layout pass.
	Layout layout.Options

	// Viewport is the target drawing area.
	Viewport layout.Viewport

	// Selected is the node ID to emphasize, if any.
	Selected string

	// Title is the SVG document title.
	Title string

	// Hover embeds hover-emphasis CSS for browser viewing.
	Hover bool

	// Refresh bypasses cache reads. Results are still written back.
	Refresh bool

	// TTL is the cache entry lifetime. Zero means no expiration.
	TTL time.Duration
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the rendered diagram.
	SVG []byte

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// SelectedFound reports whether the requested selection matched a
	// node. A miss renders the diagram without emphasis.
	SelectedFound bool

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit  bool // layout result came from cache
	DiagramHit bool // rendered SVG came from cache
}
