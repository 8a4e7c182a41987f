// Package pkg provides the core libraries for Permlens permission-model
// visualization.
//
// # Overview
//
// Permlens turns permission models - permission sets, groups, and the
// controls they grant or deny - into navigable node-link diagrams. The
// pkg directory is organized around the diagram pipeline:
//
//  1. [graph] - Permission graph types, validation, and JSON serialization
//  2. [layout] - Position assignment, viewport fitting, and direction/strategy options
//  3. [route] - Collision-aware Bézier connection routing
//  4. [scene] - Interactive diagram state (drag, pan/zoom, selection)
//  5. [render] - SVG output
//  6. [pipeline] - Orchestration (layout → scene → render) with caching
//
// # Architecture
//
// The typical data flow through Permlens:
//
//	Permission graph (JSON file or API upload)
//	         ↓
//	    [graph] package (validate, normalize, index)
//	         ↓
//	    [layout] package (positions, sides, fit transform)
//	         ↓
//	    [scene] package (interaction state + edge routing via [route])
//	         ↓
//	    [render] package (SVG)
//
// # Quick Start
//
// Lay out and render a permission graph:
//
//	import (
//	    "context"
//	    "github.com/permlens/permlens/pkg/graph"
//	    "github.com/permlens/permlens/pkg/layout"
//	    "github.com/permlens/permlens/pkg/render"
//	    "github.com/permlens/permlens/pkg/scene"
//	)
//
//	// 1. Load and index the graph
//	g, _ := graph.ReadFile("permissions.json")
//	m := graph.NewModel(graph.Normalize(g))
//
//	// 2. Compute the layout
//	opts := layout.DefaultOptions()
//	vp := layout.ResolveViewport("", "")
//	res, _ := layout.Compute(context.Background(), m, opts, vp)
//
//	// 3. Build the scene and render
//	sc := scene.New(m, opts, vp)
//	sc.Apply(res, false)
//	svg := render.SVG(sc.Frame())
//
// # Main Packages
//
// ## Domain Logic
//
// [graph] - The permission graph model: nodes classified as permission
// sets, groups, or controls; directed ALLOW/DENY edges; validation,
// normalization, cycle detection, and the indexed [graph.Model] used by
// every later stage.
//
// [geometry] - Points, rectangles, and cubic Bézier evaluation shared by
// routing and hit testing.
//
// [layout] - Position assignment. The hierarchical strategy shells out to
// Graphviz for rank assignment; grid-scatter is a deterministic seeded
// fallback. Also computes connection sides and the viewport fit
// transform.
//
// [route] - Connection routing: collision-aware Bézier curves with a
// curvature ladder and a detour fallback, plus the orthogonal SVG path
// renderer.
//
// [scene] - The interactive diagram: applies layout results atomically,
// re-routes only the touched edges during drags, and tracks pan/zoom and
// selection emphasis.
//
// [render] - Serializes a scene frame to a standalone SVG document with
// optional hover emphasis.
//
// ## Infrastructure
//
// [pipeline] - The layout → scene → render flow with two-stage caching,
// shared by the CLI and the API server.
//
// [cache] - Byte-level caches (memory, file, Redis) and the content-hash
// key scheme for layouts and diagrams.
//
// [store] - Persistence for uploaded graphs (memory, MongoDB).
//
// [config] - TOML configuration with working defaults for every field.
//
// [errors] - The structured error taxonomy with user messages and HTTP
// status mapping.
//
// [observability] - Hook interfaces for instrumenting layout, render,
// cache, and store operations.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/route/...      # Specific package
//
// The hierarchical layout strategy requires the Graphviz engine; tests
// use grid-scatter where determinism matters.
//
// [graph]: https://pkg.go.dev/github.com/permlens/permlens/pkg/graph
// [geometry]: https://pkg.go.dev/github.com/permlens/permlens/pkg/geometry
// [layout]: https://pkg.go.dev/github.com/permlens/permlens/pkg/layout
// [route]: https://pkg.go.dev/github.com/permlens/permlens/pkg/route
// [scene]: https://pkg.go.dev/github.com/permlens/permlens/pkg/scene
// [render]: https://pkg.go.dev/github.com/permlens/permlens/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/permlens/permlens/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/permlens/permlens/pkg/cache
// [store]: https://pkg.go.dev/github.com/permlens/permlens/pkg/store
// [config]: https://pkg.go.dev/github.com/permlens/permlens/pkg/config
// [errors]: https://pkg.go.dev/github.com/permlens/permlens/pkg/errors
// [observability]: https://pkg.go.dev/github.com/permlens/permlens/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/permlens/permlens/pkg/buildinfo
// [graph.Model]: https://pkg.go.dev/github.com/permlens/permlens/pkg/graph#Model
package pkg
