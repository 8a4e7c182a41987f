package pipeline

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/permlens/permlens/pkg/cache"
	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/layout"
)

func testGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "admins", Type: graph.TypePermissionGroup},
			{ID: "sales", Type: graph.TypePermissionSet},
			{ID: "export", Name: "Export Reports", Type: graph.TypeControl},
		},
		Edges: []graph.Edge{
			{Source: "admins", Target: "sales"},
			{Source: "sales", Target: "export", Access: graph.AccessDeny},
		},
	}
}

func testOptions() Options {
	opts := layout.DefaultOptions()
	opts.Strategy = layout.StrategyGrid
	return Options{
		Layout:   opts,
		Viewport: layout.ResolveViewport("", ""),
		Hover:    true,
	}
}

func newTestRunner() *Runner {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewRunner(cache.NewMemoryCache(), nil, logger)
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil {
		t.Error("nil cache should default to NullCache")
	}
	if r.Keyer == nil {
		t.Error("nil keyer should default to DefaultKeyer")
	}
	if r.Logger == nil {
		t.Error("nil logger should default")
	}
}

func TestExecute(t *testing.T) {
	r := newTestRunner()

	result, err := r.Execute(context.Background(), testGraph(), testOptions())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !bytes.Contains(result.SVG, []byte("<svg")) {
		t.Error("result should contain an SVG document")
	}
	if !bytes.Contains(result.SVG, []byte("Export Reports")) {
		t.Error("SVG should contain node labels")
	}
	if result.Stats.NodeCount != 3 || result.Stats.EdgeCount != 2 {
		t.Errorf("stats = %+v, want 3 nodes, 2 edges", result.Stats)
	}
	if result.GraphHash == "" {
		t.Error("GraphHash should be set")
	}
	if result.CacheInfo.DiagramHit || result.CacheInfo.LayoutHit {
		t.Error("first run should miss both caches")
	}
}

func TestExecuteCachesDiagram(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	g, opts := testGraph(), testOptions()

	first, err := r.Execute(ctx, g, opts)
	if err != nil {
		t.Fatal(err)
	}

	second, err := r.Execute(ctx, g, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.DiagramHit {
		t.Error("second run should hit the diagram cache")
	}
	if !bytes.Equal(first.SVG, second.SVG) {
		t.Error("cached diagram should be byte-identical")
	}
}

func TestExecuteReusesLayoutAcrossSelections(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	g, opts := testGraph(), testOptions()

	if _, err := r.Execute(ctx, g, opts); err != nil {
		t.Fatal(err)
	}

	// A different selection changes the diagram key but not the layout
	// key, so only the layout stage should hit.
	opts.Selected = "sales"
	result, err := r.Execute(ctx, g, opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.DiagramHit {
		t.Error("changed selection should miss the diagram cache")
	}
	if !result.CacheInfo.LayoutHit {
		t.Error("changed selection should still hit the layout cache")
	}
	if !result.SelectedFound {
		t.Error("selection should resolve to a node")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	g, opts := testGraph(), testOptions()

	if _, err := r.Execute(ctx, g, opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	result, err := r.Execute(ctx, g, opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.DiagramHit || result.CacheInfo.LayoutHit {
		t.Error("refresh should bypass cache reads")
	}
}

func TestExecuteUnknownSelection(t *testing.T) {
	r := newTestRunner()

	opts := testOptions()
	opts.Selected = "ghost"
	result, err := r.Execute(context.Background(), testGraph(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.SelectedFound {
		t.Error("unknown selection should report SelectedFound = false")
	}
	if !bytes.Contains(result.SVG, []byte("<svg")) {
		t.Error("diagram should still render without emphasis")
	}
}

func TestExecuteEmptyGraph(t *testing.T) {
	r := newTestRunner()

	result, err := r.Execute(context.Background(), graph.Graph{}, testOptions())
	if err != nil {
		t.Fatalf("empty graph should render a placeholder, got error %v", err)
	}
	if !bytes.Contains(result.SVG, []byte("<svg")) {
		t.Error("empty graph should still produce an SVG document")
	}
}
