package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/permlens/permlens/pkg/cache"
	"github.com/permlens/permlens/pkg/errors"
	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/layout"
	"github.com/permlens/permlens/pkg/observability"
	"github.com/permlens/permlens/pkg/render"
	"github.com/permlens/permlens/pkg/scene"
)

// Runner executes the diagram pipeline with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. The rendering stages themselves are
// single-threaded per call; concurrent calls with separate graphs are
// fine.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute turns a permission graph into an SVG diagram.
// The graph is normalized first; callers may pass it as uploaded.
func (r *Runner) Execute(ctx context.Context, g graph.Graph, opts Options) (*Result, error) {
	g = graph.Normalize(g)
	m := graph.NewModel(g)

	result := &Result{
		SelectedFound: opts.Selected == "",
		Stats: Stats{
			NodeCount: m.NodeCount(),
			EdgeCount: m.EdgeCount(),
		},
	}

	raw, err := graph.Marshal(g)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal graph")
	}
	result.GraphHash = cache.Hash(raw)

	layoutKey := r.Keyer.LayoutKey(result.GraphHash, cache.LayoutKeyOpts{
		Direction: string(opts.Layout.Direction),
		Strategy:  string(opts.Layout.Strategy),
		Width:     opts.Viewport.Width,
		Height:    opts.Viewport.Height,
	})
	diagramKey := r.Keyer.DiagramKey(cache.Hash([]byte(layoutKey)), cache.DiagramKeyOpts{
		Format:   "svg",
		Selected: opts.Selected,
	})

	if !opts.Refresh {
		if svg, hit, err := r.Cache.Get(ctx, diagramKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "diagram")
			r.Logger.Debug("diagram cache hit", "key", diagramKey)
			result.CacheInfo.DiagramHit = true
			result.SelectedFound = true // the cached render already resolved it
			result.SVG = svg
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "diagram")
	}

	layoutStart := time.Now()
	res, layoutHit, err := r.computeLayout(ctx, m, layoutKey, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	sc := scene.New(m, opts.Layout, opts.Viewport)
	sc.Apply(res, false)
	if opts.Selected != "" {
		sc.Select(opts.Selected)
		result.SelectedFound = sc.Selected() != ""
	}

	renderOptions := []render.SVGOption{render.WithTitle(opts.Title)}
	if opts.Hover {
		renderOptions = append(renderOptions, render.WithHover())
	}

	observability.Diagram().OnRenderStart(ctx, "svg")
	start := time.Now()
	svg := render.SVG(sc.Frame(), renderOptions...)
	result.Stats.RenderTime = time.Since(start)
	observability.Diagram().OnRenderComplete(ctx, "svg", len(svg), result.Stats.RenderTime, nil)
	result.SVG = svg

	if err := r.Cache.Set(ctx, diagramKey, svg, opts.TTL); err != nil {
		r.Logger.Debug("diagram cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "diagram", len(svg))
	}
	return result, nil
}

// computeLayout runs the layout pass, consulting the layout cache so a
// changed selection or title never re-runs the layout engine.
func (r *Runner) computeLayout(ctx context.Context, m *graph.Model, key string, opts Options) (*layout.Result, bool, error) {
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if res, err := layout.UnmarshalResult(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return res, true, nil
			}
			// Corrupt entry - recompute
			_ = r.Cache.Delete(ctx, key)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	observability.Diagram().OnLayoutStart(ctx, string(opts.Layout.Strategy), m.NodeCount())
	start := time.Now()
	res, err := layout.Compute(ctx, m, opts.Layout, opts.Viewport)
	elapsed := time.Since(start)
	observability.Diagram().OnLayoutComplete(ctx, string(opts.Layout.Strategy), elapsed, err)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeLayoutFailed, err, "layout pass")
	}

	if data, err := layout.MarshalResult(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
			r.Logger.Debug("layout cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return res, false, nil
}
