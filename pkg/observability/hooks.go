// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout passes, edge routing, rendering, cache
// operations, and graph storage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDiagramHooks(&myDiagramHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Diagram().OnLayoutStart(ctx, strategy, nodeCount)
//	// ... run layout ...
//	observability.Diagram().OnLayoutComplete(ctx, strategy, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Diagram Hooks
// =============================================================================

// DiagramHooks receives events from the diagram pipeline.
type DiagramHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, strategy string, nodeCount int)
	OnLayoutComplete(ctx context.Context, strategy string, duration time.Duration, err error)

	// Routing events. detour reports how many edges fell back to the
	// detour curve, a rough congestion signal.
	OnRouteComplete(ctx context.Context, edgeCount, detourCount int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, bytes int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from graph store operations.
type StoreHooks interface {
	// OnStoreGet records a lookup and whether it found the graph.
	OnStoreGet(ctx context.Context, id string, found bool, duration time.Duration)

	// OnStorePut records a save.
	OnStorePut(ctx context.Context, id string, nodeCount int, duration time.Duration)

	// OnStoreDelete records a deletion.
	OnStoreDelete(ctx context.Context, id string, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDiagramHooks is a no-op implementation of DiagramHooks.
type NoopDiagramHooks struct{}

func (NoopDiagramHooks) OnLayoutStart(context.Context, string, int)                     {}
func (NoopDiagramHooks) OnLayoutComplete(context.Context, string, time.Duration, error) {}
func (NoopDiagramHooks) OnRouteComplete(context.Context, int, int, time.Duration)       {}
func (NoopDiagramHooks) OnRenderStart(context.Context, string)                          {}
func (NoopDiagramHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreGet(context.Context, string, bool, time.Duration) {}
func (NoopStoreHooks) OnStorePut(context.Context, string, int, time.Duration)  {}
func (NoopStoreHooks) OnStoreDelete(context.Context, string, time.Duration)    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	diagramHooks DiagramHooks = NoopDiagramHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	storeHooks   StoreHooks   = NoopStoreHooks{}
	hooksMu      sync.RWMutex
)

// SetDiagramHooks registers custom diagram hooks.
// This should be called once at application startup before any pipeline operations.
func SetDiagramHooks(h DiagramHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		diagramHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Diagram returns the registered diagram hooks.
func Diagram() DiagramHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return diagramHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	diagramHooks = NoopDiagramHooks{}
	cacheHooks = NoopCacheHooks{}
	storeHooks = NoopStoreHooks{}
}
