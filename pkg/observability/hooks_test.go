package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Diagram hooks
	d := NoopDiagramHooks{}
	d.OnLayoutStart(ctx, "hierarchical", 100)
	d.OnLayoutComplete(ctx, "hierarchical", time.Second, nil)
	d.OnRouteComplete(ctx, 40, 3, time.Millisecond)
	d.OnRenderStart(ctx, "svg")
	d.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "diagram")
	c.OnCacheMiss(ctx, "layout")
	c.OnCacheSet(ctx, "diagram", 1024)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnStoreGet(ctx, "id", true, time.Millisecond)
	s.OnStorePut(ctx, "id", 10, time.Millisecond)
	s.OnStoreDelete(ctx, "id", time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Diagram().(NoopDiagramHooks); !ok {
		t.Error("Diagram() should return NoopDiagramHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customDiagram := &testDiagramHooks{}
	SetDiagramHooks(customDiagram)
	if Diagram() != customDiagram {
		t.Error("SetDiagramHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Diagram().(NoopDiagramHooks); !ok {
		t.Error("Reset() should restore NoopDiagramHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDiagramHooks{}
	SetDiagramHooks(custom)

	// Setting nil should be ignored
	SetDiagramHooks(nil)

	if Diagram() != custom {
		t.Error("SetDiagramHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDiagramHooks struct{ NoopDiagramHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testStoreHooks struct{ NoopStoreHooks }
