package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	// Miss on empty cache
	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get on empty cache: ok=%v err=%v", ok, err)
	}

	// Round trip
	if err := c.Set(ctx, "k", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(data) != "value" {
		t.Fatalf("Get = %q, ok=%v, err=%v", data, ok, err)
	}

	// Delete
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get after Delete reported a hit")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "short"); ok {
		t.Error("expired entry reported as hit")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "diagram:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "diagram:abc")
	if err != nil || !ok || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, ok=%v, err=%v", data, ok, err)
	}

	// Expired entries are misses
	if err := c.Set(ctx, "stale", []byte("x"), -time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "stale"); ok {
		t.Error("expired file entry reported as hit")
	}

	if err := c.Delete(ctx, "diagram:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "diagram:abc"); ok {
		t.Error("Get after Delete reported a hit")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache stored a value")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	opts := LayoutKeyOpts{Direction: "TB", Strategy: "hierarchical", Width: 800, Height: 600}
	key := k.LayoutKey("abcd", opts)
	if !strings.HasPrefix(key, "layout:") {
		t.Errorf("LayoutKey = %q, want layout: prefix", key)
	}

	// Same inputs, same key
	if again := k.LayoutKey("abcd", opts); again != key {
		t.Error("LayoutKey not deterministic")
	}

	// Any option change produces a different key
	other := opts
	other.Direction = "LR"
	if k.LayoutKey("abcd", other) == key {
		t.Error("LayoutKey ignored the direction")
	}
	if k.LayoutKey("efgh", opts) == key {
		t.Error("LayoutKey ignored the graph hash")
	}

	dk := k.DiagramKey("abcd", DiagramKeyOpts{Format: "svg"})
	if !strings.HasPrefix(dk, "diagram:") {
		t.Errorf("DiagramKey = %q, want diagram: prefix", dk)
	}
	if k.DiagramKey("abcd", DiagramKeyOpts{Format: "svg", Selected: "admin"}) == dk {
		t.Error("DiagramKey ignored the selection")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "user:123:")

	key := scoped.LayoutKey("abcd", LayoutKeyOpts{Direction: "TB"})
	if !strings.HasPrefix(key, "user:123:layout:") {
		t.Errorf("scoped key = %q, want user:123: prefix", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.DiagramKey("abcd", DiagramKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "prefix:diagram:") {
		t.Errorf("key = %q, want prefix:diagram:", key)
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("content"))
	if len(h) != 64 {
		t.Errorf("hash length = %d, want 64", len(h))
	}
	if h != Hash([]byte("content")) {
		t.Error("Hash not deterministic")
	}
	if h == Hash([]byte("other")) {
		t.Error("distinct inputs collided")
	}
}
