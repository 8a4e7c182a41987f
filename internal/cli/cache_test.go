package cli

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/permlens/permlens/pkg/cache"
	"github.com/permlens/permlens/pkg/config"
)

func TestCacheDir(t *testing.T) {
	if got := cacheDir(config.CacheConfig{Dir: "/tmp/custom"}); got != "/tmp/custom" {
		t.Errorf("cacheDir = %q, want configured dir", got)
	}
	if got := cacheDir(config.CacheConfig{}); got == "" {
		t.Error("cacheDir should never be empty")
	}
}

func TestNewRenderCacheBackends(t *testing.T) {
	ctx := context.Background()
	logger := newLogger(io.Discard, log.ErrorLevel)

	tests := []struct {
		name string
		cfg  config.CacheConfig
	}{
		{"default is null", config.CacheConfig{}},
		{"none", config.CacheConfig{Backend: "none"}},
		{"memory", config.CacheConfig{Backend: "memory"}},
		{"file", config.CacheConfig{Backend: "file", Dir: t.TempDir()}},
		{"unknown degrades", config.CacheConfig{Backend: "carrier-pigeon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRenderCache(ctx, tt.cfg, logger)
			if c == nil {
				t.Fatal("newRenderCache returned nil")
			}
			defer c.Close()

			// Every backend must satisfy the round-trip contract or
			// silently no-op; neither may error on basic use.
			if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
				t.Errorf("Set: %v", err)
			}
			if _, _, err := c.Get(ctx, "k"); err != nil {
				t.Errorf("Get: %v", err)
			}
		})
	}
}

func TestNewRenderCacheFileBackendFailure(t *testing.T) {
	ctx := context.Background()
	logger := newLogger(io.Discard, log.ErrorLevel)

	// A file path (not a directory) makes the backend unusable; the cache
	// degrades to null instead of failing the command.
	c := newRenderCache(ctx, config.CacheConfig{Backend: "file", Dir: "/dev/null/x"}, logger)
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("got %T, want degradation to NullCache", c)
	}
}
