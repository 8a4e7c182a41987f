package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/permlens/permlens/pkg/cache"
	"github.com/permlens/permlens/pkg/config"
)

// cacheDir resolves the file-cache directory: the configured one, or
// ~/.cache/permlens (per os.UserCacheDir) as fallback.
func cacheDir(cfg config.CacheConfig) string {
	if cfg.Dir != "" {
		return cfg.Dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ".permlens-cache"
	}
	return filepath.Join(base, "permlens")
}

// newRenderCache builds the cache backend selected by config. Backend
// failures degrade to the null cache rather than failing the command:
// caching is an optimization, never a requirement.
func newRenderCache(ctx context.Context, cfg config.CacheConfig, logger *log.Logger) cache.Cache {
	switch cfg.Backend {
	case "", "none":
		return cache.NewNullCache()
	case "memory":
		return cache.NewMemoryCache()
	case "file":
		c, err := cache.NewFileCache(cacheDir(cfg))
		if err != nil {
			logger.Warn("file cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache()
		}
		return c
	case "redis":
		c, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", "addr", cfg.RedisAddr, "err", err)
			return cache.NewNullCache()
		}
		return c
	default:
		logger.Warn("unknown cache backend, caching disabled", "backend", cfg.Backend)
		return cache.NewNullCache()
	}
}

// newCacheCmd creates the cache command for managing the local render
// cache.
func newCacheCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local render cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			printKeyValue("cache dir", cacheDir(cfg.Cache))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached layouts and diagrams",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			dir := cacheDir(cfg.Cache)
			if err := os.RemoveAll(dir); err != nil {
				return err
			}
			printSuccess("Cache cleared")
			printFile(dir)
			return nil
		},
	})

	return cmd
}
