// Package config loads Permlens configuration from TOML files.
//
// Configuration is optional: every field has a working default, and a
// missing config file is not an error. The CLI looks for permlens.toml in
// the working directory unless a path is given with --config.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/permlens/permlens/pkg/errors"
	"github.com/permlens/permlens/pkg/layout"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "permlens.toml"

// Config is the full application configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// LayoutConfig controls layout geometry and fitting.
type LayoutConfig struct {
	Direction   string  `toml:"direction"`
	Strategy    string  `toml:"strategy"`
	NodeWidth   float64 `toml:"node_width"`
	NodeHeight  float64 `toml:"node_height"`
	NodeSep     float64 `toml:"node_sep"`
	RankSep     float64 `toml:"rank_sep"`
	Margin      float64 `toml:"margin"`
	FitFactor   float64 `toml:"fit_factor"`
	MaxFitScale float64 `toml:"max_fit_scale"`
	Viewport    struct {
		Width  string `toml:"width"`
		Height string `toml:"height"`
	} `toml:"viewport"`
}

// ServerConfig controls the API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	// Backend is one of "none", "memory", "file", "redis".
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       duration `toml:"ttl"`
}

// StoreConfig selects the graph store backend.
type StoreConfig struct {
	// Backend is one of "memory", "mongo".
	Backend  string `toml:"backend"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// duration wraps time.Duration for TOML strings like "15m".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Duration returns the cache TTL as a time.Duration.
func (c CacheConfig) Duration() time.Duration { return time.Duration(c.TTL) }

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.Layout.Direction = string(layout.DirectionTB)
	c.Layout.Strategy = string(layout.StrategyHierarchical)

	opts := layout.DefaultOptions()
	c.Layout.NodeWidth = opts.NodeWidth
	c.Layout.NodeHeight = opts.NodeHeight
	c.Layout.NodeSep = opts.NodeSep
	c.Layout.RankSep = opts.RankSep
	c.Layout.Margin = opts.Margin
	c.Layout.FitFactor = opts.FitFactor
	c.Layout.MaxFitScale = opts.MaxFitScale

	c.Server.Addr = ":8080"
	c.Cache.Backend = "memory"
	c.Cache.TTL = duration(15 * time.Minute)
	c.Store.Backend = "memory"
	return c
}

// Load reads the config file at path. An empty path tries
// [DefaultFilename] and silently falls back to defaults when it does not
// exist; an explicit path that is missing or malformed is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return c, nil
}

// LayoutOptions converts the layout section into engine options,
// validating the direction and strategy names.
func (c Config) LayoutOptions() (layout.Options, error) {
	opts := layout.DefaultOptions()

	dir, err := layout.ParseDirection(c.Layout.Direction)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidDirection, err, "config layout.direction")
	}
	strat, err := layout.ParseStrategy(c.Layout.Strategy)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidStrategy, err, "config layout.strategy")
	}

	opts.Direction = dir
	opts.Strategy = strat
	if c.Layout.NodeWidth > 0 {
		opts.NodeWidth = c.Layout.NodeWidth
	}
	if c.Layout.NodeHeight > 0 {
		opts.NodeHeight = c.Layout.NodeHeight
	}
	if c.Layout.NodeSep > 0 {
		opts.NodeSep = c.Layout.NodeSep
	}
	if c.Layout.RankSep > 0 {
		opts.RankSep = c.Layout.RankSep
	}
	if c.Layout.Margin > 0 {
		opts.Margin = c.Layout.Margin
	}
	if c.Layout.FitFactor > 0 {
		opts.FitFactor = c.Layout.FitFactor
	}
	if c.Layout.MaxFitScale > 0 {
		opts.MaxFitScale = c.Layout.MaxFitScale
	}
	return opts, nil
}

// Viewport resolves the configured viewport size, tolerating CSS-style
// values and falling back to the defaults.
func (c Config) Viewport() layout.Viewport {
	return layout.ResolveViewport(c.Layout.Viewport.Width, c.Layout.Viewport.Height)
}
