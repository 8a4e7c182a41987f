package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// LayoutKeyOpts are the inputs that change a layout result for the same
// graph content.
type LayoutKeyOpts struct {
	Direction string `json:"direction"`
	Strategy  string `json:"strategy"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// DiagramKeyOpts are the inputs that change a rendered diagram for the
// same layout.
type DiagramKeyOpts struct {
	Format   string `json:"format"`
	Selected string `json:"selected"`
}

// Keyer generates cache keys for the two cacheable stages.
type Keyer interface {
	// LayoutKey generates a key for a layout result, from the graph
	// content hash and the layout options.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// DiagramKey generates a key for a rendered diagram, from the layout
	// hash and the render options.
	DiagramKey(layoutHash string, opts DiagramKeyOpts) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout result caching.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// DiagramKey generates a key for rendered diagram caching.
func (k *DefaultKeyer) DiagramKey(layoutHash string, opts DiagramKeyOpts) string {
	return hashKey("diagram", layoutHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, giving callers separate cache
// namespaces (per user, per tenant) over one shared backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout result caching.
func (k *ScopedKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(graphHash, opts)
}

// DiagramKey generates a prefixed key for rendered diagram caching.
func (k *ScopedKeyer) DiagramKey(layoutHash string, opts DiagramKeyOpts) string {
	return k.prefix + k.inner.DiagramKey(layoutHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
