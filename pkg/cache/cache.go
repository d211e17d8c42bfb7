// Package cache provides a small caching layer for rendered artifacts.
//
// Rendering a visualization is a pure function of the element collection and
// the encoding options, so artifacts are cached under a content hash of both.
// Re-running a command on unchanged input becomes a cache read instead of a
// recomputation.
//
// Two implementations are provided:
//   - FileCache: file-based storage for CLI usage (XDG cache directory)
//   - NullCache: no-op cache for tests and --no-cache runs
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
// Artifacts are keyed by content hash, so a long TTL is safe; the TTL only
// bounds disk growth for inputs that are never rendered again.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores opaque byte blobs under string keys with expiration.
type Cache interface {
	// Get returns the cached data and whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKeyOpts captures the encoding options that affect a rendered
// artifact. Two renders with the same elements hash but different options
// must not share a cache entry.
type ArtifactKeyOpts struct {
	Engine    string   `json:"engine"`
	Format    string   `json:"format"`
	SizeKey   string   `json:"size_key,omitempty"`
	ColorKey  string   `json:"color_key,omitempty"`
	MinSize   float64  `json:"min_size,omitempty"`
	MaxSize   float64  `json:"max_size,omitempty"`
	Palette   []string `json:"palette,omitempty"`
	Title     string   `json:"title,omitempty"`
	Tooltip   []string `json:"tooltip,omitempty"`
	Fallback  string   `json:"fallback,omitempty"`
	LabelAttr string   `json:"label_attr,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"`
}

// ArtifactKey generates a cache key for a rendered artifact.
// elementsHash is the content hash of the serialized element collection.
func ArtifactKey(elementsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", elementsHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
