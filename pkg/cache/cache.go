// Package cache stores rendered model artifacts between runs.
//
// A 3D model is a pure function of the window spec, so its JSON, OBJ, PNG
// and HTML renderings can be reused until the window spec or the render options
// change. Quotations are never cached: each one carries a fresh number and
// date.
//
// Two implementations are provided: [FileCache] for the CLI and
// [NullCache] when caching is disabled.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// TTLArtifact is how long a rendered artifact stays valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts identifies one rendering of a model.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	ImageSize int    `json:"imageSize,omitempty"`
}

// keyVersion is bumped whenever a renderer's output changes for the same
// model, which orphans every older entry.
const keyVersion = "v1"

// ArtifactKey returns the key of one artifact rendered from the model
// whose serialized form hashes to modelHash.
func ArtifactKey(modelHash string, opts ArtifactKeyOpts) string {
	// Marshalling a string and a flat struct cannot fail.
	data, _ := json.Marshal([]any{keyVersion, modelHash, opts})
	return "artifact:" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache never stores anything.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
