// Package cache provides pluggable caching for fetched sequence data and
// rendered snapshots.
//
// The [Cache] interface has four backends:
//   - [FileCache]: directory of JSON entries for CLI usage
//   - [MemoryCache]: in-process map for tests and single-shot commands
//   - [RedisCache]: shared cache for multi-instance server deployments
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so that every call site agrees on
// namespacing: sequence payloads, per-track data, and rendered snapshots
// are keyed separately and options that affect the payload are hashed into
// the key.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A TTL of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TrackKeyOpts are the options that affect fetched track data.
type TrackKeyOpts struct {
	Source      string // e.g. "uniprot", "ebi-variation"
	Consequence string // variant consequence filter, if any
}

// SnapshotKeyOpts are the options that affect a rendered snapshot.
type SnapshotKeyOpts struct {
	Start  float64
	End    float64
	Width  int
	Height int
	Format string // "svg" or "png"
	Tracks []string
}

// Keyer generates cache keys for the different payload kinds.
type Keyer interface {
	// HTTPKey keys a raw HTTP response by namespace and request key.
	HTTPKey(namespace, key string) string

	// SequenceKey keys a fetched sequence payload by accession.
	SequenceKey(accession string) string

	// TrackKey keys fetched per-track data (variants, contacts).
	TrackKey(accession, track string, opts TrackKeyOpts) string

	// SnapshotKey keys a rendered snapshot of a visible range.
	SnapshotKey(accession string, opts SnapshotKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// SequenceKey generates a key for a sequence payload.
func (k *DefaultKeyer) SequenceKey(accession string) string {
	return "seq:" + accession
}

// TrackKey generates a key for per-track data. Options are hashed into
// the key so different filters never collide.
func (k *DefaultKeyer) TrackKey(accession, track string, opts TrackKeyOpts) string {
	return hashKey("track", accession, track, opts)
}

// SnapshotKey generates a key for a rendered snapshot.
func (k *DefaultKeyer) SnapshotKey(accession string, opts SnapshotKeyOpts) string {
	return hashKey("snap", accession, opts)
}
