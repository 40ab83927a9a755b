package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// The server uses it to give each viewer session its own snapshot
// namespace while sequence and track payloads stay shared.
//
// Example usage:
//
//	// Session-specific keys for rendered snapshots
//	sessionKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "session:abc123:")
//
//	// Global keys for public sequence data
//	globalKeyer := cache.NewDefaultKeyer()
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

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// SequenceKey generates a prefixed key for a sequence payload.
func (k *ScopedKeyer) SequenceKey(accession string) string {
	return k.prefix + k.inner.SequenceKey(accession)
}

// TrackKey generates a prefixed key for per-track data.
func (k *ScopedKeyer) TrackKey(accession, track string, opts TrackKeyOpts) string {
	return k.prefix + k.inner.TrackKey(accession, track, opts)
}

// SnapshotKey generates a prefixed key for a rendered snapshot.
func (k *ScopedKeyer) SnapshotKey(accession string, opts SnapshotKeyOpts) string {
	return k.prefix + k.inner.SnapshotKey(accession, opts)
}
