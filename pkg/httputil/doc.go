// Package httputil provides HTTP utilities for the UniProt and EBI API
// clients.
//
// # Overview
//
// This package provides infrastructure used by all remote data clients:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/nightingale/)
// with configurable TTL. Sequence and annotation payloads rarely change,
// so repeated renders of the same accession hit the disk instead of the
// network.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, err := cache.Get("uniprot:P05067", &entry)  // Check cache
//	if !ok {
//	    entry = fetchFromAPI()
//	    cache.Set("uniprot:P05067", entry)          // Store for later
//	}
//
// Cache keys should be namespaced by data source to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering the upstream APIs:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchSequence(accession)
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/nightingale/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `nightingale cache clear` or by deleting
// the cache directory.
package httputil
