// Package integrations provides HTTP clients for remote sequence and
// annotation APIs.
//
// # Overview
//
// This package contains low-level API clients for fetching the data that
// tracks display. Each data source has its own subpackage:
//
//   - [uniprot]: UniProt/EBI proteins API (sequences, variation)
//
// # Client Pattern
//
// All source clients follow a consistent pattern:
//
//	client := uniprot.NewClient(cache)
//	entry, err := client.FetchEntry(ctx, "P05067", false)  // false = use cache
//
// Clients handle:
//   - HTTP requests with retry for transient failures
//   - Response caching (file-based, configurable TTL)
//   - API-specific parsing and normalization
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all source
// clients, including HTTP response caching via [httputil.Cache] and
// observability hooks for every request.
//
// # Adding a New Source
//
// To add support for a new annotation source:
//
//  1. Create a subpackage: pkg/integrations/<source>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with Fetch methods
//  4. Use [NewClient] for HTTP with caching
//
// [uniprot]: github.com/elena-krismer/nightingale/pkg/integrations/uniprot
// [httputil.Cache]: github.com/elena-krismer/nightingale/pkg/httputil.Cache
package integrations
