// Package uniprot fetches protein entries and variation data from the
// EBI proteins API.
//
// Two endpoints are used:
//
//   - /proteins/{accession}: the entry itself (name, sequence, length)
//   - /variation/{accession}: per-residue variants for the variation track
//
// Responses are cached through [httputil.Cache] with the client's TTL and
// retried on transient failures. Accessions are validated before any
// request goes out, so a typo fails fast instead of burning a network
// round trip.
//
// [httputil.Cache]: github.com/elena-krismer/nightingale/pkg/httputil.Cache
package uniprot
