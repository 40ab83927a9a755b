package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// uniprotAccessionRegex matches valid UniProtKB accession numbers
// (e.g. P05067, Q9Y6K9, A0A024R161).
var uniprotAccessionRegex = regexp.MustCompile(
	`^([OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2})$`)

// ValidateAccession validates a UniProtKB accession for safety and
// correctness. It rejects values that could be used for path traversal or
// injection when the accession is interpolated into URLs and cache keys.
func ValidateAccession(acc string) error {
	if acc == "" {
		return New(ErrCodeInvalidAccession, "accession cannot be empty")
	}

	if len(acc) > 16 {
		return New(ErrCodeInvalidAccession, "accession too long (max 16 characters)")
	}

	for _, r := range acc {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAccession, "accession contains control characters")
		}
	}

	if strings.ContainsAny(acc, "/\\.") {
		return New(ErrCodeInvalidAccession, "accession contains path characters: %q", acc)
	}

	if !uniprotAccessionRegex.MatchString(acc) {
		return New(ErrCodeInvalidAccession, "invalid UniProt accession: %q", acc)
	}

	return nil
}

// ValidateRange validates an externally supplied visible-range pair.
// Non-finite values are rejected: they indicate a collaborator bug, not a
// data edge. Out-of-order or out-of-bounds finite values are NOT rejected
// here - the viewport engine clamps those.
func ValidateRange(start, end float64) error {
	if math.IsNaN(start) || math.IsInf(start, 0) {
		return New(ErrCodeInvalidRange, "range start must be finite, got %v", start)
	}
	if math.IsNaN(end) || math.IsInf(end, 0) {
		return New(ErrCodeInvalidRange, "range end must be finite, got %v", end)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// residueSequenceRegex matches amino-acid sequences (standard one-letter
// codes plus ambiguity codes B, J, X, Z and U/O).
var residueSequenceRegex = regexp.MustCompile(`^[ACDEFGHIKLMNPQRSTVWYBJXZUO]*$`)

// ValidateSequence validates a residue sequence string.
func ValidateSequence(seq string) error {
	if !residueSequenceRegex.MatchString(strings.ToUpper(seq)) {
		return New(ErrCodeInvalidFormat, "sequence contains non-residue characters")
	}
	return nil
}
