package uniprot

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/elena-krismer/nightingale/pkg/data"
	"github.com/elena-krismer/nightingale/pkg/errors"
	"github.com/elena-krismer/nightingale/pkg/httputil"
	"github.com/elena-krismer/nightingale/pkg/integrations"
)

// Entry holds the protein data a viewer needs: identity, the residue
// sequence, and its length.
//
// Zero values: all string fields are empty, Length is 0. This struct is
// safe for concurrent reads after construction.
type Entry struct {
	Accession string // Canonical accession (e.g., "P05067", never empty in valid entry)
	ID        string // Entry name (e.g., "A4_HUMAN", may be empty)
	Name      string // Recommended protein name (may be empty)
	Sequence  string // Residue sequence, uppercase single-letter codes
	Length    int    // Sequence length; always len(Sequence) in valid entries
}

// Client provides access to the EBI proteins API.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL      string
	variationURL string
}

// NewClient creates a UniProt client backed by the given response cache.
func NewClient(cache *httputil.Cache) *Client {
	return &Client{
		Client:       integrations.NewClient(cache, map[string]string{"Accept": "application/json"}),
		baseURL:      "https://www.ebi.ac.uk/proteins/api/proteins",
		variationURL: "https://www.ebi.ac.uk/proteins/api/variation",
	}
}

// FetchEntry retrieves a protein entry.
//
// The accession is normalized and validated first; an invalid accession
// returns an INVALID_ACCESSION error without touching the network.
// If refresh is true, the cache is bypassed and a fresh API call is made.
//
// Returns:
//   - Entry populated on success
//   - [integrations.ErrNotFound] if the accession doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//
// The returned Entry pointer is never nil if err is nil.
func (c *Client) FetchEntry(ctx context.Context, accession string, refresh bool) (*Entry, error) {
	accession = integrations.NormalizeAccession(accession)
	if err := errors.ValidateAccession(accession); err != nil {
		return nil, err
	}

	var entry Entry
	err := c.Cached(ctx, "uniprot:"+accession, refresh, &entry, func() error {
		return c.fetchEntry(ctx, accession, &entry)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FetchVariation retrieves the per-residue variants of an accession,
// parsed into track input. Accessions without variation data yield an
// empty set, not an error.
func (c *Client) FetchVariation(ctx context.Context, accession string, refresh bool) (*data.VariantSet, error) {
	accession = integrations.NormalizeAccession(accession)
	if err := errors.ValidateAccession(accession); err != nil {
		return nil, err
	}

	var vs data.VariantSet
	err := c.Cached(ctx, "variation:"+accession, refresh, &vs, func() error {
		return c.fetchVariation(ctx, accession, &vs)
	})
	if err != nil {
		return nil, err
	}
	return &vs, nil
}

func (c *Client) fetchEntry(ctx context.Context, accession string, entry *Entry) error {
	var resp entryResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s", c.baseURL, accession), &resp); err != nil {
		if stderrors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: uniprot entry %s", err, accession)
		}
		return err
	}

	*entry = Entry{
		Accession: resp.Accession,
		ID:        resp.ID,
		Name:      resp.Protein.RecommendedName.FullName.Value,
		Sequence:  resp.Sequence.Sequence,
		Length:    resp.Sequence.Length,
	}
	if entry.Length == 0 {
		entry.Length = len(entry.Sequence)
	}
	return nil
}

func (c *Client) fetchVariation(ctx context.Context, accession string, vs *data.VariantSet) error {
	payload, err := c.GetText(ctx, fmt.Sprintf("%s/%s", c.variationURL, accession))
	if err != nil {
		if stderrors.Is(err, integrations.ErrNotFound) {
			// No variation data is a legitimate state for many entries.
			*vs = data.VariantSet{Accession: accession}
			return nil
		}
		return err
	}

	parsed, err := data.ParseVariants([]byte(payload))
	if err != nil {
		return err
	}
	if parsed.Accession == "" {
		parsed.Accession = accession
	}
	*vs = *parsed
	return nil
}

type entryResponse struct {
	Accession string `json:"accession"`
	ID        string `json:"id"`
	Protein   struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"protein"`
	Sequence struct {
		Length   int    `json:"length"`
		Sequence string `json:"sequence"`
	} `json:"sequence"`
}
