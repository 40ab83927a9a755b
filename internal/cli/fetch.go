package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/elena-krismer/nightingale/pkg/data"
	"github.com/elena-krismer/nightingale/pkg/httputil"
	"github.com/elena-krismer/nightingale/pkg/integrations/uniprot"
	"github.com/elena-krismer/nightingale/pkg/track"
)

// newUniProtClient builds a UniProt client backed by the on-disk response
// cache under ~/.cache/nightingale/.
func newUniProtClient(cfg *Config) (*uniprot.Client, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	httpCache, err := httputil.NewCache(dir, time.Duration(cfg.Cache.TTLHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}
	return uniprot.NewClient(httpCache), nil
}

// fetchOpts selects what fetchViewData loads alongside the entry itself.
type fetchOpts struct {
	contactsPath string // path to a contact map file; empty skips the links track
	noVariants   bool   // skip the variation fetch
	refresh      bool   // bypass the response cache
}

// viewData bundles everything a view of one accession needs.
type viewData struct {
	entry  *uniprot.Entry
	tracks []track.Track
}

// fetchViewData loads the entry, its variants, and an optional contact map,
// and assembles the track list. The sequence track is always first; the
// variation track appears only when the entry has variants.
func fetchViewData(ctx context.Context, client *uniprot.Client, accession string, opts fetchOpts) (*viewData, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	entry, err := client.FetchEntry(ctx, accession, opts.refresh)
	if err != nil {
		return nil, err
	}
	vd := &viewData{
		entry:  entry,
		tracks: []track.Track{track.NewSequenceTrack(entry.Sequence)},
	}

	if !opts.noVariants {
		vs, err := client.FetchVariation(ctx, accession, opts.refresh)
		if err != nil {
			return nil, err
		}
		if len(vs.Variants) > 0 {
			vd.tracks = append(vd.tracks, track.NewVariationTrack(vs))
		}
		logger.Debug("fetched variation", "accession", entry.Accession, "variants", len(vs.Variants))
	}

	if opts.contactsPath != "" {
		cm, err := loadContacts(opts.contactsPath)
		if err != nil {
			return nil, err
		}
		vd.tracks = append(vd.tracks, track.NewLinksTrack(cm))
		logger.Debug("loaded contacts", "path", opts.contactsPath, "contacts", len(cm.Contacts))
	}

	prog.done(fmt.Sprintf("Fetched %s (%d residues, %d tracks)",
		entry.Accession, entry.Length, len(vd.tracks)))
	return vd, nil
}

func loadContacts(path string) (*data.ContactMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open contact map: %w", err)
	}
	defer f.Close()
	return data.ParseContacts(f)
}
