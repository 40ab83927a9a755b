package data

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/elena-krismer/nightingale/pkg/errors"
)

// Variant is one per-residue variant ready for the variation track.
type Variant struct {
	Position    int    `json:"position"`
	WildType    string `json:"wild_type"`
	Alternative string `json:"alternative"`
	Consequence string `json:"consequence"`
}

// VariantSet holds the parsed variants of one accession.
type VariantSet struct {
	Accession string
	Variants  []Variant // sorted by position
}

// variationPayload mirrors the UniProt proteins API variation response.
// Positions arrive as strings in the payload.
type variationPayload struct {
	Accession string `json:"accession"`
	Features  []struct {
		Type                string `json:"type"`
		Begin               string `json:"begin"`
		End                 string `json:"end"`
		WildType            string `json:"wildType"`
		AlternativeSequence string `json:"alternativeSequence"`
		ConsequenceType     string `json:"consequenceType"`
	} `json:"features"`
}

// ParseVariants transforms a UniProt variation JSON payload into track
// input. Features that are not variants, or whose position does not
// parse, are skipped rather than failing the whole payload.
func ParseVariants(payload []byte) (*VariantSet, error) {
	var raw variationPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidVariants, err, "parse variation payload")
	}

	vs := &VariantSet{Accession: raw.Accession}
	for _, f := range raw.Features {
		if f.Type != "VARIANT" {
			continue
		}
		pos, err := strconv.Atoi(f.Begin)
		if err != nil || pos < 1 {
			continue
		}
		vs.Variants = append(vs.Variants, Variant{
			Position:    pos,
			WildType:    f.WildType,
			Alternative: f.AlternativeSequence,
			Consequence: f.ConsequenceType,
		})
	}

	sort.Slice(vs.Variants, func(i, j int) bool {
		return vs.Variants[i].Position < vs.Variants[j].Position
	})
	return vs, nil
}

// FilterConsequence returns the variants matching the given consequence
// type. An empty filter returns the full set.
func (vs *VariantSet) FilterConsequence(consequence string) []Variant {
	if consequence == "" {
		return vs.Variants
	}
	var out []Variant
	for _, v := range vs.Variants {
		if v.Consequence == consequence {
			out = append(out, v)
		}
	}
	return out
}

// InRange returns the variants whose position falls inside [start, end].
func (vs *VariantSet) InRange(start, end float64) []Variant {
	var out []Variant
	for _, v := range vs.Variants {
		p := float64(v.Position)
		if p >= start && p <= end {
			out = append(out, v)
		}
	}
	return out
}
