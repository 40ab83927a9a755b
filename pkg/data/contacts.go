// Package data parses the inputs consumed by the track widgets: residue
// contact maps for the links track and UniProt variation payloads for the
// variation track.
package data

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/elena-krismer/nightingale/pkg/errors"
)

// Contact is one residue pair in a contact map. From < To always holds;
// parsing normalizes reversed pairs.
type Contact struct {
	From int
	To   int
}

// ContactMap holds the parsed contacts of one sequence.
type ContactMap struct {
	// Contacts is deduplicated and sorted by (From, To).
	Contacts []Contact

	// MaxIndex is the highest residue index seen, used to sanity-check
	// the map against the sequence length.
	MaxIndex int
}

// ParseContacts reads a contact map in line format. Each line is
//
//	index:partner,partner,...
//
// where index and partners are 1-based residue positions. Blank lines and
// lines starting with '#' are skipped. A line without ':' or with a
// non-numeric field is an INVALID_CONTACTS error naming the line number.
func ParseContacts(r io.Reader) (*ContactMap, error) {
	cm := &ContactMap{}
	seen := make(map[Contact]bool)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idxStr, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidContacts,
				"line "+strconv.Itoa(lineNo)+": missing ':' separator")
		}
		from, err := parseIndex(idxStr, lineNo)
		if err != nil {
			return nil, err
		}
		if from > cm.MaxIndex {
			cm.MaxIndex = from
		}

		for _, field := range strings.Split(rest, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			to, err := parseIndex(field, lineNo)
			if err != nil {
				return nil, err
			}
			if to > cm.MaxIndex {
				cm.MaxIndex = to
			}
			c := Contact{From: from, To: to}
			if c.From > c.To {
				c.From, c.To = c.To, c.From
			}
			if c.From == c.To || seen[c] {
				continue
			}
			seen[c] = true
			cm.Contacts = append(cm.Contacts, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidContacts, err, "read contact map")
	}

	sortContacts(cm.Contacts)
	return cm, nil
}

// InRange returns the contacts whose both endpoints fall inside
// [start, end]. The links track uses it to cull arcs before drawing.
func (cm *ContactMap) InRange(start, end float64) []Contact {
	var out []Contact
	for _, c := range cm.Contacts {
		if float64(c.From) >= start && float64(c.To) <= end {
			out = append(out, c)
		}
	}
	return out
}

func parseIndex(s string, lineNo int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidContacts,
			"line "+strconv.Itoa(lineNo)+": invalid residue index "+strconv.Quote(s))
	}
	return n, nil
}

func sortContacts(cs []Contact) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].From != cs[j].From {
			return cs[i].From < cs[j].From
		}
		return cs[i].To < cs[j].To
	})
}
