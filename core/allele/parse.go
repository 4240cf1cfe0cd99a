// core/allele/parse.go
package allele

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a matched-allele name that cannot be split into a
// locus and a trailing allele number.
type ParseError struct {
	Name   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("allele name %q: %s", e.Name, e.Reason)
}

// Match is one parsed matched-allele name.
type Match struct {
	Locus  string // tokens before the number, rejoined with "-"
	Number string // trailing integer token, kept as written
}

// Key returns the index key for the locus: separators stripped so it
// lines up with normalized profile headers.
func (m Match) Key() string {
	return strings.NewReplacer("-", "", "_", "").Replace(m.Locus)
}

// ParseName splits an allele name of the form <locus>-<number> on '-'
// and '_'. The final token is the allele number; everything before it is
// the locus (loci may themselves contain separators, e.g. "gyr_B-7").
// Names without a separator or without a numeric final token are
// malformed and rejected rather than silently mis-indexed.
func ParseName(name string) (Match, error) {
	tokens := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(tokens) < 2 {
		return Match{}, &ParseError{Name: name, Reason: "no locus/number separator"}
	}
	num := tokens[len(tokens)-1]
	if _, err := strconv.Atoi(num); err != nil {
		return Match{}, &ParseError{Name: name, Reason: "trailing token is not an allele number"}
	}
	return Match{
		Locus:  strings.Join(tokens[:len(tokens)-1], "-"),
		Number: num,
	}, nil
}

// Index maps a locus key (separator-free) to its matched allele number.
type Index map[string]string

// NewIndex parses every name and builds the locus→number mapping.
// A locus appearing more than once keeps the last occurrence.
func NewIndex(names []string) (Index, error) {
	idx := make(Index, len(names))
	for _, n := range names {
		m, err := ParseName(n)
		if err != nil {
			return nil, err
		}
		idx[m.Key()] = m.Number
	}
	return idx, nil
}
