// core/typer/resolver.go
package typer

import (
	"sort"
	"strconv"
	"sync"

	"mlst-core/allele"
	"mlst-core/profile"
)

// NearestPolicy selects the fallback ST when no profile row agrees at
// every scorable locus.
type NearestPolicy int

const (
	// NearestLowestFrequency picks the ST with the fewest matching loci.
	// This reproduces the legacy ranking, which is very likely inverted;
	// it stays the default until product owners confirm a change.
	NearestLowestFrequency NearestPolicy = iota
	// NearestLowestST ignores frequency and picks the numerically lowest
	// ST among those with at least one matching locus.
	NearestLowestST
	// NearestHighestFrequency is the corrected ranking: the best partial
	// match wins. Not wired to any default.
	NearestHighestFrequency
)

// Config holds everything a resolution needs. Inputs are immutable once
// the resolver is built.
type Config struct {
	ProfilePath string
	Alleles     []string
	Nearest     NearestPolicy
}

// Result is the full outcome of one resolution.
type Result struct {
	SequenceType        string // exact ST, "" when none
	NearestSequenceType string // fallback ST, "" when exact or no candidates
	Exact               bool
	NumLoci             int
	Frequencies         map[string]int // ST → matched locus count
}

// Matched returns the matched-locus count for the reported ST.
func (r Result) Matched() int {
	if r.Exact {
		return r.Frequencies[r.SequenceType]
	}
	return r.Frequencies[r.NearestSequenceType]
}

// Resolver cross-references an allele index against a profile table.
// The profile is read at most once, on first access; the result and any
// error are memoized, so a resolver is safe to share after construction.
type Resolver struct {
	cfg  Config
	once sync.Once
	res  Result
	err  error
}

// New creates a Resolver. No I/O happens until the first accessor call.
func New(cfg Config) *Resolver { return &Resolver{cfg: cfg} }

// Resolve computes (once) and returns the full result.
func (r *Resolver) Resolve() (Result, error) {
	r.once.Do(func() { r.res, r.err = r.resolve() })
	return r.res, r.err
}

// SequenceType returns the exact ST, if one was found.
func (r *Resolver) SequenceType() (string, bool, error) {
	res, err := r.Resolve()
	if err != nil || !res.Exact {
		return "", false, err
	}
	return res.SequenceType, true, nil
}

// NearestSequenceType returns the fallback ST, if one was selected.
func (r *Resolver) NearestSequenceType() (string, bool, error) {
	res, err := r.Resolve()
	if err != nil || res.NearestSequenceType == "" {
		return "", false, err
	}
	return res.NearestSequenceType, true, nil
}

// SequenceTypeOrNearest returns the exact ST when present, otherwise the
// nearest; ok is false only when no candidate existed at all.
func (r *Resolver) SequenceTypeOrNearest() (string, bool, error) {
	res, err := r.Resolve()
	if err != nil {
		return "", false, err
	}
	if res.Exact {
		return res.SequenceType, true, nil
	}
	if res.NearestSequenceType != "" {
		return res.NearestSequenceType, true, nil
	}
	return "", false, nil
}

func (r *Resolver) resolve() (Result, error) {
	idx, err := allele.NewIndex(r.cfg.Alleles)
	if err != nil {
		return Result{}, err
	}
	tbl, err := profile.Load(r.cfg.ProfilePath)
	if err != nil {
		return Result{}, err
	}
	return resolveTable(tbl, idx, r.cfg.Nearest), nil
}

// resolveTable scores every data row and applies the resolution policy.
func resolveTable(tbl *profile.Table, idx allele.Index, policy NearestPolicy) Result {
	hdr := tbl.Header()
	cols := tbl.ScorableColumns()
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = profile.NormalizeHeader(hdr[c])
	}

	data := tbl.Rows
	if len(data) > 0 {
		data = data[1:]
	}
	freq := make(map[string]int)
	for _, row := range data {
		for i, c := range cols {
			if c >= len(row) {
				continue // short row: missing lookup, not an error
			}
			want, ok := idx[keys[i]]
			if !ok {
				continue
			}
			if !valueEqual(want, row[c]) {
				continue
			}
			freq[row[0]]++
		}
	}

	res := Result{NumLoci: len(cols), Frequencies: freq}
	if len(freq) == 0 {
		return res
	}

	if res.NumLoci > 0 {
		var full []string
		for st, n := range freq {
			if n == res.NumLoci {
				full = append(full, st)
			}
		}
		if len(full) > 0 {
			sortByST(full)
			res.SequenceType = full[0]
			res.Exact = true
			return res
		}
	}

	res.NearestSequenceType = pickNearest(freq, policy)
	return res
}

// pickNearest orders candidate STs per policy, ties broken by lowest ST.
func pickNearest(freq map[string]int, policy NearestPolicy) string {
	sts := make([]string, 0, len(freq))
	for st := range freq {
		sts = append(sts, st)
	}
	sortByST(sts)
	switch policy {
	case NearestLowestST:
		return sts[0]
	case NearestHighestFrequency:
		sort.SliceStable(sts, func(i, j int) bool { return freq[sts[i]] > freq[sts[j]] })
	default: // NearestLowestFrequency
		sort.SliceStable(sts, func(i, j int) bool { return freq[sts[i]] < freq[sts[j]] })
	}
	return sts[0]
}

// sortByST orders STs numerically when possible; numeric STs sort before
// non-numeric ones, the rest lexicographically.
func sortByST(sts []string) {
	sort.Slice(sts, func(i, j int) bool {
		a, aerr := strconv.Atoi(sts[i])
		b, berr := strconv.Atoi(sts[j])
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return sts[i] < sts[j]
		}
	})
}

// valueEqual compares a matched allele number against a profile cell:
// exact string match, with a numeric fallback so "07" equals "7".
func valueEqual(a, b string) bool {
	if a == b {
		return true
	}
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	return aerr == nil && berr == nil && ai == bi
}
