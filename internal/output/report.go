// internal/output/report.go
package output

import (
	"fmt"
	"io"

	"mlst-core/typer"
	"mlst/internal/jsonutil"
	"mlst/pkg/api"
)

// TextHeader is the column line for TSV output.
const TextHeader = "st\texact\tnearest_st\tmatched_loci\tnum_loci"

// ToAPIReport converts a domain result to the stable wire schema (v1).
func ToAPIReport(res typer.Result, profilePath string) api.ReportV1 {
	return api.ReportV1{
		SequenceType:        res.SequenceType,
		NearestSequenceType: res.NearestSequenceType,
		Exact:               res.Exact,
		MatchedLoci:         res.Matched(),
		NumLoci:             res.NumLoci,
		Profile:             profilePath,
	}
}

// WriteText prints one TSV line for the result; absent values print "-".
func WriteText(w io.Writer, res typer.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TextHeader); err != nil {
			return err
		}
	}
	st := res.SequenceType
	if st == "" {
		st = "-"
	}
	near := res.NearestSequenceType
	if near == "" {
		near = "-"
	}
	_, err := fmt.Fprintf(w, "%s\t%t\t%s\t%d\t%d\n",
		st, res.Exact, near, res.Matched(), res.NumLoci)
	return err
}

// WriteJSON writes the v1 report (pretty-indented).
func WriteJSON(w io.Writer, res typer.Result, profilePath string) error {
	return jsonutil.EncodePretty(w, ToAPIReport(res, profilePath))
}
