// core/profile/table.go
package profile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Sentinel header columns that are never normalized and never scored.
const (
	ClonalComplex = "clonal_complex"
	MLSTClade     = "mlst_clade"
)

// Table is a parsed ST profile table. Rows[0] is the header; the first
// column is always the ST identifier regardless of its header text.
type Table struct {
	Rows [][]string
}

// Load reads a tab-delimited profile table. A table that cannot be opened
// or read is a configuration error: the caller gets the I/O error as-is,
// wrapped with the path, and must not retry.
func Load(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()

	var rows [][]string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &Table{Rows: rows}, nil
}

// NormalizeHeader strips '_' and '-' from a header cell so it lines up
// with locus keys derived from allele names. The sentinel annotation
// columns are left untouched.
func NormalizeHeader(cell string) string {
	if cell == ClonalComplex || cell == MLSTClade {
		return cell
	}
	return strings.NewReplacer("_", "", "-", "").Replace(cell)
}

// Header returns the raw header row, or nil for an empty table.
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// ScorableColumns returns the header indices that participate in scoring:
// every column except column 0 (the ST column) and the sentinel
// annotation columns, wherever they appear.
func (t *Table) ScorableColumns() []int {
	hdr := t.Header()
	var cols []int
	for i := 1; i < len(hdr); i++ {
		if hdr[i] == ClonalComplex || hdr[i] == MLSTClade {
			continue
		}
		cols = append(cols, i)
	}
	return cols
}

// NumLoci is the count of scorable columns.
func (t *Table) NumLoci() int { return len(t.ScorableColumns()) }
