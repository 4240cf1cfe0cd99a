// core/allele/loader.go
package allele

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadList reads matched allele names from a file, one per line.
// Blank lines and '#' comments are skipped.
func LoadList(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var names []string
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.ContainsAny(line, " \t") {
			return nil, fmt.Errorf("%s:%d allele name contains whitespace", path, ln)
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
