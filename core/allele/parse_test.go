// core/allele/parse_test.go
package allele

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseName(t *testing.T) {
	cases := []struct {
		in, locus, num string
	}{
		{"adk-2", "adk", "2"},
		{"purA-3", "purA", "3"},
		{"gyrB_12", "gyrB", "12"},
		{"gyr_B-7", "gyr-B", "7"},
		{"abc_def_9", "abc-def", "9"},
	}
	for _, c := range cases {
		m, err := ParseName(c.in)
		if err != nil {
			t.Fatalf("ParseName(%q): %v", c.in, err)
		}
		if m.Locus != c.locus || m.Number != c.num {
			t.Errorf("ParseName(%q) = %q/%q, want %q/%q", c.in, m.Locus, m.Number, c.locus, c.num)
		}
	}
}

func TestParseNameMalformed(t *testing.T) {
	for _, in := range []string{"adk", "", "adk-x", "gyrB-"} {
		_, err := ParseName(in)
		if err == nil {
			t.Errorf("ParseName(%q): expected error", in)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseName(%q): error is %T, want *ParseError", in, err)
		}
	}
}

func TestKeyStripsSeparators(t *testing.T) {
	m, err := ParseName("gyr_B-7")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Key() != "gyrB" {
		t.Errorf("Key = %q, want gyrB", m.Key())
	}
}

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex([]string{"adk-2", "purA-3", "recA-1"})
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	want := map[string]string{"adk": "2", "purA": "3", "recA": "1"}
	for k, v := range want {
		if idx[k] != v {
			t.Errorf("idx[%s] = %q, want %q", k, idx[k], v)
		}
	}
}

func TestNewIndexLastMatchWins(t *testing.T) {
	idx, err := NewIndex([]string{"adk-2", "adk-5"})
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if idx["adk"] != "5" {
		t.Errorf("duplicate locus should keep last match, got %q", idx["adk"])
	}
}

func TestNewIndexMalformed(t *testing.T) {
	if _, err := NewIndex([]string{"adk-2", "bad"}); err == nil {
		t.Fatal("expected error for malformed allele name")
	}
}

func TestLoadList(t *testing.T) {
	p := filepath.Join(t.TempDir(), "alleles.txt")
	content := "# matched alleles\nadk-2\n\npurA-3\nrecA-1\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	names, err := LoadList(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(names) != 3 || names[0] != "adk-2" || names[2] != "recA-1" {
		t.Fatalf("bad names %v", names)
	}
}

func TestLoadListRejectsWhitespace(t *testing.T) {
	p := filepath.Join(t.TempDir(), "alleles.txt")
	if err := os.WriteFile(p, []byte("adk-2 extra\n"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := LoadList(p); err == nil {
		t.Fatal("expected error for whitespace in allele name")
	}
}
