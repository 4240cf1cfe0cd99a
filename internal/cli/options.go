// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"mlst/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	ProfileFile string
	AlleleFile  string
	Alleles     []string // positional allele names

	// Typing
	LowestST bool

	// Output
	Output          string // text|json
	Header          bool   // true unless --no-header
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: multi-locus sequence typing from matched alleles

Version: %s

Usage:
  %s --profile profiles.tsv adk-2 purA-3 recA-1
  %s --profile profiles.tsv --alleles matched.txt

Flags:
`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Remaining positional arguments are taken as matched allele names.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ProfileFile, "profile", "", "tab-delimited ST profile table [*]")
	fs.StringVar(&opt.ProfileFile, "p", "", "alias of --profile")
	fs.StringVar(&opt.AlleleFile, "alleles", "", "file of matched allele names, one per line")
	fs.StringVar(&opt.AlleleFile, "a", "", "alias of --alleles")

	fs.BoolVar(&opt.LowestST, "lowest-st", false, "nearest fallback picks the lowest ST number instead of ranking by frequency [false]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no ST (exact or nearest) is found [1]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Alleles = fs.Args()
	opt.Header = !noHeader

	// Validation
	if opt.ProfileFile == "" {
		return opt, errors.New("--profile is required")
	}
	usingFile := opt.AlleleFile != ""
	usingInline := len(opt.Alleles) > 0
	switch {
	case usingFile && usingInline:
		return opt, errors.New("--alleles conflicts with positional allele names")
	case !usingFile && !usingInline:
		return opt, errors.New("provide --alleles or positional allele names")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.NoMatchExitCode < 0 {
		return opt, errors.New("--no-match-exit-code must be ≥ 0")
	}
	return opt, nil
}
