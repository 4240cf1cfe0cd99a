// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"mlst-core/allele"
	"mlst-core/typer"
	"mlst/internal/cli"
	"mlst/internal/output"
	"mlst/internal/version"
	"mlst/internal/writers"
)

// RunContext is the mlst entry point: parse flags, resolve the sequence
// type, write one report. Exit codes: 0 typed (exact or nearest),
// --no-match-exit-code when neither exists, 2 usage/input error, 3 write
// error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("mlst")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		_ = outw.Flush()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mlst version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	names := opts.Alleles
	if opts.AlleleFile != "" {
		names, err = allele.LoadList(opts.AlleleFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	if err := parent.Err(); err != nil {
		return 130
	}

	policy := typer.NearestLowestFrequency
	if opts.LowestST {
		policy = typer.NearestLowestST
	}
	res, err := typer.New(typer.Config{
		ProfilePath: opts.ProfileFile,
		Alleles:     names,
		Nearest:     policy,
	}).Resolve()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if !res.Exact && res.NearestSequenceType != "" && !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "mlst: no exact ST (%d/%d loci); reporting nearest\n",
			res.Matched(), res.NumLoci)
	}

	switch opts.Output {
	case "json":
		err = output.WriteJSON(outw, res, opts.ProfileFile)
	default:
		err = output.WriteText(outw, res, opts.Header)
	}
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if !res.Exact && res.NearestSequenceType == "" {
		return opts.NoMatchExitCode
	}
	return 0
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
