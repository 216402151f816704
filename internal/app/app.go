// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"fzrank-core/matcher"
	"fzrank/internal/cli"
	"fzrank/internal/engine"
	"fzrank/internal/output"
	"fzrank/internal/version"
)

// RunContext parses argv, scores every stdin line against the pattern, and
// prints the ranking to stdout. Exit codes: 0 normal (including zero
// matches), 2 usage error, 3 read or write error.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fzrank")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fzrank version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	caseMode, err := matcher.ParseCaseMode(opts.Case)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	eng, err := engine.New(opts.Engine, engine.Config{
		Pattern:   opts.Pattern,
		CaseMode:  caseMode,
		Normalize: opts.Normalize,
		Fuzzy:     !opts.Exact,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	list, err := runPipeline(parent, eng, threads, opts.MinScore, stdin)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// appshell turns this into 130.
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.Output == output.FormatJSON {
		err = output.WriteJSON(outw, list, opts.Limit)
	} else {
		err = output.WriteText(outw, list, opts.Limit)
	}
	if output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

// Run is RunContext without cancellation, for tests and simple callers.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
