// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"fzrank/internal/engine"
	"fzrank/internal/output"
	"fzrank/internal/version"
)

// Options holds all CLI flags and the positional pattern.
type Options struct {
	Pattern string

	// Matching
	Case      string
	Normalize bool
	Exact     bool
	Engine    string

	// Performance
	Threads int

	// Output
	Output   string
	Limit    int
	MinScore int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: rank stdin lines by fuzzy match score

Version: %s

Usage: %s [flags] PATTERN < candidates

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Matching
	fs.StringVar(&opt.Case, "case", "smart", "case mode: smart | ignore | respect [smart]")
	fs.BoolVar(&opt.Normalize, "normalize", false, "fold latin diacritics before matching [false]")
	fs.BoolVar(&opt.Exact, "exact", false, "bare terms match as exact substrings, not subsequences [false]")
	fs.StringVar(&opt.Engine, "engine", engine.NameFzf, "scoring engine: fzf | sahilm ["+engine.NameFzf+"]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 1, "worker threads (0 = all CPUs, 1 = no pool) [1]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json ["+output.FormatText+"]")
	fs.IntVar(&opt.Limit, "limit", 0, "print at most N matches (0 = unlimited) [0]")
	fs.IntVar(&opt.MinScore, "min-score", 1, "keep matches scoring at least N [1]")

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

	// Validation
	switch opt.Case {
	case "smart", "ignore", "respect":
	default:
		return opt, fmt.Errorf("--case must be smart, ignore or respect (got %q)", opt.Case)
	}
	switch opt.Engine {
	case engine.NameFzf, engine.NameSahilm:
	default:
		return opt, fmt.Errorf("--engine must be %s or %s (got %q)", engine.NameFzf, engine.NameSahilm, opt.Engine)
	}
	switch opt.Output {
	case output.FormatText, output.FormatJSON:
	default:
		return opt, fmt.Errorf("--output must be %s or %s (got %q)", output.FormatText, output.FormatJSON, opt.Output)
	}
	if opt.Threads < 0 {
		return opt, fmt.Errorf("--threads must be >= 0 (got %d)", opt.Threads)
	}
	if opt.Limit < 0 {
		return opt, fmt.Errorf("--limit must be >= 0 (got %d)", opt.Limit)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return opt, fmt.Errorf("expected exactly one PATTERN argument (got %d)", len(rest))
	}
	opt.Pattern = rest[0]
	return opt, nil
}
