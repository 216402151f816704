// core/matcher/pattern.go
package matcher

import (
	"fmt"
	"strings"
	"unicode"
)

// CaseMode controls how pattern terms compare letter case.
type CaseMode int

const (
	// CaseSmart makes a term case-sensitive only when it contains an
	// upper-case rune.
	CaseSmart CaseMode = iota
	CaseIgnore
	CaseRespect
)

// ParseCaseMode maps a CLI flag value to a CaseMode.
func ParseCaseMode(s string) (CaseMode, error) {
	switch s {
	case "smart":
		return CaseSmart, nil
	case "ignore":
		return CaseIgnore, nil
	case "respect":
		return CaseRespect, nil
	default:
		return CaseSmart, fmt.Errorf("unknown case mode %q (want smart|ignore|respect)", s)
	}
}

type termKind int

const (
	termFuzzy termKind = iota
	termExact           // 'x: exact substring
	termPrefix          // ^x
	termSuffix          // x$
	termEqual           // ^x$
)

type term struct {
	text          []rune // already case-folded when !caseSensitive
	kind          termKind
	inv           bool // !x: line must NOT match this term
	caseSensitive bool
}

// Pattern is the compiled, immutable form of a query. It is parsed once,
// shared read-only for the process lifetime, and never mutated afterwards.
type Pattern struct {
	terms     []term
	normalize bool
}

// ParsePattern compiles pattern into its term list. Terms are separated by
// whitespace and every term must hold for a line to match. Operators:
//
//	'x   exact substring       ^x   prefix
//	x$   suffix                ^x$  whole line
//	!x   inverse (exact)
//
// When fuzzy is false, bare terms match as exact substrings instead of
// subsequences.
func ParsePattern(mode CaseMode, normalize bool, pattern string, fuzzy bool) *Pattern {
	p := &Pattern{normalize: normalize}
	for _, tok := range strings.Fields(pattern) {
		t := term{kind: termFuzzy}
		if !fuzzy {
			t.kind = termExact
		}

		if strings.HasPrefix(tok, "!") {
			t.inv = true
			t.kind = termExact
			tok = tok[1:]
		}
		switch {
		case strings.HasPrefix(tok, "'"):
			t.kind = termExact
			tok = tok[1:]
		case strings.HasPrefix(tok, "^"):
			t.kind = termPrefix
			tok = tok[1:]
		}
		if strings.HasSuffix(tok, "$") {
			if t.kind == termPrefix {
				t.kind = termEqual
			} else {
				t.kind = termSuffix
			}
			tok = tok[:len(tok)-1]
		}
		if tok == "" {
			continue
		}

		if normalize {
			tok = Normalize(tok)
		}
		t.caseSensitive = termCaseSensitive(mode, tok)
		if t.caseSensitive {
			t.text = []rune(tok)
		} else {
			t.text = []rune(strings.ToLower(tok))
		}
		p.terms = append(p.terms, t)
	}
	return p
}

func termCaseSensitive(mode CaseMode, tok string) bool {
	switch mode {
	case CaseRespect:
		return true
	case CaseIgnore:
		return false
	}
	for _, r := range tok {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
