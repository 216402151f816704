// internal/engine/engine.go

// Package engine is the seam between the scoring pipeline and the fuzzy
// matcher implementations. An Engine wraps one compiled pattern and mints
// per-worker scratches; all mutable scoring state lives in the Scratch.
package engine

import (
	"fmt"

	"fzrank-core/matcher"
)

// Scratch is one worker's private scoring workspace. It must never be
// shared across goroutines.
type Scratch interface {
	// Score returns the match quality of text; <= 0 means no match.
	// Score never fails.
	Score(text string) int
}

// Engine compiles a pattern once and hands out scratches.
type Engine interface {
	NewScratch() Scratch
}

// Selectable engine names (--engine).
const (
	NameFzf    = "fzf"
	NameSahilm = "sahilm"
)

// Config carries the pattern options shared by all engines.
type Config struct {
	Pattern   string
	CaseMode  matcher.CaseMode
	Normalize bool
	Fuzzy     bool
}

// New returns the engine selected by name.
func New(name string, cfg Config) (Engine, error) {
	switch name {
	case NameFzf:
		return NewFzf(cfg), nil
	case NameSahilm:
		return NewSahilm(cfg.Pattern), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want %s|%s)", name, NameFzf, NameSahilm)
	}
}

// Fzf scores with the native matcher and its full pattern syntax.
type Fzf struct {
	pat *matcher.Pattern
}

var _ Engine = (*Fzf)(nil)

// NewFzf parses the pattern once; the result is shared read-only by every
// scratch.
func NewFzf(cfg Config) *Fzf {
	return &Fzf{pat: matcher.ParsePattern(cfg.CaseMode, cfg.Normalize, cfg.Pattern, cfg.Fuzzy)}
}

func (e *Fzf) NewScratch() Scratch {
	return &fzfScratch{pat: e.pat, slab: matcher.NewSlab()}
}

type fzfScratch struct {
	pat  *matcher.Pattern
	slab *matcher.Slab
}

func (s *fzfScratch) Score(text string) int {
	return matcher.Score(text, s.pat, s.slab)
}
