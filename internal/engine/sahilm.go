// internal/engine/sahilm.go
package engine

import "github.com/sahilm/fuzzy"

// Sahilm scores with the sahilm/fuzzy library. It has no extended pattern
// syntax: the whole pattern is matched as one fuzzy term, with the
// library's own casing rules.
type Sahilm struct {
	pattern string
}

var _ Engine = (*Sahilm)(nil)

func NewSahilm(pattern string) *Sahilm { return &Sahilm{pattern: pattern} }

// NewScratch returns a stateless scratch; the library allocates per call.
func (e *Sahilm) NewScratch() Scratch { return sahilmScratch{pattern: e.pattern} }

type sahilmScratch struct {
	pattern string
}

func (s sahilmScratch) Score(text string) int {
	ms := fuzzy.Find(s.pattern, []string{text})
	if len(ms) == 0 {
		return 0
	}
	// The library can score a match below 1; clamp so a match is always
	// distinguishable from "no match".
	if ms[0].Score < 1 {
		return 1
	}
	return ms[0].Score
}
