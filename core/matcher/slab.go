// core/matcher/slab.go
package matcher

import "unicode"

// Slab is a reusable per-thread scoring workspace. Allocate one per worker
// with NewSlab and never share it across goroutines; Score reuses its
// buffers on every call so per-line allocation stays near zero.
type Slab struct {
	orig    []rune
	lower   []rune
	matches []int

	// text the rune buffers were last filled from, so repeated terms
	// against the same line skip the conversion.
	cached    string
	haveLower bool
}

// NewSlab returns a Slab with pre-grown buffers.
func NewSlab() *Slab {
	return &Slab{
		orig:    make([]rune, 0, 1024),
		lower:   make([]rune, 0, 1024),
		matches: make([]int, 0, 64),
	}
}

// fill loads text into the rune buffers. lower is built lazily because a
// fully case-sensitive pattern never needs it.
func (s *Slab) fill(text string) {
	if s.cached == text && text != "" {
		return
	}
	s.cached = text
	s.haveLower = false
	s.orig = s.orig[:0]
	for _, r := range text {
		s.orig = append(s.orig, r)
	}
}

func (s *Slab) lowered() []rune {
	if !s.haveLower {
		s.haveLower = true
		s.lower = s.lower[:0]
		for _, r := range s.orig {
			s.lower = append(s.lower, toLower(r))
		}
	}
	return s.lower
}

func toLower(r rune) rune {
	if r < 128 {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	return unicode.ToLower(r)
}
