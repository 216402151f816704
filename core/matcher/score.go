// core/matcher/score.go
package matcher

import "unicode"

// Scoring weights. Base is granted for any term match; the bonuses reward
// runs, word starts and early matches the way interactive fuzzy finders
// rank their candidates.
const (
	scoreBase        = 100
	bonusConsecutive = 20
	bonusBoundary    = 15
	bonusFirstChar   = 25
	bonusExactPrefix = 50
	penaltyGap       = 2
	shortTextCutoff  = 20
)

// Score returns the match quality of text against pat, summed over all
// terms. A result <= 0 means "no match": some required term missed or an
// inverse term hit. Any real match scores at least 1. slab must not be
// shared with another goroutine.
func Score(text string, pat *Pattern, slab *Slab) int {
	if pat.normalize {
		text = Normalize(text)
	}
	slab.fill(text)

	total := 0
	matched := false
	for i := range pat.terms {
		t := &pat.terms[i]
		s := scoreTerm(slab, t)
		if t.inv {
			if s > 0 {
				return 0
			}
			continue
		}
		if s <= 0 {
			return 0
		}
		matched = true
		total += s
	}
	if !matched {
		// Only inverse terms (or an empty pattern): every surviving
		// line is an equal match.
		return 1
	}
	return total
}

func scoreTerm(slab *Slab, t *term) int {
	hay := slab.orig
	if !t.caseSensitive {
		hay = slab.lowered()
	}
	if len(t.text) > len(hay) {
		return 0
	}

	switch t.kind {
	case termFuzzy:
		if !subsequence(slab, hay, t.text) {
			return 0
		}
		return scoreMatches(slab, t.text, hay)
	case termExact:
		at := indexRunes(hay, t.text)
		if at < 0 {
			return 0
		}
		fillRun(slab, at, len(t.text))
		return scoreMatches(slab, t.text, hay)
	case termPrefix:
		if !runesEqual(hay[:len(t.text)], t.text) {
			return 0
		}
		fillRun(slab, 0, len(t.text))
		return scoreMatches(slab, t.text, hay)
	case termSuffix:
		at := len(hay) - len(t.text)
		if !runesEqual(hay[at:], t.text) {
			return 0
		}
		fillRun(slab, at, len(t.text))
		return scoreMatches(slab, t.text, hay)
	case termEqual:
		if len(hay) != len(t.text) || !runesEqual(hay, t.text) {
			return 0
		}
		fillRun(slab, 0, len(t.text))
		return scoreMatches(slab, t.text, hay)
	}
	return 0
}

// subsequence records the greedy left-to-right match positions of needle in
// hay into slab.matches.
func subsequence(slab *Slab, hay, needle []rune) bool {
	slab.matches = slab.matches[:0]
	ni := 0
	for hi := 0; hi < len(hay) && ni < len(needle); hi++ {
		if hay[hi] == needle[ni] {
			slab.matches = append(slab.matches, hi)
			ni++
		}
	}
	return ni == len(needle)
}

func fillRun(slab *Slab, start, n int) {
	slab.matches = slab.matches[:0]
	for i := 0; i < n; i++ {
		slab.matches = append(slab.matches, start+i)
	}
}

// scoreMatches turns the recorded match positions into a quality score.
func scoreMatches(slab *Slab, needle, hay []rune) int {
	m := slab.matches
	if len(m) == 0 {
		return 0
	}
	score := scoreBase

	for i := 1; i < len(m); i++ {
		if m[i] == m[i-1]+1 {
			score += bonusConsecutive
		}
	}
	for _, idx := range m {
		if isBoundary(slab.orig, idx) {
			score += bonusBoundary
		}
	}
	if m[0] == 0 {
		score += bonusFirstChar
	} else {
		score -= m[0]
	}
	if gap := m[len(m)-1] - m[0] - len(m) + 1; gap > 0 {
		score -= gap * penaltyGap
	}
	if len(hay) < shortTextCutoff {
		score += shortTextCutoff - len(hay)
	}
	if len(hay) >= len(needle) && runesEqual(hay[:len(needle)], needle) {
		score += bonusExactPrefix
	}

	if score < 1 {
		return 1
	}
	return score
}

// isBoundary reports whether the rune at idx starts a word: text start,
// after space/punctuation, or a camelCase hump.
func isBoundary(orig []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(orig) {
		return false
	}
	prev, cur := orig[idx-1], orig[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) || prev == '_' {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}

func indexRunes(hay, needle []rune) int {
	for i := 0; i+len(needle) <= len(hay); i++ {
		if runesEqual(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
