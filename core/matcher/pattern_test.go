package matcher

import "testing"

func TestParseCaseMode(t *testing.T) {
	for s, want := range map[string]CaseMode{
		"smart":   CaseSmart,
		"ignore":  CaseIgnore,
		"respect": CaseRespect,
	} {
		got, err := ParseCaseMode(s)
		if err != nil || got != want {
			t.Fatalf("ParseCaseMode(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseCaseMode("loud"); err == nil {
		t.Fatal("expected error for unknown case mode")
	}
}

func TestParsePattern_Terms(t *testing.T) {
	p := ParsePattern(CaseSmart, false, "foo 'bar ^baz qux$ !quux ^all$", true)
	if len(p.terms) != 6 {
		t.Fatalf("want 6 terms, got %d", len(p.terms))
	}
	wantKinds := []termKind{termFuzzy, termExact, termPrefix, termSuffix, termExact, termEqual}
	for i, k := range wantKinds {
		if p.terms[i].kind != k {
			t.Errorf("term %d: kind %v, want %v", i, p.terms[i].kind, k)
		}
	}
	if !p.terms[4].inv {
		t.Error("term 4 should be inverse")
	}
}

func TestParsePattern_ExactModeFlipsBareTerms(t *testing.T) {
	p := ParsePattern(CaseSmart, false, "foo bar", false)
	for i := range p.terms {
		if p.terms[i].kind != termExact {
			t.Fatalf("term %d: want exact in --exact mode, got %v", i, p.terms[i].kind)
		}
	}
}

func TestParsePattern_SmartCasePerTerm(t *testing.T) {
	p := ParsePattern(CaseSmart, false, "foo Bar", true)
	if p.terms[0].caseSensitive {
		t.Error("all-lower term should be case-insensitive under smart case")
	}
	if !p.terms[1].caseSensitive {
		t.Error("term with an upper-case rune should be case-sensitive under smart case")
	}
}

func TestParsePattern_SkipsEmptyTokens(t *testing.T) {
	p := ParsePattern(CaseSmart, false, "  foo   ' ^ $ ", true)
	if len(p.terms) != 1 {
		t.Fatalf("operator-only tokens should be dropped, got %d terms", len(p.terms))
	}
}
