package matcher

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"café":     "cafe",
		"naïve":    "naive",
		"Ångström": "Angstrom",
		"plain":    "plain",
		"":         "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_ASCIIIsIdentity(t *testing.T) {
	s := "the quick brown fox 0123"
	if got := Normalize(s); got != s {
		t.Fatalf("ASCII input must pass through unchanged, got %q", got)
	}
}
