package rewrite

import (
	"testing"

	"github.com/gitrdm/logicsimplify/pkg/parser"
	"github.com/gitrdm/logicsimplify/pkg/ruleset"
	"github.com/gitrdm/logicsimplify/pkg/term"
)

func mustParse(t *testing.T, s string) *term.Term {
	t.Helper()
	got, err := parser.Parse(s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return got
}

func TestSimplifyEndToEndScenarios(t *testing.T) {
	dnf, err := ruleset.DNFRules()
	if err != nil {
		t.Fatalf("DNFRules: %v", err)
	}

	cases := []struct {
		name, input, want string
	}{
		{"distribution-and-absorption", "((P & Q) & !R) | (P & !(Q | R))", "P & !R"},
		{"true-absorbs-or", "TRUE | x", "TRUE"},
		{"double-negation", "!!A", "A"},
		{"contradiction", "A & !A", "FALSE"},
		{"de-morgan", "!(a | b)", "!a & !b"},
		{"tautology-via-distribution", "(A & !B) | (!A & B) => (A | B) & (!A | !B)", "TRUE"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := mustParse(t, c.input)
			want := mustParse(t, c.want)
			got := Simplify(input, dnf)
			if !got.Equal(want) {
				t.Errorf("Simplify(%q) = %s, want %s", c.input, got, want)
			}
		})
	}
}

func TestSimplifyIsIdempotent(t *testing.T) {
	dnf, err := ruleset.DNFRules()
	if err != nil {
		t.Fatalf("DNFRules: %v", err)
	}
	input := mustParse(t, "((P & Q) & !R) | (P & !(Q | R))")
	once := Simplify(input, dnf)
	twice := Simplify(once, dnf)
	if !once.Equal(twice) {
		t.Errorf("Simplify is not idempotent: once=%s twice=%s", once, twice)
	}
}

func TestSimplifyTerminatesOnMutuallyInverseRules(t *testing.T) {
	r, err := ruleset.Build(
		"!($X & $Y) <-> (!$X | !$Y)",
		"!($X | $Y) <-> (!$X & !$Y)",
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	input := mustParse(t, "!(a & b)")
	got := Simplify(input, r)
	if got == nil {
		t.Fatal("Simplify returned nil")
	}
}

func TestSimplifyAtomicTermIsUnchanged(t *testing.T) {
	std, err := ruleset.StandardRules()
	if err != nil {
		t.Fatalf("StandardRules: %v", err)
	}
	a := term.NewConstant("unrelated")
	got := Simplify(a, std)
	if !got.Equal(a) {
		t.Errorf("expected an atomic term with no matching rule to pass through unchanged, got %s", got)
	}
}
