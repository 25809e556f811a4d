package parser

import (
	"testing"

	"github.com/gitrdm/logicsimplify/pkg/term"
)

func mustParse(t *testing.T, s string) *term.Term {
	t.Helper()
	got, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return got
}

func TestParseLiteralsAndAliases(t *testing.T) {
	cases := map[string]*term.Term{
		"TRUE":  term.True(),
		"⊤":     term.True(),
		"1":     term.True(),
		"FALSE": term.False(),
		"⊥":     term.False(),
		"0":     term.False(),
	}
	for input, want := range cases {
		if got := mustParse(t, input); !got.Equal(want) {
			t.Errorf("Parse(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParseConnectiveAliasesAgree(t *testing.T) {
	forms := []string{
		"a & b", "a ∧ b", "a && b", "a · b",
	}
	want := term.AndOf(term.NewConstant("a"), term.NewConstant("b"))
	for _, f := range forms {
		if got := mustParse(t, f); !got.Equal(want) {
			t.Errorf("Parse(%q) = %s, want %s", f, got, want)
		}
	}

	orForms := []string{"a | b", "a ∨ b", "a || b", "a + b"}
	wantOr := term.OrOf(term.NewConstant("a"), term.NewConstant("b"))
	for _, f := range orForms {
		if got := mustParse(t, f); !got.Equal(wantOr) {
			t.Errorf("Parse(%q) = %s, want %s", f, got, wantOr)
		}
	}
}

func TestParsePredicateApplication(t *testing.T) {
	got := mustParse(t, "f(a, B, g(c))")
	want := term.NewNamedPredicate("f",
		term.NewConstant("a"),
		term.NewVariable("B"),
		term.NewNamedPredicate("g", term.NewConstant("c")))
	if !got.Equal(want) {
		t.Errorf("Parse(predicate) = %s, want %s", got, want)
	}
}

func TestParsePlaceholdersAndRestMarker(t *testing.T) {
	got := mustParse(t, "$X & $Y#")
	if got.Kind() != term.KindAnd {
		t.Fatalf("expected And, got %s", got.Kind())
	}
	found := map[string]bool{}
	for _, m := range got.Members() {
		found[m.Name()] = true
	}
	if !found["$X"] || !found["$Y#"] {
		t.Errorf("expected members $X and $Y#, got %v", got.Members())
	}
}

func TestParseSubsetMarker(t *testing.T) {
	got := mustParse(t, "$X &* !$X")
	if got.Placeholder() != "*" {
		t.Errorf("expected subset marker on conjunction, got placeholder %q", got.Placeholder())
	}
}

func TestParsePrecedence(t *testing.T) {
	got := mustParse(t, "a & b | c")
	want := term.OrOf(
		term.AndOf(term.NewConstant("a"), term.NewConstant("b")),
		term.NewConstant("c"),
	)
	if !got.Equal(want) {
		t.Errorf("Parse(%q) = %s, want %s (And should bind tighter than Or)", "a & b | c", got, want)
	}
}

func TestParseImplicationAndEquivalence(t *testing.T) {
	got := mustParse(t, "a -> b <-> c")
	// <-> has lower precedence than ->, so this parses as (a -> b) <-> c.
	want := term.NewEqu(
		term.NewImp(term.NewConstant("a"), term.NewConstant("b")),
		term.NewConstant("c"),
	)
	if !got.Equal(want) {
		t.Errorf("Parse(%q) = %s, want %s", "a -> b <-> c", got, want)
	}
}

func TestParseUnbalancedParenIsSyntaxError(t *testing.T) {
	_, err := Parse("(a & b")
	if err == nil {
		t.Fatal("expected a syntax error for an unbalanced parenthesis")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Errorf("expected *SyntaxError, got %T", err)
	}
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	_, err := Parse("a &")
	if err == nil {
		t.Fatal("expected a syntax error for a dangling operator")
	}
}
