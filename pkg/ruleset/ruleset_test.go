package ruleset

import (
	"testing"

	"github.com/gitrdm/logicsimplify/pkg/term"
)

func TestBuildDirectedRule(t *testing.T) {
	r, err := Build("a -> b")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got, ok := r.Lookup(term.NewConstant("a"))
	if !ok || !got.Equal(term.NewConstant("b")) {
		t.Errorf("expected a -> b, got %v (ok=%v)", got, ok)
	}
}

func TestBuildBidirectionalRuleInsertsBothDirections(t *testing.T) {
	r, err := Build("a <-> b")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := r.Lookup(term.NewConstant("a")); !ok {
		t.Error("expected a -> b")
	}
	if _, ok := r.Lookup(term.NewConstant("b")); !ok {
		t.Error("expected b -> a")
	}
}

func TestBuildBareTermSugarsToTrue(t *testing.T) {
	r, err := Build("a")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got, ok := r.Lookup(term.NewConstant("a"))
	if !ok || !got.Equal(term.True()) {
		t.Errorf("expected bare term a to sugar to TRUE, got %v (ok=%v)", got, ok)
	}
}

func TestBuildBareNegationSugarsToFalse(t *testing.T) {
	r, err := Build("!a")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got, ok := r.Lookup(term.NewConstant("a"))
	if !ok || !got.Equal(term.False()) {
		t.Errorf("expected !a to sugar to a -> FALSE, got %v (ok=%v)", got, ok)
	}
}

func TestBuildStarMarkerInsertsFramedVariant(t *testing.T) {
	r, err := Build("$X &* !$X -> FALSE")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("expected the original plus one framed entry, got %d entries", r.Len())
	}
	foundFramed := false
	for _, e := range r.Entries() {
		if e.Pattern.Kind() == term.KindAnd && len(e.Pattern.Members()) == 3 {
			foundFramed = true
		}
	}
	if !foundFramed {
		t.Error("expected a framed entry with an extra rest-placeholder member")
	}
}

func TestStandardRulesBuildsWithoutError(t *testing.T) {
	if _, err := StandardRules(); err != nil {
		t.Fatalf("StandardRules: %v", err)
	}
}

func TestDNFAndCNFRulesIncludeDistribution(t *testing.T) {
	dnf, err := DNFRules()
	if err != nil {
		t.Fatalf("DNFRules: %v", err)
	}
	cnf, err := CNFRules()
	if err != nil {
		t.Fatalf("CNFRules: %v", err)
	}
	std, _ := StandardRules()
	if dnf.Len() <= std.Len() || cnf.Len() <= std.Len() {
		t.Error("expected DNF/CNF rulesets to carry strictly more entries than the standard ruleset")
	}
}
