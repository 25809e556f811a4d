package eval

import (
	"testing"

	"github.com/gitrdm/logicsimplify/pkg/term"
)

func TestBuildTableEnumeratesEveryAssignment(t *testing.T) {
	a, b := term.NewConstant("a"), term.NewConstant("b")
	f := term.AndOf(a, b)

	tbl, err := BuildTable(f)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("expected 4 rows for 2 variables, got %d", len(tbl.Rows))
	}

	trueRows := 0
	for _, row := range tbl.Rows {
		if row.Result {
			trueRows++
		}
	}
	if trueRows != 1 {
		t.Errorf("expected exactly 1 true row for a & b, got %d", trueRows)
	}
}

func TestTruthDensity(t *testing.T) {
	a, b := term.NewConstant("a"), term.NewConstant("b")
	tbl, err := BuildTable(term.OrOf(a, b))
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if got := tbl.TruthDensity(); got != 0.75 {
		t.Errorf("expected truth density 0.75 for a | b, got %v", got)
	}
}

func TestOperatorNumberMatchesRowBits(t *testing.T) {
	a := term.NewConstant("a")
	tbl, err := BuildTable(a)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	// Rows: a=F -> false, a=T -> true, so bit0=0, bit1=1 -> operator number 2.
	if got := tbl.OperatorNumber(); got != 2 {
		t.Errorf("expected operator number 2, got %d", got)
	}
}

func TestBuildTableFailsOnUnregisteredPredicate(t *testing.T) {
	f := term.NewNamedPredicate("p", term.NewConstant("a"))
	if _, err := BuildTable(f); err == nil {
		t.Fatal("expected BuildTable to fail on an unregistered predicate")
	}
}

func TestMinimizeCoversAllMinterms(t *testing.T) {
	a, b, c := term.NewConstant("a"), term.NewConstant("b"), term.NewConstant("c")
	f := term.OrOf(term.AndOf(a, b), term.AndOf(a, c))

	tbl, err := BuildTable(f)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	cover, ok := tbl.Minimize()
	if !ok {
		t.Fatal("expected a complete cover for a simple sum-of-products formula")
	}
	if len(cover) == 0 {
		t.Fatal("expected a non-empty cover for a satisfiable formula")
	}

	minimal, ok := tbl.MinimalTerm()
	if !ok {
		t.Fatal("expected MinimalTerm to succeed")
	}
	minimalTbl, err := BuildTable(minimal)
	if err != nil {
		t.Fatalf("BuildTable(minimal): %v", err)
	}
	if minimalTbl.OperatorNumber() != tbl.OperatorNumber() {
		t.Errorf("minimised term is not equivalent to the original: %d vs %d",
			minimalTbl.OperatorNumber(), tbl.OperatorNumber())
	}
}

func TestMinimizeFalseFormulaYieldsEmptyCover(t *testing.T) {
	tbl, err := BuildTable(term.False())
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	cover, ok := tbl.Minimize()
	if !ok {
		t.Fatal("expected ok=true for an unsatisfiable formula (vacuous cover)")
	}
	if len(cover) != 0 {
		t.Errorf("expected an empty cover for FALSE, got %v", cover)
	}
}
