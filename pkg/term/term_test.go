package term

import "testing"

func TestStructuralEqualityRespectsVariadics(t *testing.T) {
	a, b, c := NewConstant("a"), NewConstant("b"), NewConstant("c")

	left := AndOf(a, b, c)
	right := AndOf(c, a, b)
	if !left.Equal(right) {
		t.Errorf("And({a,b,c}) should equal And({c,a,b}), got %s vs %s", left, right)
	}

	nested := AndOf(a, AndOf(b, c))
	flat := AndOf(a, b, c)
	if !nested.Equal(flat) {
		t.Errorf("And({a, And({b,c})}) should equal And({a,b,c}), got %s vs %s", nested, flat)
	}

	f1 := NewNamedPredicate("f", a, b)
	f2 := NewNamedPredicate("f", b, a)
	if f1.Equal(f2) {
		t.Errorf("f(a,b) should not equal f(b,a)")
	}
}

func TestInterningGivesPointerEquality(t *testing.T) {
	if NewConstant("a") != NewConstant("a") {
		t.Error("expected interned constants to share one allocation")
	}
	if AndOf(NewConstant("a"), NewConstant("b")) != AndOf(NewConstant("b"), NewConstant("a")) {
		t.Error("expected interned sets to share one allocation regardless of build order")
	}
}

func TestSubstitutionIdentity(t *testing.T) {
	f := NewNamedPredicate("f", NewConstant("a"))
	if got := ApplySubs(f, EmptySubstitution()); !got.Equal(f) {
		t.Errorf("apply_subs(t, {}) should equal t, got %s", got)
	}
}

func TestIsAtomicAndIsPredicateKind(t *testing.T) {
	if !True().IsAtomic() || !NewConstant("a").IsAtomic() || !NewVariable("X").IsAtomic() {
		t.Error("literals and named values should be atomic")
	}
	if NewNamedPredicate("f", NewConstant("a")).IsAtomic() {
		t.Error("a predicate should not be atomic")
	}
	if !NewNot(True()).IsPredicateKind() || !AndOf(True(), False()).IsPredicateKind() {
		t.Error("connectives should be predicate-kind")
	}
}

func TestPlaceholderNaming(t *testing.T) {
	if !NewConstant("$X").IsPlaceholder() {
		t.Error("$X should be a placeholder")
	}
	if NewConstant("$Y#").IsPlaceholder() {
		t.Error("$Y# should not be a single-term placeholder")
	}
	if !NewConstant("$Y#").IsRestPlaceholder() {
		t.Error("$Y# should be a rest placeholder")
	}
	if NewConstant("a").IsPlaceholder() || NewConstant("a").IsRestPlaceholder() {
		t.Error("plain constants are not placeholders")
	}
}

func TestMapChildrenPreservesFieldKinds(t *testing.T) {
	a, b := NewConstant("a"), NewConstant("b")
	pred := NewNamedPredicate("f", a, b)
	mapped := MapChildren(pred, func(c *Term) *Term { return c })
	if !mapped.Equal(pred) {
		t.Errorf("identity map over children should reproduce the term, got %s", mapped)
	}

	conj := AndOf(a, b)
	doubled := MapChildren(conj, func(c *Term) *Term { return NewNot(NewNot(c)) })
	if len(doubled.Members()) != 2 {
		t.Errorf("expected 2 members after mapping, got %d", len(doubled.Members()))
	}
}

func TestFreeNamesOrderedLexicographically(t *testing.T) {
	f := NewNamedPredicate("f", NewVariable("Z"), NewConstant("a"), NewVariable("Y"))
	names := FreeNames(f)
	var got []string
	for _, n := range names {
		got = append(got, n.Name())
	}
	want := []string{"Y", "Z", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d free names, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected free names %v, got %v", want, got)
		}
	}
}

func TestEvaluateUnboundName(t *testing.T) {
	interp := NewInterpretation()
	_, err := Evaluate(NewConstant("x"), interp)
	if err == nil {
		t.Fatal("expected an UnboundNameError")
	}
	if _, ok := err.(*UnboundNameError); !ok {
		t.Errorf("expected *UnboundNameError, got %T", err)
	}
}

func TestEvaluateConnectives(t *testing.T) {
	interp := NewInterpretation().Set("a", true).Set("b", false)
	a, b := NewConstant("a"), NewConstant("b")

	cases := []struct {
		t    *Term
		want bool
	}{
		{NewNot(a), false},
		{NewImp(a, b), false},
		{NewImp(b, a), true},
		{NewEqu(a, b), false},
		{AndOf(a, NewNot(b)), true},
		{OrOf(b, NewNot(a)), false},
	}
	for _, c := range cases {
		got, err := Evaluate(c.t, interp)
		if err != nil {
			t.Fatalf("evaluate(%s): %v", c.t, err)
		}
		if got != c.want {
			t.Errorf("evaluate(%s) = %v, want %v", c.t, got, c.want)
		}
	}
}
