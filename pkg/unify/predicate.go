package unify

import "github.com/gitrdm/logicsimplify/pkg/term"

// pair is one (haystack-argument, needle-argument) correspondence to be
// unified, the element type of §4.2.2's sequential argument unification.
type pair struct{ h, n *term.Term }

// unifyPredicates implements §4.2.1: both terms are predicate-kind and
// have matching variant/name; dispatch on arity.
func unifyPredicates(h, n *term.Term, bidi bool) []*term.Substitution {
	if h.Kind() != n.Kind() {
		return nil
	}
	if h.Kind() == term.KindNamedPredicate && h.Name() != n.Name() {
		return nil
	}

	hArgs, nArgs := predicateArgs(h), predicateArgs(n)

	if len(hArgs) == len(nArgs) {
		return unifyEqualArity(h, hArgs, nArgs, bidi)
	}

	return unifyUnequalArity(h, n, hArgs, nArgs, bidi)
}

// predicateArgs returns the ordered or set-as-slice argument list for any
// predicate-kind term, uniformly across Not/Imp/Equ/NamedPredicate/And/Or.
func predicateArgs(t *term.Term) []*term.Term {
	switch t.Kind() {
	case term.KindNot:
		return []*term.Term{t.Inner()}
	case term.KindImp, term.KindEqu:
		return []*term.Term{t.Left(), t.Right()}
	case term.KindNamedPredicate:
		return t.Args()
	case term.KindAnd, term.KindOr:
		return t.Members()
	default:
		return nil
	}
}

// unifyEqualArity forms every candidate pairing of argument positions —
// a single pairing in declared order for non-commutative terms, every
// permutation-based alignment for commutative ones — and solves each
// sequentially, collecting every resulting substitution.
func unifyEqualArity(h *term.Term, hArgs, nArgs []*term.Term, bidi bool) []*term.Substitution {
	k := len(hArgs)
	var results []*term.Substitution

	if !h.Commutes() {
		results = append(results, solveSequential(zip(hArgs, nArgs), term.EmptySubstitution(), bidi)...)
		return results
	}

	for _, perm := range permutations(k) {
		permuted := make([]*term.Term, k)
		for i, p := range perm {
			permuted[i] = nArgs[p]
		}
		results = append(results, solveSequential(zip(hArgs, permuted), term.EmptySubstitution(), bidi)...)
	}
	return results
}

// unifyUnequalArity implements the two unequal-arity sub-cases of §4.2.1,
// both of which require both sides to be variadic commutative terms.
func unifyUnequalArity(h, n *term.Term, hArgs, nArgs []*term.Term, bidi bool) []*term.Substitution {
	if !h.IsVariadic() || !n.IsVariadic() {
		return nil
	}

	if n.Placeholder() == "*" && len(nArgs) < len(hArgs) {
		return subsetMatch(hArgs, nArgs, bidi)
	}

	if restIdx, rest, ok := findRestPlaceholder(nArgs); ok {
		return restMatch(h.Kind(), hArgs, nArgs, restIdx, rest, bidi)
	}

	return nil
}

// subsetMatch implements §4.2.1(a): the needle may match any subset of
// the haystack's members, in any order.
func subsetMatch(hArgs, nArgs []*term.Term, bidi bool) []*term.Substitution {
	var results []*term.Substitution
	k := len(nArgs)
	for _, combo := range combinations(len(hArgs), k) {
		chosen := make([]*term.Term, k)
		for i, idx := range combo {
			chosen[i] = hArgs[idx]
		}
		for _, perm := range permutations(k) {
			permutedNeedle := make([]*term.Term, k)
			for i, p := range perm {
				permutedNeedle[i] = nArgs[p]
			}
			results = append(results, solveSequential(zip(chosen, permutedNeedle), term.EmptySubstitution(), bidi)...)
		}
	}
	return results
}

// findRestPlaceholder locates the single rest placeholder among a
// needle's arguments, per the "exactly one rest placeholder" limitation
// spec §4.2 and §9 carry over.
func findRestPlaceholder(nArgs []*term.Term) (idx int, rest *term.Term, ok bool) {
	for i, a := range nArgs {
		if a.IsRestPlaceholder() {
			return i, a, true
		}
	}
	return 0, nil, false
}

// restMatch implements §4.2.1(b): partition the needle into static
// members and the rest placeholder; for every way to pick and permute
// |static| haystack members against the static needle members, bind the
// rest placeholder to a fresh variadic-of-same-kind over the remaining
// haystack members and unify pairwise. Binding the remainder happens
// uniformly through unify1's placeholder rule — the remainder term is
// just one more entry in the pair list, paired against the rest
// placeholder constant.
func restMatch(kind term.Kind, hArgs, nArgs []*term.Term, restIdx int, rest *term.Term, bidi bool) []*term.Substitution {
	static := make([]*term.Term, 0, len(nArgs)-1)
	for i, a := range nArgs {
		if i != restIdx {
			static = append(static, a)
		}
	}
	k := len(static)

	var results []*term.Substitution
	for _, combo := range combinations(len(hArgs), k) {
		chosenSet := make(map[int]bool, k)
		chosen := make([]*term.Term, k)
		for i, idx := range combo {
			chosenSet[idx] = true
			chosen[i] = hArgs[idx]
		}
		remainder := make([]*term.Term, 0, len(hArgs)-k)
		for i, a := range hArgs {
			if !chosenSet[i] {
				remainder = append(remainder, a)
			}
		}
		// Always wrap the remainder as a variadic-of-same-kind, even a
		// single leftover member — simplify_basic's singleton collapse
		// unwraps it later, and this keeps the behaviour consistent
		// regardless of how many members remain (spec §9).
		var remainderTerm *term.Term
		if kind == term.KindAnd {
			remainderTerm = term.NewAnd("", remainder...)
		} else {
			remainderTerm = term.NewOr("", remainder...)
		}

		for _, perm := range permutations(k) {
			permutedChosen := make([]*term.Term, k)
			for i, p := range perm {
				permutedChosen[i] = chosen[p]
			}
			pairs := zip(permutedChosen, static)
			pairs = append(pairs, pair{remainderTerm, rest})
			results = append(results, solveSequential(pairs, term.EmptySubstitution(), bidi)...)
		}
	}
	return results
}

func zip(hs, ns []*term.Term) []pair {
	out := make([]pair, len(hs))
	for i := range hs {
		out[i] = pair{hs[i], ns[i]}
	}
	return out
}

// solveSequential implements §4.2.2: unify each (h, n) pair left to
// right, merging every candidate sub-substitution into the accumulator
// with conflict-checking, and — in bidirectional mode — applying the
// accumulated substitution to the remaining pairs before continuing so
// later occurrences of a just-bound variable see their binding.
func solveSequential(pairs []pair, sigma *term.Substitution, bidi bool) []*term.Substitution {
	if len(pairs) == 0 {
		return []*term.Substitution{sigma}
	}

	head, tail := pairs[0], pairs[1:]
	deltas := unify1(head.h, head.n, bidi)

	var results []*term.Substitution
	for _, delta := range deltas {
		merged, ok := mergeConflictChecked(sigma, delta)
		if !ok {
			continue
		}
		nextPairs := tail
		if bidi {
			nextPairs = applySubsToPairs(tail, merged)
		}
		results = append(results, solveSequential(nextPairs, merged, bidi)...)
	}
	return results
}

// mergeConflictChecked extends sigma with every binding in delta,
// skipping delta entirely (returning ok=false) if any key it binds is
// already bound in sigma to a different term.
func mergeConflictChecked(sigma, delta *term.Substitution) (*term.Substitution, bool) {
	merged := sigma
	for _, e := range delta.Entries() {
		if existing, ok := merged.Lookup(e.Key); ok && !existing.Equal(e.Value) {
			return nil, false
		}
		merged = merged.WithBinding(e.Key, e.Value)
	}
	return merged, true
}

func applySubsToPairs(pairs []pair, sigma *term.Substitution) []pair {
	out := make([]pair, len(pairs))
	for i, p := range pairs {
		out[i] = pair{term.ApplySubs(p.h, sigma), term.ApplySubs(p.n, sigma)}
	}
	return out
}
