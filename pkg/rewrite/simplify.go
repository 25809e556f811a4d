// Package rewrite implements the best-first simplification driver: a
// shallow simplify_basic pass (atomic terms left as they are, exact-key
// ruleset lookup, singleton-variadic collapse) interleaved with deep recursion
// into subterms, and a size-sorted candidate loop guarded by a bounded
// history of previously seen terms so mutually-inverse rule pairs (De
// Morgan and its reverse, for instance) cannot loop forever.
package rewrite

import (
	"sort"

	"github.com/gitrdm/logicsimplify/pkg/ruleset"
	"github.com/gitrdm/logicsimplify/pkg/term"
	"github.com/gitrdm/logicsimplify/pkg/unify"
)

// historyCap bounds the cycle guard's memory: if simplification has not
// reached a fixed point or a detected cycle within this many steps, the
// loop gives up and falls back to the smallest term it has seen, rather
// than running unbounded on a pathological ruleset.
const historyCap = 10000

// simplifyBasic is the shallow pass: literal/named-value terms are
// already normal forms, an exact ruleset hit replaces the whole term,
// and a variadic term with exactly one member collapses to that member.
// Anything else passes through unchanged.
func simplifyBasic(t *term.Term, r *ruleset.Ruleset) *term.Term {
	if t.IsAtomic() {
		return t
	}
	if repl, ok := r.Lookup(t); ok {
		return repl
	}
	if t.IsVariadic() && len(t.Members()) == 1 {
		return t.Members()[0]
	}
	return t
}

// simplifyDeep applies simplifyBasic once at this node, then recurses
// into every child with the full Simplify loop — not simplifyDeep again,
// so a rewrite that fires deep in the tree can itself trigger further
// best-first search at that subterm rather than only a single shallow
// pass.
func simplifyDeep(t *term.Term, r *ruleset.Ruleset) *term.Term {
	basic := simplifyBasic(t, r)
	return term.MapChildren(basic, func(c *term.Term) *term.Term {
		return Simplify(c, r)
	})
}

// Simplify rewrites t under ruleset r to a best-effort normal form: sound
// whenever r's rules are semantically valid, guaranteed to terminate by
// the history guard, but not guaranteed to reach any particular
// canonical or globally minimal form.
func Simplify(t *term.Term, r *ruleset.Ruleset) *term.Term {
	t = simplifyDeep(t, r)

	history := []*term.Term{t}
	seen := map[string]bool{t.CanonicalKey(): true}

	for {
		candidates := candidatesFor(t, r)
		if len(candidates) == 0 {
			trace("no further candidates at %s", t)
			break
		}
		sortBySize(candidates)
		best := candidates[0]

		if seen[best.CanonicalKey()] {
			trace("cycle detected: %s already seen, returning %s", best, t)
			return t
		}

		t = best
		history = append(history, t)
		seen[t.CanonicalKey()] = true

		if len(history) > historyCap {
			trace("history cap exceeded, falling back to smallest seen term")
			return smallestSeen(history)
		}
	}

	return simplifyDeep(t, r)
}

// candidatesFor generates every candidate rewrite of t under r: for each
// rule, every pattern-mode unification of t against the rule's
// left-hand side yields a substitution, which applied to the
// right-hand side and deep-simplified gives one candidate. Candidates
// structurally equal to t itself carry no information and are dropped.
func candidatesFor(t *term.Term, r *ruleset.Ruleset) []*term.Term {
	var out []*term.Term
	for _, e := range r.Entries() {
		for _, sigma := range unify.Unify(t, e.Pattern) {
			candidate := simplifyDeep(term.ApplySubs(e.Replacement, sigma), r)
			if candidate.Equal(t) {
				continue
			}
			out = append(out, candidate)
		}
	}
	return out
}

// sortBySize orders candidates ascending by node count, the best-first
// bias toward monotone shrinking; ties keep rule/substitution generation
// order.
func sortBySize(candidates []*term.Term) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return term.Size(candidates[i]) < term.Size(candidates[j])
	})
}

func smallestSeen(history []*term.Term) *term.Term {
	best := history[0]
	bestSize := term.Size(best)
	for _, h := range history[1:] {
		if s := term.Size(h); s < bestSize {
			best, bestSize = h, s
		}
	}
	return best
}
