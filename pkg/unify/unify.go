// Package unify implements syntactic unification over the term algebra in
// pkg/term: fixed-arity predicates with and without commutativity,
// variadic associative-commutative connectives with single-subterm and
// rest placeholders, occurs-checked bidirectional unification, and
// memoisation of the whole computation.
//
// Unification returns a (possibly empty) slice of substitutions. An empty
// slice means "no match"; a slice containing one empty substitution means
// "matches with no placeholders bound" — callers never need to
// distinguish those from an error, because there is no error: unification
// failure is UnificationEmpty, not an exception (spec §7).
package unify

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gitrdm/logicsimplify/pkg/term"
)

// options controls a Unify call. The zero value is pattern mode.
type options struct {
	bidi bool
}

// Option configures a Unify call.
type Option func(*options)

// Bidirectional enables bidirectional mode: in addition to pattern
// placeholders, a logical Variable on either side may unify with any
// term on the other side, subject to occurs-check.
func Bidirectional() Option {
	return func(o *options) { o.bidi = true }
}

type cacheKey struct {
	h, n *term.Term
	bidi bool
}

// memo is the bounded LRU the spec requires ("capacity ≥ 32"); it is a
// pure performance aid, and since pattern terms are hash-consed, the
// pointer pair alone is already scoped to whichever ruleset contributed
// that pattern — there is nothing further to key on, and nothing to
// invalidate when a ruleset is swapped for a different one built from
// different rule strings (those patterns are different *term.Term
// pointers entirely).
var memo, _ = lru.New[cacheKey, []*term.Substitution](defaultCacheCapacity)

const defaultCacheCapacity = 1024

// SetCacheCapacity resizes the memoisation cache. It is intended for
// tests and for callers tuning memory use on very large rulesets; the
// cache is cleared as a side effect.
func SetCacheCapacity(n int) error {
	c, err := lru.New[cacheKey, []*term.Substitution](n)
	if err != nil {
		return fmt.Errorf("unify: resizing cache: %w", err)
	}
	memo = c
	return nil
}

// Unify attempts to match needle (the pattern) against haystack (the
// subject), returning every substitution under which the match succeeds.
func Unify(haystack, needle *term.Term, opts ...Option) []*term.Substitution {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return findUnifications(haystack, needle, o.bidi)
}

// findUnifications is the memoised entry point §4.2 calls
// find_unifications; unify1 below is gen_unifications.
func findUnifications(haystack, needle *term.Term, bidi bool) []*term.Substitution {
	key := cacheKey{haystack, needle, bidi}
	if cached, ok := memo.Get(key); ok {
		return cached
	}
	raw := unify1(haystack, needle, bidi)
	result := term.DedupSubstitutions(raw)
	memo.Add(key, result)
	return result
}

// unify1 implements the core pattern-mode algorithm of §4.2, with the
// bidirectional extension inserted between steps 3 and 4.
func unify1(h, n *term.Term, bidi bool) []*term.Substitution {
	if h.Equal(n) {
		return []*term.Substitution{term.EmptySubstitution()}
	}

	if n.IsPlaceholder() || n.IsRestPlaceholder() {
		return []*term.Substitution{term.EmptySubstitution().WithBinding(n, h)}
	}

	if bidi {
		if h.Kind() == term.KindVariable || n.Kind() == term.KindVariable {
			return unifyVariable(h, n)
		}
	}

	if h.Kind() == term.KindConstant && n.Kind() == term.KindConstant {
		if h.Name() != n.Name() {
			return nil
		}
		return []*term.Substitution{term.EmptySubstitution()}
	}

	if h.IsPredicateKind() && n.IsPredicateKind() {
		return unifyPredicates(h, n, bidi)
	}

	return nil
}

// unifyVariable handles the bidirectional-mode case where either side is
// a logical Variable: it may unify with any term on the other side,
// subject to occurs-check.
func unifyVariable(h, n *term.Term) []*term.Substitution {
	var v, other *term.Term
	if n.Kind() == term.KindVariable {
		v, other = n, h
	} else {
		v, other = h, n
	}
	if occursIn(v, other) {
		return nil
	}
	return []*term.Substitution{term.EmptySubstitution().WithBinding(v, other)}
}

// occursIn reports whether v appears anywhere in t — the occurs-check
// that prevents unifying x with f(x).
func occursIn(v, t *term.Term) bool {
	found := false
	term.Walk(t, func(c *term.Term) bool {
		if found {
			return false
		}
		if c.Equal(v) {
			found = true
			return false
		}
		return true
	})
	return found
}
