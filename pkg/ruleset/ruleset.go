// Package ruleset builds ordered, directed rewrite systems over the term
// algebra in pkg/term from textual rule strings: "A -> B" inserts a single
// directed entry, "A <-> B" inserts both directions, and bare terms are
// sugar for collapsing to TRUE or FALSE. Rules whose left-hand side is a
// variadic commutative connective marked with the subset-match "*" get a
// second, framed entry that preserves surrounding context when the rule
// fires inside a larger conjunction or disjunction than its own arity.
package ruleset

import (
	"fmt"

	"github.com/gitrdm/logicsimplify/pkg/parser"
	"github.com/gitrdm/logicsimplify/pkg/term"
)

// Entry is one directed pattern -> replacement pair.
type Entry struct {
	Pattern     *term.Term
	Replacement *term.Term
}

// Ruleset is an insertion-ordered collection of Entry values plus an
// index by exact canonical key, the way the teacher's validation layer
// keeps both an ordered slice (for reporting/iteration order) and a map
// (for O(1) lookup) over the same data.
type Ruleset struct {
	entries []Entry
	index   map[string]*term.Term
}

// Entries returns the ordered entries. The slice is shared and must not
// be mutated by callers.
func (r *Ruleset) Entries() []Entry { return r.entries }

// Lookup returns the replacement registered under t's exact canonical
// key, if any — the O(1) path simplify_basic uses before falling back to
// unification-based matching.
func (r *Ruleset) Lookup(t *term.Term) (*term.Term, bool) {
	v, ok := r.index[t.CanonicalKey()]
	return v, ok
}

// Len reports the number of directed entries, including framed variants.
func (r *Ruleset) Len() int { return len(r.entries) }

// InvalidRuleError reports a rule string whose top-level term is not an
// implication, equivalence, or a permitted sugar form. Every term kind
// the parser can currently produce falls into one of those buckets, so
// this error is presently unreachable; it is kept so a future rule kind
// the grammar grows fails loudly instead of silently misclassifying.
type InvalidRuleError struct {
	Rule string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("ruleset: invalid rule %q: not an implication, equivalence, or sugar form", e.Rule)
}

// restPlaceholderName is the fresh rest placeholder used to frame "*"
// subset-match rules so they fire inside a conjunction/disjunction
// larger than the rule's own written arity without discarding the extra
// members. "@" never appears in any hand-written rule string, so it
// cannot collide with a rule's own placeholder names.
const restPlaceholderName = "$@#"

// Build parses each rule string and inserts its directed entry (or
// entries) into a new Ruleset, in order.
func Build(ruleStrings ...string) (*Ruleset, error) {
	r := &Ruleset{index: map[string]*term.Term{}}
	for _, s := range ruleStrings {
		if err := r.add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add parses and appends additional rules to an existing Ruleset,
// returning a new Ruleset that shares no state with the receiver.
func (r *Ruleset) Add(ruleStrings ...string) (*Ruleset, error) {
	next := &Ruleset{
		entries: append([]Entry{}, r.entries...),
		index:   make(map[string]*term.Term, len(r.index)),
	}
	for k, v := range r.index {
		next.index[k] = v
	}
	for _, s := range ruleStrings {
		if err := next.add(s); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func (r *Ruleset) add(ruleString string) error {
	rule, err := parser.Parse(ruleString)
	if err != nil {
		return fmt.Errorf("ruleset: parsing %q: %w", ruleString, err)
	}

	switch rule.Kind() {
	case term.KindImp:
		lhs, rhs := rule.Left(), rule.Right()
		if lhs.IsVariadic() && lhs.Commutes() && lhs.Placeholder() == "*" {
			r.insert(framedLHS(lhs), framedRHS(lhs.Kind(), rhs))
		}
		r.insert(lhs, rhs)
		return nil

	case term.KindEqu:
		lhs, rhs := rule.Left(), rule.Right()
		for _, d := range [][2]*term.Term{{lhs, rhs}, {rhs, lhs}} {
			if d[0].IsVariadic() && d[0].Commutes() && d[0].Placeholder() == "*" {
				r.insert(framedLHS(d[0]), framedRHS(d[0].Kind(), d[1]))
			}
			r.insert(d[0], d[1])
		}
		return nil

	case term.KindNot:
		r.insert(rule.Inner(), term.False())
		return nil

	default:
		// Bare term sugar: T ↦ TRUE.
		r.insert(rule, term.True())
		return nil
	}
}

func (r *Ruleset) insert(pattern, replacement *term.Term) {
	r.entries = append(r.entries, Entry{Pattern: pattern, Replacement: replacement})
	r.index[pattern.CanonicalKey()] = replacement
}

// framedLHS wraps lhs's own members plus a fresh rest placeholder in a
// same-kind variadic, dropping the "*" marker in favour of exact
// rest-placeholder matching: it now matches a conjunction/disjunction of
// any size at least as large as lhs's arity.
func framedLHS(lhs *term.Term) *term.Term {
	members := append([]*term.Term{term.NewConstant(restPlaceholderName)}, lhs.Members()...)
	if lhs.Kind() == term.KindAnd {
		return term.NewAnd("", members...)
	}
	return term.NewOr("", members...)
}

// framedRHS wraps the original replacement with the same rest
// placeholder, so whatever members the framed LHS's rest placeholder
// absorbed are carried through into the result instead of discarded.
func framedRHS(lhsKind term.Kind, rhs *term.Term) *term.Term {
	members := []*term.Term{term.NewConstant(restPlaceholderName), rhs}
	if lhsKind == term.KindAnd {
		return term.NewAnd("", members...)
	}
	return term.NewOr("", members...)
}
