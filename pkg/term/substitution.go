package term

import (
	"sort"
	"strings"
)

// entry is one binding in a Substitution.
type entry struct {
	Key, Value *Term
}

// Substitution is an insertion-ordered, finite mapping from pattern terms
// (typically placeholders, or unifiable variables in bidirectional mode)
// to replacement terms. It is immutable: WithBinding returns a new
// Substitution rather than mutating the receiver, the same discipline the
// teacher's Substitution.Bind follows in core.go.
type Substitution struct {
	entries []entry
	index   map[string]*Term // CanonicalKey(Key) -> Value, for O(1) Lookup
}

// EmptySubstitution returns the substitution with no bindings — the
// "matches with no placeholders bound" result.
func EmptySubstitution() *Substitution {
	return &Substitution{index: map[string]*Term{}}
}

// Len reports how many bindings the substitution holds.
func (s *Substitution) Len() int { return len(s.entries) }

// Lookup returns the term bound to key, if any.
func (s *Substitution) Lookup(key *Term) (*Term, bool) {
	v, ok := s.index[key.CanonicalKey()]
	return v, ok
}

// Entries returns the bindings in insertion order, as a fresh slice built
// on each call.
func (s *Substitution) Entries() []struct{ Key, Value *Term } {
	out := make([]struct{ Key, Value *Term }, len(s.entries))
	for i, e := range s.entries {
		out[i] = struct{ Key, Value *Term }{e.Key, e.Value}
	}
	return out
}

// WithBinding returns a new substitution extending s with key ↦ value. If
// key is already bound to an Equal value, s is returned unchanged; the
// caller is responsible for conflict-checking beforehand (see
// pkg/unify's merge step) since WithBinding itself always succeeds.
func (s *Substitution) WithBinding(key, value *Term) *Substitution {
	if existing, ok := s.Lookup(key); ok && existing.Equal(value) {
		return s
	}
	next := &Substitution{
		entries: append(append([]entry{}, s.entries...), entry{key, value}),
		index:   make(map[string]*Term, len(s.index)+1),
	}
	for k, v := range s.index {
		next.index[k] = v
	}
	next.index[key.CanonicalKey()] = value
	return next
}

// CanonicalKey returns a digest stable under reordering of equal-content
// substitutions, used to deduplicate a collection of substitutions (the
// "convert substitution entry-sets into canonical form" step unification
// callers perform).
func (s *Substitution) CanonicalKey() string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = e.Key.CanonicalKey() + "=" + e.Value.CanonicalKey()
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

// Equal reports whether s and other bind the same keys to the same
// values, regardless of insertion order.
func (s *Substitution) Equal(other *Substitution) bool {
	return s.CanonicalKey() == other.CanonicalKey()
}

// DedupSubstitutions removes substitutions that are equal up to entry
// order, preserving the first occurrence of each.
func DedupSubstitutions(subs []*Substitution) []*Substitution {
	seen := make(map[string]bool, len(subs))
	out := make([]*Substitution, 0, len(subs))
	for _, s := range subs {
		k := s.CanonicalKey()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

// ApplyOne performs whole-subterm syntactic replacement: if t equals
// find, replace is returned; otherwise the replacement is applied
// recursively to every structural child.
func ApplyOne(t, find, replace *Term) *Term {
	if t.Equal(find) {
		return replace
	}
	return MapChildren(t, func(c *Term) *Term { return ApplyOne(c, find, replace) })
}

// ApplySubs folds ApplyOne over sigma's entries in insertion order — order
// matters when a later entry's replacement contains an earlier entry's
// key.
func ApplySubs(t *Term, sigma *Substitution) *Term {
	for _, e := range sigma.entries {
		t = ApplyOne(t, e.Key, e.Value)
	}
	return t
}
