// Package term implements the immutable term algebra for the propositional
// rewrite engine: truth literals, constants, variables, named predicates,
// and the built-in connectives (negation, implication, equivalence, and
// variadic commutative conjunction/disjunction).
//
// Terms are a closed sum of variants dispatched by tag rather than a
// hierarchy of concrete types: every Term is the same Go struct, and
// behaviour branches on Kind(). This keeps structural equality, hashing,
// and traversal uniform across all ten variants instead of requiring a
// type switch over distinct implementations at every call site.
//
// All operations are pure. A Term, once built, never changes; "editing" a
// term always produces a new one.
package term

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags the variant a Term represents.
type Kind uint8

const (
	KindTrue Kind = iota
	KindFalse
	KindConstant
	KindVariable
	KindNamedPredicate
	KindNot
	KindImp
	KindEqu
	KindAnd
	KindOr
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindConstant:
		return "Constant"
	case KindVariable:
		return "Variable"
	case KindNamedPredicate:
		return "NamedPredicate"
	case KindNot:
		return "Not"
	case KindImp:
		return "Imp"
	case KindEqu:
		return "Equ"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	default:
		return "Unknown"
	}
}

// Term is a node in the immutable expression tree. Every Term returned by
// a constructor in this package is hash-consed: two structurally equal
// terms are the same *Term, so Equal can short-circuit on pointer identity
// and a *Term is safe to use directly as a map key via its CanonicalKey.
type Term struct {
	kind        Kind
	name        string  // Constant, Variable, NamedPredicate
	args        []*Term // NamedPredicate args (ordered); Not: [inner]; Imp/Equ: [lhs, rhs]
	members     []*Term // And/Or: canonically sorted, deduplicated set
	placeholder string  // And/Or only: "" or "*" (subset-match marker)
	key         string  // canonical structural digest, used for interning and equality
}

// Kind returns the variant tag.
func (t *Term) Kind() Kind { return t.kind }

// Name returns the identifier for Constant, Variable, and NamedPredicate
// terms. It is the empty string for every other kind.
func (t *Term) Name() string { return t.name }

// Inner returns the operand of a Not term. It panics if called on any
// other kind, the same way the teacher's Pair.Car panics outside its
// domain rather than silently returning a zero value.
func (t *Term) Inner() *Term {
	if t.kind != KindNot {
		panic(fmt.Sprintf("term: Inner called on %s", t.kind))
	}
	return t.args[0]
}

// Left returns the left operand of an Imp or Equ term.
func (t *Term) Left() *Term {
	if t.kind != KindImp && t.kind != KindEqu {
		panic(fmt.Sprintf("term: Left called on %s", t.kind))
	}
	return t.args[0]
}

// Right returns the right operand of an Imp or Equ term.
func (t *Term) Right() *Term {
	if t.kind != KindImp && t.kind != KindEqu {
		panic(fmt.Sprintf("term: Right called on %s", t.kind))
	}
	return t.args[1]
}

// Args returns the ordered argument list of a NamedPredicate.
func (t *Term) Args() []*Term {
	if t.kind != KindNamedPredicate {
		panic(fmt.Sprintf("term: Args called on %s", t.kind))
	}
	return t.args
}

// Members returns the canonically ordered member set of an And or Or term.
// The slice is shared and must not be mutated by callers.
func (t *Term) Members() []*Term {
	if t.kind != KindAnd && t.kind != KindOr {
		panic(fmt.Sprintf("term: Members called on %s", t.kind))
	}
	return t.members
}

// Placeholder returns the subset-match marker ("" or "*") of an And/Or
// term. It is always "" for other kinds.
func (t *Term) Placeholder() string { return t.placeholder }

// CanonicalKey returns the structural digest used for hash-consing,
// ruleset exact-key lookup, and substitution/history deduplication.
func (t *Term) CanonicalKey() string { return t.key }

// IsAtomic reports whether t is a truth literal or a named value
// (Constant or Variable) — the base case of every recursive traversal.
func (t *Term) IsAtomic() bool {
	switch t.kind {
	case KindTrue, KindFalse, KindConstant, KindVariable:
		return true
	default:
		return false
	}
}

// IsPredicateKind reports whether t carries ordered or unordered argument
// children: a user-declared NamedPredicate or a built-in connective.
func (t *Term) IsPredicateKind() bool {
	switch t.kind {
	case KindNamedPredicate, KindNot, KindImp, KindEqu, KindAnd, KindOr:
		return true
	default:
		return false
	}
}

// IsVariadic reports whether t is a variadic commutative connective.
func (t *Term) IsVariadic() bool { return t.kind == KindAnd || t.kind == KindOr }

// Commutes reports whether t's argument positions are unordered.
func (t *Term) Commutes() bool { return t.IsVariadic() }

// IsPlaceholder reports whether t is a single-term pattern placeholder: a
// Constant whose name begins with "$" and does not end with "#".
func (t *Term) IsPlaceholder() bool {
	return t.kind == KindConstant && strings.HasPrefix(t.name, "$") && !strings.HasSuffix(t.name, "#")
}

// IsRestPlaceholder reports whether t is a rest placeholder: a Constant
// whose name ends with "#".
func (t *Term) IsRestPlaceholder() bool {
	return t.kind == KindConstant && strings.HasSuffix(t.name, "#")
}

// Equal checks structural equality. Because every Term is hash-consed,
// this is a pointer comparison in the overwhelmingly common case; the key
// comparison below is a defensive fallback for terms built outside the
// package constructors (there are none in normal use, but Equal must
// still be correct if that invariant is ever broken).
func (t *Term) Equal(other *Term) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.key == other.key
}

// String renders t in the parser's concrete syntax. Two shapes do not
// parse back: a "*"-marked And/Or puts the marker after its last member
// ("(a & b*)"), and an And/Or with no members renders as "()".
func (t *Term) String() string {
	switch t.kind {
	case KindTrue:
		return "TRUE"
	case KindFalse:
		return "FALSE"
	case KindConstant, KindVariable:
		return t.name
	case KindNamedPredicate:
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", t.name, strings.Join(parts, ", "))
	case KindNot:
		return "!" + t.Inner().String()
	case KindImp:
		return fmt.Sprintf("(%s -> %s)", t.Left().String(), t.Right().String())
	case KindEqu:
		return fmt.Sprintf("(%s <-> %s)", t.Left().String(), t.Right().String())
	case KindAnd, KindOr:
		sep := " & "
		if t.kind == KindOr {
			sep = " | "
		}
		parts := make([]string, len(t.members))
		for i, m := range t.members {
			parts[i] = m.String()
		}
		star := ""
		if t.placeholder == "*" {
			star = "*"
		}
		return fmt.Sprintf("(%s%s)", strings.Join(parts, sep), star)
	default:
		return "<?>"
	}
}

// --- hash-consing -----------------------------------------------------

var intern = newInternTable()

// True returns the truth literal TRUE.
func True() *Term { return intern.get(&Term{kind: KindTrue, key: "T"}) }

// False returns the truth literal FALSE.
func False() *Term { return intern.get(&Term{kind: KindFalse, key: "F"}) }

// NewConstant returns a Constant term, including pattern placeholders
// ("$X") and rest placeholders ("$X#") — both are Constants by the name
// convention described in the term algebra, not distinct kinds.
func NewConstant(name string) *Term {
	return intern.get(&Term{kind: KindConstant, name: name, key: "c:" + name})
}

// NewVariable returns a Variable term.
func NewVariable(name string) *Term {
	return intern.get(&Term{kind: KindVariable, name: name, key: "v:" + name})
}

// NewNamedPredicate returns a fixed-arity predicate term. Arity is fixed
// at len(args) for the life of the term.
func NewNamedPredicate(name string, args ...*Term) *Term {
	keys := make([]string, len(args))
	for i, a := range args {
		keys[i] = a.key
	}
	key := fmt.Sprintf("p:%s(%s)", name, strings.Join(keys, ","))
	return intern.get(&Term{kind: KindNamedPredicate, name: name, args: append([]*Term{}, args...), key: key})
}

// NewNot returns the negation of inner.
func NewNot(inner *Term) *Term {
	return intern.get(&Term{kind: KindNot, args: []*Term{inner}, key: "!(" + inner.key + ")"})
}

// NewImp returns the implication lhs -> rhs.
func NewImp(lhs, rhs *Term) *Term {
	return intern.get(&Term{kind: KindImp, args: []*Term{lhs, rhs}, key: "->(" + lhs.key + "," + rhs.key + ")"})
}

// NewEqu returns the equivalence lhs <-> rhs.
func NewEqu(lhs, rhs *Term) *Term {
	return intern.get(&Term{kind: KindEqu, args: []*Term{lhs, rhs}, key: "<->(" + lhs.key + "," + rhs.key + ")"})
}

// NewAnd returns a conjunction over members, flattening nested And terms
// and deduplicating into a set, with the given subset-match placeholder
// marker ("" or "*"). It does not collapse a singleton to its member —
// that normalization happens only in simplify_basic.
func NewAnd(placeholder string, members ...*Term) *Term {
	return newVariadic(KindAnd, placeholder, members)
}

// NewOr returns a disjunction over members with the same construction
// rules as NewAnd.
func NewOr(placeholder string, members ...*Term) *Term {
	return newVariadic(KindOr, placeholder, members)
}

// AndOf is NewAnd with no placeholder marker, for building ordinary
// (non-pattern) conjunctions.
func AndOf(members ...*Term) *Term { return NewAnd("", members...) }

// OrOf is NewOr with no placeholder marker.
func OrOf(members ...*Term) *Term { return NewOr("", members...) }

func newVariadic(kind Kind, placeholder string, members []*Term) *Term {
	flat := make([]*Term, 0, len(members))
	for _, m := range members {
		if m.kind == kind {
			flat = append(flat, m.members...)
		} else {
			flat = append(flat, m)
		}
	}

	dedup := make(map[string]*Term, len(flat))
	for _, m := range flat {
		dedup[m.key] = m
	}
	keys := make([]string, 0, len(dedup))
	for k := range dedup {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sorted := make([]*Term, len(keys))
	for i, k := range keys {
		sorted[i] = dedup[k]
	}

	sep := "&"
	if kind == KindOr {
		sep = "|"
	}
	key := fmt.Sprintf("%s%s{%s}", sep, placeholder, strings.Join(keys, ","))

	return intern.get(&Term{kind: kind, members: sorted, placeholder: placeholder, key: key})
}
