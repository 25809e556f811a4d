package term

import "sort"

// directChildren returns the immediate structural children of t, in the
// order map_children must preserve: ordered tuple fields stay ordered,
// set fields stay in their canonical sorted order.
func directChildren(t *Term) []*Term {
	switch t.kind {
	case KindNot:
		return []*Term{t.Inner()}
	case KindImp, KindEqu:
		return []*Term{t.Left(), t.Right()}
	case KindNamedPredicate:
		return t.Args()
	case KindAnd, KindOr:
		return t.Members()
	default:
		return nil
	}
}

// Walk visits t and every structural descendant, depth-first, calling
// visit for each. It stops early if visit returns false. This is the
// allocation-free core that Children and Size build on.
func Walk(t *Term, visit func(*Term) bool) {
	if !visit(t) {
		return
	}
	for _, c := range directChildren(t) {
		Walk(c, visit)
	}
}

// Children returns t followed by every structural descendant,
// recursively — the full traversal order children(t) describes.
func Children(t *Term) []*Term {
	var out []*Term
	Walk(t, func(c *Term) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Size returns the number of nodes in t's tree, used by the rewrite
// driver to rank candidates by term size.
func Size(t *Term) int {
	n := 0
	Walk(t, func(*Term) bool {
		n++
		return true
	})
	return n
}

// FreeNames returns the set of Constant and Variable descendants of t
// (the "NamedValue" leaves), deduplicated and ordered lexicographically
// by name — the ordering the truth-table collaborator uses to assign
// variable columns.
func FreeNames(t *Term) []*Term {
	seen := make(map[string]*Term)
	Walk(t, func(c *Term) bool {
		if c.kind == KindConstant || c.kind == KindVariable {
			seen[c.name] = c
		}
		return true
	})
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Term, len(names))
	for i, n := range names {
		out[i] = seen[n]
	}
	return out
}

// MapChildren produces a new term in which every direct child of t has
// been replaced by f(child), preserving t's variant and the ordered/set
// nature of its fields. Atomic terms (no children) are returned
// unchanged. Reconstructing a variadic through its constructor re-applies
// flattening and deduplication, which is required, not incidental: a
// mapped child might itself become a same-kind variadic (e.g. simplify
// turning Not(Not(x)) into x inside an And), and the set must absorb it.
func MapChildren(t *Term, f func(*Term) *Term) *Term {
	switch t.kind {
	case KindNot:
		return NewNot(f(t.Inner()))
	case KindImp:
		return NewImp(f(t.Left()), f(t.Right()))
	case KindEqu:
		return NewEqu(f(t.Left()), f(t.Right()))
	case KindNamedPredicate:
		args := t.Args()
		mapped := make([]*Term, len(args))
		for i, a := range args {
			mapped[i] = f(a)
		}
		return NewNamedPredicate(t.name, mapped...)
	case KindAnd:
		mapped := make([]*Term, len(t.members))
		for i, m := range t.members {
			mapped[i] = f(m)
		}
		return NewAnd(t.placeholder, mapped...)
	case KindOr:
		mapped := make([]*Term, len(t.members))
		for i, m := range t.members {
			mapped[i] = f(m)
		}
		return NewOr(t.placeholder, mapped...)
	default:
		return t
	}
}
