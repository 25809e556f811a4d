package term

import "fmt"

// PredicateMeaning evaluates a NamedPredicate's arguments under an
// interpretation. Registering one is how a caller gives semantics to a
// user-declared predicate symbol; an unregistered NamedPredicate fails to
// evaluate, per the term algebra's contract.
type PredicateMeaning func(args []*Term, interp *Interpretation) (bool, error)

// Interpretation is a mapping from variable/constant names to booleans,
// used by Evaluate, plus an optional registry of predicate meanings.
type Interpretation struct {
	values     map[string]bool
	predicates map[string]PredicateMeaning
}

// NewInterpretation returns an empty interpretation.
func NewInterpretation() *Interpretation {
	return &Interpretation{values: map[string]bool{}, predicates: map[string]PredicateMeaning{}}
}

// Set binds name to val and returns the receiver for chaining.
func (i *Interpretation) Set(name string, val bool) *Interpretation {
	i.values[name] = val
	return i
}

// Get returns the boolean bound to name, if any.
func (i *Interpretation) Get(name string) (bool, bool) {
	v, ok := i.values[name]
	return v, ok
}

// RegisterPredicate gives name a meaning that Evaluate consults when it
// encounters a NamedPredicate of that name.
func (i *Interpretation) RegisterPredicate(name string, meaning PredicateMeaning) {
	i.predicates[name] = meaning
}

// UnboundNameError is returned by Evaluate when it encounters a named
// value absent from the interpretation. It carries the offending name
// the way the teacher's DeprecatedError and ValidationError carry
// structured context rather than a bare string.
type UnboundNameError struct {
	Name string
}

func (e *UnboundNameError) Error() string {
	return fmt.Sprintf("evaluate: unbound name %q", e.Name)
}

// UnregisteredPredicateError is returned when a NamedPredicate has no
// registered meaning in the interpretation.
type UnregisteredPredicateError struct {
	Name string
}

func (e *UnregisteredPredicateError) Error() string {
	return fmt.Sprintf("evaluate: predicate %q has no registered meaning", e.Name)
}

// Evaluate recursively computes t's boolean value under interp. Literals
// return themselves; a Constant or Variable looks itself up by name and
// fails with *UnboundNameError if absent; a NamedPredicate without a
// registered meaning fails with *UnregisteredPredicateError; connectives
// compute standard truth semantics.
func Evaluate(t *Term, interp *Interpretation) (bool, error) {
	switch t.kind {
	case KindTrue:
		return true, nil
	case KindFalse:
		return false, nil
	case KindConstant, KindVariable:
		v, ok := interp.Get(t.name)
		if !ok {
			return false, &UnboundNameError{Name: t.name}
		}
		return v, nil
	case KindNamedPredicate:
		meaning, ok := interp.predicates[t.name]
		if !ok {
			return false, &UnregisteredPredicateError{Name: t.name}
		}
		return meaning(t.Args(), interp)
	case KindNot:
		v, err := Evaluate(t.Inner(), interp)
		if err != nil {
			return false, err
		}
		return !v, nil
	case KindImp:
		l, err := Evaluate(t.Left(), interp)
		if err != nil {
			return false, err
		}
		if !l {
			return true, nil
		}
		return Evaluate(t.Right(), interp)
	case KindEqu:
		l, err := Evaluate(t.Left(), interp)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(t.Right(), interp)
		if err != nil {
			return false, err
		}
		return l == r, nil
	case KindAnd:
		for _, m := range t.members {
			v, err := Evaluate(m, interp)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case KindOr:
		for _, m := range t.members {
			v, err := Evaluate(m, interp)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("evaluate: unhandled kind %s", t.kind)
	}
}
