package eval

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/gitrdm/logicsimplify/pkg/term"
)

// dontCare marks a position merged out of an implicant during
// Quine–McCluskey combination.
const dontCare = -1

// Implicant is one product term of a sum-of-products cover: Bits[i] is
// 0, 1, or dontCare for the i-th variable in the table's Variables order.
type Implicant struct {
	Bits []int
}

type rawImplicant struct {
	bits     []int
	minterms map[int]bool
}

func bitsOf(n, width int) []int {
	bits := make([]int, width)
	for i := 0; i < width; i++ {
		bits[width-1-i] = (n >> uint(i)) & 1
	}
	return bits
}

func combine(a, b rawImplicant) (rawImplicant, bool) {
	diff := -1
	bits := make([]int, len(a.bits))
	for i := range a.bits {
		if a.bits[i] != b.bits[i] {
			if diff != -1 || a.bits[i] == dontCare || b.bits[i] == dontCare {
				return rawImplicant{}, false
			}
			diff = i
			bits[i] = dontCare
		} else {
			bits[i] = a.bits[i]
		}
	}
	if diff == -1 {
		return rawImplicant{}, false
	}
	merged := make(map[int]bool, len(a.minterms)+len(b.minterms))
	for m := range a.minterms {
		merged[m] = true
	}
	for m := range b.minterms {
		merged[m] = true
	}
	return rawImplicant{bits: bits, minterms: merged}, true
}

func implicantKey(bits []int) string {
	parts := make([]string, len(bits))
	for i, b := range bits {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, ",")
}

// Minimize runs the Quine–McCluskey combination phase to find all prime
// implicants, then a greedy largest-coverage-first pass to select a
// cover of the table's true rows. It returns ok=false if that greedy
// pass cannot exhaust every true row with the available prime
// implicants — this minimiser is explicitly best-effort (spec.md §1,
// §9), not a guaranteed-minimal decision procedure; callers that need a
// normal form regardless of minimality should fall back to
// rewrite.Simplify instead of trusting a partial result.
func (t *Table) Minimize() ([]Implicant, bool) {
	width := len(t.Variables)

	var minterms []int
	for i, row := range t.Rows {
		if row.Result {
			minterms = append(minterms, i)
		}
	}
	if len(minterms) == 0 {
		return nil, true
	}

	current := make([]rawImplicant, len(minterms))
	for i, m := range minterms {
		current[i] = rawImplicant{bits: bitsOf(m, width), minterms: map[int]bool{m: true}}
	}

	var primes []rawImplicant
	for len(current) > 0 {
		combined := make([]bool, len(current))
		merged := map[string]rawImplicant{}

		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				m, ok := combine(current[i], current[j])
				if !ok {
					continue
				}
				combined[i] = true
				combined[j] = true
				merged[implicantKey(m.bits)] = m
			}
		}

		for i, c := range current {
			if !combined[i] {
				primes = append(primes, c)
			}
		}

		next := make([]rawImplicant, 0, len(merged))
		for _, v := range merged {
			next = append(next, v)
		}
		current = next
	}

	return greedyCover(primes, minterms)
}

func greedyCover(primes []rawImplicant, minterms []int) ([]Implicant, bool) {
	uncovered := make(map[int]bool, len(minterms))
	for _, m := range minterms {
		uncovered[m] = true
	}
	remaining := append([]rawImplicant{}, primes...)

	var cover []Implicant
	for len(uncovered) > 0 {
		bestIdx, bestCount := -1, 0
		for i, p := range remaining {
			count := 0
			for m := range p.minterms {
				if uncovered[m] {
					count++
				}
			}
			if count > bestCount {
				bestIdx, bestCount = i, count
			}
		}
		if bestIdx == -1 {
			return cover, false
		}
		for m := range remaining[bestIdx].minterms {
			delete(uncovered, m)
		}
		cover = append(cover, Implicant{Bits: remaining[bestIdx].bits})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	sort.Slice(cover, func(i, j int) bool {
		return implicantKey(cover[i].Bits) < implicantKey(cover[j].Bits)
	})
	return cover, true
}

func literalFor(name string) *term.Term {
	if len(name) > 0 && unicode.IsUpper(rune(name[0])) {
		return term.NewVariable(name)
	}
	return term.NewConstant(name)
}

// MinimalTerm reconstructs Minimize's cover as a sum-of-products term
// over the table's variable names, alongside the same ok flag.
func (t *Table) MinimalTerm() (*term.Term, bool) {
	cover, ok := t.Minimize()
	if len(cover) == 0 {
		if ok {
			return term.False(), true
		}
		return term.False(), false
	}

	var products []*term.Term
	for _, imp := range cover {
		var literals []*term.Term
		for i, b := range imp.Bits {
			if b == dontCare {
				continue
			}
			lit := literalFor(t.Variables[i])
			if b == 0 {
				lit = term.NewNot(lit)
			}
			literals = append(literals, lit)
		}
		if len(literals) == 0 {
			return term.True(), ok
		}
		products = append(products, term.AndOf(literals...))
	}
	return term.OrOf(products...), ok
}
