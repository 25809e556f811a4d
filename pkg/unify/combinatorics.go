package unify

// permutations yields every ordering of 0..n-1 as index slices, via
// Heap's algorithm. It is the combinatorial core behind commutative
// argument pairing and the permutation half of subset/rest matching —
// the "essentially all of the non-trivial engineering" the term algebra
// and rewrite driver depend on (spec §2).
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	var out [][]int
	c := make([]int, n)
	out = append(out, append([]int{}, indices...))
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				indices[0], indices[i] = indices[i], indices[0]
			} else {
				indices[c[i]], indices[i] = indices[i], indices[c[i]]
			}
			out = append(out, append([]int{}, indices...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return out
}

// combinations yields every size-k subset of 0..n-1, as ascending index
// slices, preserving relative order — the "every size-|needle.args|
// combination of haystack members" step of subset/rest matching.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int{}, idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
