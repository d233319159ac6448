package service

import "sort"

// intSet is the shared set-algebra helper behind both validators.
type intSet map[int]struct{}

func newIntSet(xs []int) intSet {
	s := make(intSet, len(xs))
	for _, x := range xs {
		s[x] = struct{}{}
	}
	return s
}

func (s intSet) add(x int) {
	s[x] = struct{}{}
}

func (s intSet) contains(x int) bool {
	_, ok := s[x]
	return ok
}

func (s intSet) sorted() []int {
	out := make([]int, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	sort.Ints(out)
	return out
}

func setsEqual(a, b intSet) bool {
	if len(a) != len(b) {
		return false
	}
	for x := range a {
		if !b.contains(x) {
			return false
		}
	}
	return true
}

// jaccard returns |a∩b| / |a∪b|. Two empty sets are identical, so 1.
func jaccard(a, b intSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter := 0
	for x := range a {
		if b.contains(x) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
