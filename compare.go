package hat

import "cmp"

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Tree[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b have the same length and eq holds for
// each pair of elements at the same position.
func EqualFunc[T any](a, b *Tree[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		if !eq(a.Get(i), b.Get(i)) {
			return false
		}
	}
	return true
}

// Compare compares the elements of a and b lexicographically. The result is
// 0 if a == b, -1 if a < b, and +1 if a > b. A tree which is a prefix of the
// other one is the smaller one.
func Compare[T cmp.Ordered](a, b *Tree[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare, but uses cmp to compare elements.
func CompareFunc[T any](a, b *Tree[T], cmp func(T, T) int) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		if c := cmp(a.Get(i), b.Get(i)); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	}
	return 0
}
