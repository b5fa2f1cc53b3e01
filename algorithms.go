package hat

import (
	"math/rand/v2"
	"sort"
)

// Generic sequence algorithms on cursor ranges [first, last).
// Both cursors of a range have to refer to the same tree, with first <= last.

func checkRange[T any](first, last Cursor[T]) int {
	assert(first.tree == last.tree, "first.tree == last.tree", "cursor range spans different trees")
	n := last.Distance(first)
	assert(n >= 0, "last - first >= 0", "distance between cursors cannot be negative")
	return n
}

// cursorRange adapts a cursor range to sort.Interface.
type cursorRange[T any] struct {
	tree  *Tree[T]
	first int
	n     int
	cmp   func(T, T) int
}

func (r cursorRange[T]) Len() int { return r.n }
func (r cursorRange[T]) Less(i, j int) bool {
	return r.cmp(r.tree.Get(r.first+i), r.tree.Get(r.first+j)) < 0
}
func (r cursorRange[T]) Swap(i, j int) { r.tree.SwapAt(r.first+i, r.first+j) }

// Sort sorts the elements in [first, last) in ascending order as determined
// by cmp. The sort is not guaranteed to be stable.
func Sort[T any](first, last Cursor[T], cmp func(T, T) int) {
	n := checkRange(first, last)
	if n < 2 {
		return
	}
	sort.Sort(cursorRange[T]{tree: first.tree, first: first.pos, n: n, cmp: cmp})
}

// SortStable is like Sort, but keeps the original order of equal elements.
func SortStable[T any](first, last Cursor[T], cmp func(T, T) int) {
	n := checkRange(first, last)
	if n < 2 {
		return
	}
	sort.Stable(cursorRange[T]{tree: first.tree, first: first.pos, n: n, cmp: cmp})
}

// Reverse reverses the order of the elements in [first, last).
func Reverse[T any](first, last Cursor[T]) {
	checkRange(first, last)
	reverse(first.tree, first.pos, last.pos)
}

func reverse[T any](t *Tree[T], i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		t.SwapAt(i, j)
	}
}

// Rotate rotates [first, last) to the left such that middle becomes the new
// first element. It returns a cursor to the new position of the element
// previously at first.
func Rotate[T any](first, middle, last Cursor[T]) Cursor[T] {
	checkRange(first, middle)
	checkRange(middle, last)
	t := first.tree
	reverse(t, first.pos, middle.pos)
	reverse(t, middle.pos, last.pos)
	reverse(t, first.pos, last.pos)
	return first.Add(last.Distance(middle))
}

// Shuffle pseudo-randomizes the order of elements in [first, last) using r.
// If r is nil, the top-level generator of math/rand/v2 is used.
func Shuffle[T any](first, last Cursor[T], r *rand.Rand) {
	n := checkRange(first, last)
	swap := func(i, j int) { first.tree.SwapAt(first.pos+i, first.pos+j) }
	if r == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Shuffle(n, swap)
}

// Find returns a cursor to the first element in [first, last) satisfying
// pred, or last if there is none.
func Find[T any](first, last ReadCursor[T], pred func(T) bool) ReadCursor[T] {
	for c := first; c.Less(last); c.Inc() {
		if pred(c.Value()) {
			return c
		}
	}
	return last
}

// Accumulate folds the elements in [first, last) into init using fn.
func Accumulate[T, A any](first, last ReadCursor[T], init A, fn func(A, T) A) A {
	acc := init
	for c := first; c.Less(last); c.Inc() {
		acc = fn(acc, c.Value())
	}
	return acc
}
