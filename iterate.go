package hat

import "iter"

// All returns an iterator over positions and elements of t, in order.
//
// t must not grow while iterating.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t == nil {
			return
		}
		pos := 0
		for _, leaf := range t.leaves {
			if len(leaf) == 0 {
				return
			}
			for _, v := range leaf {
				if !yield(pos, v) {
					return
				}
				pos++
			}
		}
	}
}

// Values returns an iterator over the elements of t, in order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over positions and elements of t, from the
// last element to the first.
func (t *Tree[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t == nil {
			return
		}
		for pos := t.size - 1; pos >= 0; pos-- {
			if !yield(pos, t.Get(pos)) {
				return
			}
		}
	}
}

// ForEach walks the elements in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEach(fn func(pos int, value T) bool) {
	if t == nil || fn == nil {
		return
	}
	t.All()(fn)
}
