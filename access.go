package hat

import "fmt"

// locate maps a position to its leaf and the offset within the leaf.
func (t *Tree[T]) locate(pos int) (leaf, offset int) {
	return pos >> t.pow, pos & (t.leafCap - 1)
}

// Ref returns a pointer to the element at pos. The pointer is valid until
// the next operation which may grow t.
//
// pos is not checked except for debug builds.
func (t *Tree[T]) Ref(pos int) *T {
	if debugChecks {
		assert(pos >= 0 && pos < t.size, "0 <= pos < size", "position out of range")
	}
	leaf, off := t.locate(pos)
	return &t.leaves[leaf][off]
}

// Get returns the element at pos.
//
// pos is not checked except for debug builds.
func (t *Tree[T]) Get(pos int) T {
	if debugChecks {
		assert(pos >= 0 && pos < t.size, "0 <= pos < size", "position out of range")
	}
	leaf, off := t.locate(pos)
	return t.leaves[leaf][off]
}

// Set replaces the element at pos.
//
// pos is not checked except for debug builds.
func (t *Tree[T]) Set(pos int, value T) {
	if debugChecks {
		assert(pos >= 0 && pos < t.size, "0 <= pos < size", "position out of range")
	}
	leaf, off := t.locate(pos)
	t.leaves[leaf][off] = value
}

// At returns the element at pos. It returns an error wrapping
// ErrIndexOutOfBounds if pos is not a valid position.
func (t *Tree[T]) At(pos int) (T, error) {
	if err := t.checkPos(pos); err != nil {
		var zero T
		return zero, err
	}
	leaf, off := t.locate(pos)
	return t.leaves[leaf][off], nil
}

// SetAt replaces the element at pos. It returns an error wrapping
// ErrIndexOutOfBounds if pos is not a valid position.
func (t *Tree[T]) SetAt(pos int, value T) error {
	if err := t.checkPos(pos); err != nil {
		return err
	}
	leaf, off := t.locate(pos)
	t.leaves[leaf][off] = value
	return nil
}

func (t *Tree[T]) checkPos(pos int) error {
	if t == nil || pos < 0 || pos >= t.size {
		return fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfBounds, pos, t.Len())
	}
	return nil
}

// Front returns the first element. t must not be empty.
func (t *Tree[T]) Front() T {
	assert(t.size > 0, "size > 0", "Front called on empty tree")
	return t.Get(0)
}

// Back returns the last element. t must not be empty.
func (t *Tree[T]) Back() T {
	assert(t.size > 0, "size > 0", "Back called on empty tree")
	return t.Get(t.size - 1)
}

// ToSlice returns a copy of all elements of t, in order.
func (t *Tree[T]) ToSlice() []T {
	if t == nil {
		return nil
	}
	s := make([]T, 0, t.size)
	for _, leaf := range t.leaves {
		if len(leaf) == 0 {
			break
		}
		s = append(s, leaf...)
	}
	return s
}

// SwapAt exchanges the elements at positions i and j.
// With Len, this lets trees be used with helpers like rand.Shuffle.
func (t *Tree[T]) SwapAt(i, j int) {
	pi, pj := t.Ref(i), t.Ref(j)
	*pi, *pj = *pj, *pi
}
