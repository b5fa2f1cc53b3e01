package hat

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidState)
	}
	if t.leafCap == 0 {
		if t.size != 0 || t.capacity != 0 || t.pow != 0 || len(t.leaves) != 0 {
			return fmt.Errorf("%w: unsized tree must be empty (size=%d, capacity=%d, pow=%d, leaves=%d)",
				ErrInvalidState, t.size, t.capacity, t.pow, len(t.leaves))
		}
		return nil
	}
	if !isPow2(t.leafCap) {
		return fmt.Errorf("%w: leaf capacity %d is not a power of two", ErrInvalidState, t.leafCap)
	}
	if 1<<t.pow != t.leafCap {
		return fmt.Errorf("%w: 2^%d != leaf capacity %d", ErrInvalidState, t.pow, t.leafCap)
	}
	if len(t.leaves) != t.leafCap {
		return fmt.Errorf("%w: directory length %d != leaf capacity %d", ErrInvalidState, len(t.leaves), t.leafCap)
	}
	if t.capacity%t.leafCap != 0 {
		return fmt.Errorf("%w: capacity %d is not a multiple of %d", ErrInvalidState, t.capacity, t.leafCap)
	}
	if t.capacity > t.leafCap*t.leafCap {
		return fmt.Errorf("%w: capacity %d exceeds max capacity %d", ErrInvalidState, t.capacity, t.leafCap*t.leafCap)
	}
	if t.size > t.capacity {
		return fmt.Errorf("%w: size %d exceeds capacity %d", ErrInvalidState, t.size, t.capacity)
	}
	if t.firstNonFull != t.size>>t.pow {
		return fmt.Errorf("%w: first non-full leaf %d, expected %d", ErrInvalidState, t.firstNonFull, t.size>>t.pow)
	}
	return t.checkLeaves()
}

// checkLeaves validates leaf capacities, the allocated prefix and density.
func (t *Tree[T]) checkLeaves() error {
	var items, slots int
	allocated, partial := true, false
	for i, leaf := range t.leaves {
		switch cap(leaf) {
		case 0:
			allocated = false
		case t.leafCap:
			if !allocated {
				return fmt.Errorf("%w: allocated leaf %d follows unallocated leaf", ErrInvalidState, i)
			}
			slots += t.leafCap
		default:
			return fmt.Errorf("%w: leaf %d has capacity %d, expected 0 or %d", ErrInvalidState, i, cap(leaf), t.leafCap)
		}
		if len(leaf) > 0 && partial {
			return fmt.Errorf("%w: leaf %d holds elements after a non-full leaf", ErrInvalidState, i)
		}
		if len(leaf) < t.leafCap {
			partial = true
		}
		items += len(leaf)
	}
	if items != t.size {
		return fmt.Errorf("%w: leaves hold %d elements, size is %d", ErrInvalidState, items, t.size)
	}
	if slots != t.capacity {
		return fmt.Errorf("%w: leaves provide %d slots, capacity is %d", ErrInvalidState, slots, t.capacity)
	}
	return nil
}
