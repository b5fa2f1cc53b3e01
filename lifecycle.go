package hat

// Append adds value at the end of t, growing t if it is at capacity.
//
// Append is amortized O(1). A growing append invalidates all cursors of t.
func (t *Tree[T]) Append(value T) {
	if t.size == t.capacity {
		t.Reserve(t.size + 1)
	}
	leaf := t.leaves[t.firstNonFull]
	t.leaves[t.firstNonFull] = append(leaf, value)
	t.size++
	if len(leaf)+1 == t.leafCap {
		t.firstNonFull++
	}
}

// AppendFunc adds a new zero element at the end of t and lets init construct
// it in place. init may be nil.
func (t *Tree[T]) AppendFunc(init func(*T)) {
	var zero T
	t.Append(zero)
	if init != nil {
		init(t.Ref(t.size - 1))
	}
}

// AppendValues adds all values at the end of t, in order. Room for all of
// them is reserved upfront, so at most one growth step happens.
func (t *Tree[T]) AppendValues(values ...T) {
	t.Reserve(t.size + len(values))
	for _, v := range values {
		t.Append(v)
	}
}

// RemoveLast removes the last element of t and returns it.
// t must not be empty. RemoveLast never releases storage.
func (t *Tree[T]) RemoveLast() T {
	assert(t.size > 0, "size > 0", "RemoveLast called on empty tree")
	// if the append cursor sits at the start of a leaf (or past a completely
	// full tree), the last element lives in the preceding leaf
	if t.firstNonFull == len(t.leaves) || len(t.leaves[t.firstNonFull]) == 0 {
		t.firstNonFull--
	}
	leaf := t.leaves[t.firstNonFull]
	last := len(leaf) - 1
	value := leaf[last]
	var zero T
	leaf[last] = zero // do not retain references
	t.leaves[t.firstNonFull] = leaf[:last]
	t.size--
	return value
}

// Clear removes all elements from t. Allocated storage is kept.
func (t *Tree[T]) Clear() {
	for i, leaf := range t.leaves {
		if len(leaf) == 0 {
			break
		}
		clear(leaf)
		t.leaves[i] = leaf[:0]
	}
	t.size = 0
	t.firstNonFull = 0
}

// ShrinkToFit releases the storage of all leaves not holding any elements.
// Partially filled leaves keep their capacity.
func (t *Tree[T]) ShrinkToFit() {
	released := 0
	for i, leaf := range t.leaves {
		if len(leaf) == 0 && cap(leaf) > 0 {
			released += cap(leaf)
			t.leaves[i] = nil
		}
	}
	t.capacity -= released
	if released > 0 {
		tracer().Debugf("hat: released %d slots, capacity now %d", released, t.capacity)
	}
}
