package hat

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
)

// Tree is a hashed array tree holding elements of type T.
//
// A tree created by
//
//	Tree[T]{}
//
// is a valid object and behaves like an empty sequence. Trees own their
// storage exclusively and have to be handled by pointer; copying a Tree
// value aliases its leaves. Use Clone or CopyFrom for deep copies and Take
// for transferring storage.
type Tree[T any] struct {
	leaves       [][]T // directory, len(leaves) == leafCap
	leafCap      int   // L, slots per allocated leaf; 0 or a power of two
	pow          uint  // log2(L), cached for indexing
	size         int   // number of live elements
	capacity     int   // slots backed by allocated leaves, multiple of L
	firstNonFull int   // leftmost leaf with room, == size >> pow
	stats        Stats
}

// Stats reports counters of the growth engine of a tree. Counters are
// cumulative over the lifetime of a tree and are reset by Take (for the
// source) but not by Clear.
type Stats struct {
	Reorganizations int // number of directory reorganizations (L changed)
	LeafAllocations int // number of leaves allocated
	Moves           int // elements moved between leaves during reorganizations
}

// New creates an empty, unsized tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// WithCapacity creates an empty tree with room for at least n elements.
func WithCapacity[T any](n int) *Tree[T] {
	t := &Tree[T]{}
	t.Reserve(n)
	return t
}

// Filled creates a tree holding n copies of value.
func Filled[T any](n int, value T) *Tree[T] {
	t := WithCapacity[T](n)
	for range n {
		t.Append(value)
	}
	return t
}

// FromSlice creates a tree holding a copy of the elements of s, in order.
func FromSlice[T any](s []T) *Tree[T] {
	t := WithCapacity[T](len(s))
	for _, v := range s {
		t.Append(v)
	}
	return t
}

// Of creates a tree from a literal list of values.
func Of[T any](values ...T) *Tree[T] {
	return FromSlice(values)
}

// FromSeq creates a tree from the values produced by seq. As the length of
// seq is unknown in advance, the tree grows while consuming it.
func FromSeq[T any](seq iter.Seq[T]) *Tree[T] {
	t := &Tree[T]{}
	if seq == nil {
		return t
	}
	for v := range seq {
		t.Append(v)
	}
	return t
}

// FromRange creates a tree from the elements in [first, last) of another
// tree. Both cursors have to refer to the same tree, with first <= last.
func FromRange[T any](first, last ReadCursor[T]) *Tree[T] {
	n := last.Distance(first)
	assert(n >= 0, "last - first >= 0", "distance between cursors cannot be negative")
	t := WithCapacity[T](n)
	for c := first; c.NotEqual(last); c.Inc() {
		t.Append(c.Value())
	}
	return t
}

// Clone returns a deep copy of t. The copy has at least the capacity of t,
// its leaf layout is derived independently.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{}
	if t == nil {
		return c
	}
	c.Reserve(t.capacity)
	for _, leaf := range t.leaves {
		if len(leaf) == 0 {
			break
		}
		for _, v := range leaf {
			c.Append(v)
		}
	}
	return c
}

// CopyFrom replaces the contents of t by a deep copy of src. Storage held by
// t before the call is released.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.reset()
	if src == nil {
		return
	}
	t.Reserve(src.capacity)
	for v := range src.Values() {
		t.Append(v)
	}
}

// Take moves the storage of src into t and leaves src as an empty, unsized
// tree. Storage held by t before the call is released.
func (t *Tree[T]) Take(src *Tree[T]) {
	if t == src || src == nil {
		return
	}
	*t = *src
	src.reset()
	src.stats = Stats{}
}

// Swap exchanges the contents of t and other.
func (t *Tree[T]) Swap(other *Tree[T]) {
	*t, *other = *other, *t
}

// reset puts t into the canonical empty state: no directory, L=0.
// Growth statistics are kept.
func (t *Tree[T]) reset() {
	t.leaves = nil
	t.leafCap = 0
	t.pow = 0
	t.size = 0
	t.capacity = 0
	t.firstNonFull = 0
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of elements in t.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Capacity returns the number of element slots currently backed by storage.
func (t *Tree[T]) Capacity() int {
	if t == nil {
		return 0
	}
	return t.capacity
}

// MaxCapacity returns the number of elements t can hold without a
// reorganization, i.e. L×L.
func (t *Tree[T]) MaxCapacity() int {
	if t == nil {
		return 0
	}
	return t.leafCap * t.leafCap
}

// LeafCapacity returns L, the number of slots of an allocated leaf.
func (t *Tree[T]) LeafCapacity() int {
	if t == nil {
		return 0
	}
	return t.leafCap
}

// IsEmpty reports whether t holds no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// IsFull reports whether t holds L×L elements, i.e. the next append will
// trigger a reorganization.
func (t *Tree[T]) IsFull() bool {
	return t != nil && t.size > 0 && t.size == t.leafCap*t.leafCap
}

// Stats returns the growth counters of t.
func (t *Tree[T]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.stats
}
