package hat

import "cmp"

// Cursor is a random access position within a tree. It may be dereferenced
// for reading and writing elements.
//
// A cursor is a plain value: a position in [0, Len()] and a reference to its
// tree. All operations are O(1). Cursors do not survive operations that may
// grow the tree (Append, Reserve and the like), as leaves may be replaced.
//
// Inc and Dec have prefix semantics; postfix behaviour is
//
//	old := c
//	c.Inc()
type Cursor[T any] struct {
	tree *Tree[T]
	pos  int
}

// Begin returns a cursor to the first element of t. For an empty tree,
// Begin equals End.
func (t *Tree[T]) Begin() Cursor[T] {
	return Cursor[T]{tree: t, pos: 0}
}

// End returns a cursor one past the last element of t.
func (t *Tree[T]) End() Cursor[T] {
	return Cursor[T]{tree: t, pos: t.Len()}
}

// CBegin returns a read-only cursor to the first element of t.
func (t *Tree[T]) CBegin() ReadCursor[T] {
	return t.Begin().ReadOnly()
}

// CEnd returns a read-only cursor one past the last element of t.
func (t *Tree[T]) CEnd() ReadCursor[T] {
	return t.End().ReadOnly()
}

// CursorAt returns a cursor at position pos, which has to be in [0, Len()].
func (t *Tree[T]) CursorAt(pos int) (Cursor[T], error) {
	if pos < 0 || pos > t.Len() {
		return Cursor[T]{}, ErrIndexOutOfBounds
	}
	return Cursor[T]{tree: t, pos: pos}, nil
}

// Pos returns the position of the cursor.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Value returns the element at the cursor.
func (c Cursor[T]) Value() T {
	assert(c.tree != nil, "tree != nil", "dereferencing unbound cursor")
	return c.tree.Get(c.pos)
}

// Ptr returns a pointer to the element at the cursor.
func (c Cursor[T]) Ptr() *T {
	assert(c.tree != nil, "tree != nil", "dereferencing unbound cursor")
	return c.tree.Ref(c.pos)
}

// Set replaces the element at the cursor.
func (c Cursor[T]) Set(value T) {
	assert(c.tree != nil, "tree != nil", "dereferencing unbound cursor")
	c.tree.Set(c.pos, value)
}

// At returns the element n positions away from the cursor.
func (c Cursor[T]) At(n int) T {
	assert(c.tree != nil, "tree != nil", "dereferencing unbound cursor")
	return c.tree.Get(c.pos + n)
}

// Inc moves the cursor to the next position.
func (c *Cursor[T]) Inc() {
	c.pos++
}

// Dec moves the cursor to the previous position.
func (c *Cursor[T]) Dec() {
	c.pos--
}

// Move moves the cursor by n positions; n may be negative.
func (c *Cursor[T]) Move(n int) {
	c.pos += n
}

// Add returns a cursor n positions after c.
func (c Cursor[T]) Add(n int) Cursor[T] {
	return Cursor[T]{tree: c.tree, pos: c.pos + n}
}

// Sub returns a cursor n positions before c.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	return Cursor[T]{tree: c.tree, pos: c.pos - n}
}

// Distance returns the number of positions from other to c, i.e. c - other.
func (c Cursor[T]) Distance(other Cursor[T]) int {
	return c.pos - other.pos
}

// Compare returns -1, 0 or +1 if c is before, at, or after other.
// Both cursors have to refer to the same tree.
func (c Cursor[T]) Compare(other Cursor[T]) int {
	assert(c.tree == other.tree, "c.tree == other.tree", "comparing cursors of different trees")
	return cmp.Compare(c.pos, other.pos)
}

func (c Cursor[T]) Equal(other Cursor[T]) bool     { return c.Compare(other) == 0 }
func (c Cursor[T]) NotEqual(other Cursor[T]) bool  { return c.Compare(other) != 0 }
func (c Cursor[T]) Less(other Cursor[T]) bool      { return c.Compare(other) < 0 }
func (c Cursor[T]) LessEq(other Cursor[T]) bool    { return c.Compare(other) <= 0 }
func (c Cursor[T]) Greater(other Cursor[T]) bool   { return c.Compare(other) > 0 }
func (c Cursor[T]) GreaterEq(other Cursor[T]) bool { return c.Compare(other) >= 0 }

// ReadOnly converts c to a cursor which does not allow modification of
// elements. There is no conversion in the opposite direction.
func (c Cursor[T]) ReadOnly() ReadCursor[T] {
	return ReadCursor[T]{tree: c.tree, pos: c.pos}
}

// --- Read-only cursors -----------------------------------------------------

// ReadCursor is a random access position within a tree, permitting read
// access to elements only. Apart from that it behaves like Cursor.
type ReadCursor[T any] struct {
	tree *Tree[T]
	pos  int
}

// Pos returns the position of the cursor.
func (c ReadCursor[T]) Pos() int {
	return c.pos
}

// Value returns the element at the cursor.
func (c ReadCursor[T]) Value() T {
	assert(c.tree != nil, "tree != nil", "dereferencing unbound cursor")
	return c.tree.Get(c.pos)
}

// At returns the element n positions away from the cursor.
func (c ReadCursor[T]) At(n int) T {
	assert(c.tree != nil, "tree != nil", "dereferencing unbound cursor")
	return c.tree.Get(c.pos + n)
}

func (c *ReadCursor[T]) Inc()       { c.pos++ }
func (c *ReadCursor[T]) Dec()       { c.pos-- }
func (c *ReadCursor[T]) Move(n int) { c.pos += n }

// Add returns a cursor n positions after c.
func (c ReadCursor[T]) Add(n int) ReadCursor[T] {
	return ReadCursor[T]{tree: c.tree, pos: c.pos + n}
}

// Sub returns a cursor n positions before c.
func (c ReadCursor[T]) Sub(n int) ReadCursor[T] {
	return ReadCursor[T]{tree: c.tree, pos: c.pos - n}
}

// Distance returns the number of positions from other to c, i.e. c - other.
func (c ReadCursor[T]) Distance(other ReadCursor[T]) int {
	return c.pos - other.pos
}

// Compare returns -1, 0 or +1 if c is before, at, or after other.
// Both cursors have to refer to the same tree.
func (c ReadCursor[T]) Compare(other ReadCursor[T]) int {
	assert(c.tree == other.tree, "c.tree == other.tree", "comparing cursors of different trees")
	return cmp.Compare(c.pos, other.pos)
}

func (c ReadCursor[T]) Equal(other ReadCursor[T]) bool     { return c.Compare(other) == 0 }
func (c ReadCursor[T]) NotEqual(other ReadCursor[T]) bool  { return c.Compare(other) != 0 }
func (c ReadCursor[T]) Less(other ReadCursor[T]) bool      { return c.Compare(other) < 0 }
func (c ReadCursor[T]) LessEq(other ReadCursor[T]) bool    { return c.Compare(other) <= 0 }
func (c ReadCursor[T]) Greater(other ReadCursor[T]) bool   { return c.Compare(other) > 0 }
func (c ReadCursor[T]) GreaterEq(other ReadCursor[T]) bool { return c.Compare(other) >= 0 }
