package hat

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math"
	"math/bits"
)

// Reserve makes room for at least target elements. It is a no-op if target
// does not exceed the current capacity.
//
// If target fits into the current directory (target <= L×L), Reserve
// allocates additional leaves and leaves existing elements untouched.
// Otherwise the leaf capacity L is raised to the next power of two at or
// above √target and the tree is reorganized: existing leaves are merged, in
// order, into the wider leaves of a new directory. A reorganization costs
// O(n), but happens only after Θ(L²) appends, keeping appends amortized O(1).
//
// Reserve invalidates all cursors of t.
func (t *Tree[T]) Reserve(target int) {
	if target <= t.capacity {
		return
	}
	if target <= t.leafCap*t.leafCap {
		t.allocateLeaves(leafCount(target, t.leafCap))
		return
	}
	t.reorganize(target)
}

// allocateLeaves makes sure the first n leaves of the directory are backed by
// storage. Allocated leaves always form a prefix of the directory.
func (t *Tree[T]) allocateLeaves(n int) {
	assert(n <= t.leafCap, "n <= L", "leaf allocation exceeds directory")
	allocated := 0
	for i := range n {
		if cap(t.leaves[i]) == 0 {
			t.leaves[i] = make([]T, 0, t.leafCap)
			allocated++
		}
	}
	t.stats.LeafAllocations += allocated
	t.capacity = n * t.leafCap
	t.firstNonFull = t.size >> t.pow
	tracer().Debugf("hat: allocated %d leaves of %d slots, capacity now %d", allocated, t.leafCap, t.capacity)
}

// reorganize grows the leaf capacity to fit target elements and redistributes
// the existing elements.
//
// The new directory is completely populated before it replaces the current
// one, so a failing allocation leaves t in its previous state.
func (t *Tree[T]) reorganize(target int) {
	leafCap := nextPowerOf2(ceilSqrt(target))
	assert(leafCap > t.leafCap, "new L > L", "reorganization has to grow the leaf capacity")
	n := leafCount(target, leafCap)
	leaves := make([][]T, leafCap)
	for i := range n {
		leaves[i] = make([]T, 0, leafCap)
	}
	// Each new leaf takes the contents of ratio consecutive old leaves.
	// Old leaves are dense, so the first empty one ends the data.
	moves := 0
	if t.leafCap > 0 {
		ratio := leafCap / t.leafCap
		for i, leaf := range t.leaves {
			if len(leaf) == 0 {
				break
			}
			dst := i / ratio
			leaves[dst] = append(leaves[dst], leaf...)
			moves += len(leaf)
		}
	}
	tracer().Debugf("hat: reorganized L=%d -> L=%d, moved %d elements, %d leaves allocated",
		t.leafCap, leafCap, moves, n)
	t.leaves = leaves
	t.leafCap = leafCap
	t.pow = uint(bits.TrailingZeros(uint(leafCap)))
	t.capacity = n * leafCap
	t.firstNonFull = t.size >> t.pow
	t.stats.Reorganizations++
	t.stats.LeafAllocations += n
	t.stats.Moves += moves
}

// --- Helpers ---------------------------------------------------------------

// leafCount returns the number of leaves of capacity l needed for n elements.
func leafCount(n, l int) int {
	return (n + l - 1) / l
}

// ceilSqrt returns the smallest r with r*r >= n.
func ceilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for r > 0 && (r-1)*(r-1) >= n {
		r--
	}
	return r
}

// nextPowerOf2 returns the smallest power of two >= n, with
// nextPowerOf2(0) == 1.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// isPow2 determines if n is a perfect power of 2.
func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
