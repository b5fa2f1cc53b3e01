package hat

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestSortRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	values := make([]int, 500)
	for i := range values {
		values[i] = r.IntN(100)
	}
	tree := FromSlice(values)
	Sort(tree.Begin(), tree.End(), cmp.Compare[int])
	slices.Sort(values)
	if !slices.Equal(tree.ToSlice(), values) {
		t.Errorf("Sort yields unsorted tree")
	}
	partial := Of(9, 8, 7, 3, 2, 1, 0)
	Sort(partial.Begin().Add(1), partial.End().Sub(1), cmp.Compare[int])
	if !slices.Equal(partial.ToSlice(), []int{9, 1, 2, 3, 7, 8, 0}) {
		t.Errorf("Sort of subrange: %v", partial.ToSlice())
	}
}

func TestSortStable(t *testing.T) {
	words := Of("pear", "fig", "apple", "kiwi", "plum", "date")
	SortStable(words.Begin(), words.End(), func(a, b string) int {
		return cmp.Compare(len(a), len(b))
	})
	want := []string{"fig", "pear", "kiwi", "plum", "date", "apple"}
	if !slices.Equal(words.ToSlice(), want) {
		t.Errorf("SortStable: %v, expected %v", words.ToSlice(), want)
	}
}

func TestReverseAndRotate(t *testing.T) {
	tree := Of(1, 2, 3, 4, 5, 6, 7)
	Reverse(tree.Begin(), tree.End())
	if !slices.Equal(tree.ToSlice(), []int{7, 6, 5, 4, 3, 2, 1}) {
		t.Errorf("Reverse: %v", tree.ToSlice())
	}
	Reverse(tree.Begin(), tree.Begin())
	tree = Of(1, 2, 3, 4, 5, 6, 7)
	c := Rotate(tree.Begin(), tree.Begin().Add(3), tree.End())
	if !slices.Equal(tree.ToSlice(), []int{4, 5, 6, 7, 1, 2, 3}) {
		t.Errorf("Rotate: %v", tree.ToSlice())
	}
	if c.Pos() != 4 || c.Value() != 1 {
		t.Errorf("Rotate returned cursor at %d", c.Pos())
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	tree := New[int]()
	for i := range 100 {
		tree.Append(i)
	}
	Shuffle(tree.Begin(), tree.End(), rand.New(rand.NewPCG(7, 7)))
	got := tree.ToSlice()
	slices.Sort(got)
	for i, v := range got {
		if v != i {
			t.Fatalf("Shuffle lost element %d", i)
		}
	}
	Shuffle(tree.Begin(), tree.End(), nil)
	if tree.Len() != 100 {
		t.Errorf("Shuffle changed length")
	}
}

func TestFindAndAccumulate(t *testing.T) {
	tree := Of("alpha", "beta", "gamma", "delta")
	c := Find(tree.CBegin(), tree.CEnd(), func(s string) bool { return strings.HasPrefix(s, "g") })
	if c.Pos() != 2 {
		t.Errorf("Find: position %d", c.Pos())
	}
	if c := Find(tree.CBegin(), tree.CEnd(), func(s string) bool { return s == "omega" }); !c.Equal(tree.CEnd()) {
		t.Errorf("Find without match should return last")
	}
	total := Accumulate(tree.CBegin(), tree.CEnd(), 0, func(n int, s string) int { return n + len(s) })
	if total != 19 {
		t.Errorf("Accumulate: %d", total)
	}
}

func TestCompareTrees(t *testing.T) {
	for _, tc := range []struct {
		a, b []int
		cmp  int
	}{
		{nil, nil, 0},
		{[]int{1, 2, 3}, []int{1, 2, 3}, 0},
		{[]int{1, 2}, []int{1, 2, 3}, -1},
		{[]int{1, 2, 4}, []int{1, 2, 3}, 1},
		{[]int{0, 9, 9}, []int{1}, -1},
	} {
		a, b := FromSlice(tc.a), FromSlice(tc.b)
		if c := Compare(a, b); c != tc.cmp {
			t.Errorf("Compare(%v, %v) = %d, expected %d", tc.a, tc.b, c, tc.cmp)
		}
		if c := Compare(b, a); c != -tc.cmp {
			t.Errorf("Compare(%v, %v) = %d, expected %d", tc.b, tc.a, c, -tc.cmp)
		}
		if Equal(a, b) != (tc.cmp == 0) {
			t.Errorf("Equal(%v, %v) disagrees with Compare", tc.a, tc.b)
		}
	}
	// trees with different leaf layouts compare by contents
	a := WithCapacity[int](1000)
	a.AppendValues(1, 2, 3)
	if !Equal(a, Of(1, 2, 3)) {
		t.Errorf("equal contents with different capacity should be equal")
	}
	fold := func(x, y string) bool { return strings.EqualFold(x, y) }
	if !EqualFunc(Of("A", "b"), Of("a", "B"), fold) {
		t.Errorf("EqualFunc ignores comparator")
	}
	if CompareFunc(Of(3), Of(1), func(x, y int) int { return y - x }) != -1 {
		t.Errorf("CompareFunc ignores comparator")
	}
}
