package hat

import (
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized model test:
//     go test . -run TestRandomizedAgainstSlice -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzTreeOperations -fuzztime=10s

type opKind int

const (
	opAppend opKind = iota
	opRemoveLast
	opReserve
	opClear
	opShrink
	opSet
	opAppendValues
	opCount
)

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model []int, step int) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("step %d: %v", step, err)
	}
	if tree.Len() != len(model) {
		t.Fatalf("step %d: length mismatch: got=%d want=%d", step, tree.Len(), len(model))
	}
	for i := range model {
		if got := tree.Get(i); got != model[i] {
			t.Fatalf("step %d: mismatch at %d: got=%d want=%d", step, i, got, model[i])
		}
	}
	if l := tree.LeafCapacity(); l != 0 && (tree.Capacity()%l != 0 || tree.Capacity() > tree.MaxCapacity()) {
		t.Fatalf("step %d: capacity %d inconsistent with L=%d", step, tree.Capacity(), l)
	}
}

// applyOp performs op on both tree and model and returns the updated model.
func applyOp(tree *Tree[int], model []int, op opKind, arg int) []int {
	switch op {
	case opAppend:
		tree.Append(arg)
		model = append(model, arg)
	case opRemoveLast:
		if len(model) == 0 {
			break
		}
		v := tree.RemoveLast()
		if v != model[len(model)-1] {
			panic("RemoveLast returned wrong element")
		}
		model = model[:len(model)-1]
	case opReserve:
		tree.Reserve(tree.Len() + arg*arg)
	case opClear:
		tree.Clear()
		model = model[:0]
	case opShrink:
		capacity := tree.Capacity()
		empty := 0
		for _, leaf := range tree.leaves {
			if len(leaf) == 0 {
				empty += cap(leaf)
			}
		}
		tree.ShrinkToFit()
		if tree.Capacity() != capacity-empty {
			panic("ShrinkToFit released wrong amount of storage")
		}
	case opSet:
		if len(model) == 0 {
			break
		}
		pos := arg % len(model)
		tree.Set(pos, -arg)
		model[pos] = -arg
	case opAppendValues:
		values := make([]int, arg%7)
		for i := range values {
			values[i] = arg + i
		}
		tree.AppendValues(values...)
		model = append(model, values...)
	}
	return model
}

func TestRandomizedAgainstSlice(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	for round := range 20 {
		tree := New[int]()
		var model []int
		for step := range 2000 {
			// bias towards appends so trees grow through several reorganizations
			op := opKind(r.Intn(int(opCount) + 4))
			if op >= opCount {
				op = opAppend
			}
			model = applyOp(tree, model, op, r.Intn(64))
			assertTreeMatchesModel(t, tree, model, round*10000+step)
		}
		if !slices.Equal(tree.ToSlice(), model) {
			t.Fatalf("round %d: ToSlice differs from model", round)
		}
	}
}

func FuzzTreeOperations(f *testing.F) {
	f.Add([]byte{0, 1, 0, 2, 0, 3, 1, 0, 2, 9})
	f.Add([]byte{6, 20, 0, 1, 3, 0, 4, 0, 0, 5})
	f.Add([]byte{2, 63, 4, 0, 1, 0, 1, 0, 0, 0})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := New[int]()
		var model []int
		for i := 0; i+1 < len(ops); i += 2 {
			op := opKind(int(ops[i]) % int(opCount))
			model = applyOp(tree, model, op, int(ops[i+1]%64))
			assertTreeMatchesModel(t, tree, model, i/2)
		}
	})
}
