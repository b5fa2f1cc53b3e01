package hat

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// occupancy classifies leaves for diagnostic output.
type occupancy int

const (
	leafUnallocated occupancy = iota
	leafEmpty
	leafPartial
	leafFull
)

func (t *Tree[T]) occupancyOf(leaf []T) occupancy {
	switch {
	case cap(leaf) == 0:
		return leafUnallocated
	case len(leaf) == 0:
		return leafEmpty
	case len(leaf) < t.leafCap:
		return leafPartial
	}
	return leafFull
}

var dumpPalette = map[occupancy]*color.Color{
	leafUnallocated: color.New(color.Faint),
	leafEmpty:       color.New(color.FgBlue),
	leafPartial:     color.New(color.FgYellow),
	leafFull:        color.New(color.FgGreen),
}

const dumpRule = "========================================="

// Dump writes the leaf occupancy of t to w, one line per leaf of the
// directory, for debugging purposes. Leaves are coloured by occupancy unless
// colour output is disabled (see color.NoColor).
//
// The output format is not stable.
func (t *Tree[T]) Dump(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", dumpRule)
	fmt.Fprintf(w, "Total size: %d Total capacity: %d Leaf capacity: %d\n",
		t.Len(), t.Capacity(), t.LeafCapacity())
	if t != nil {
		for _, leaf := range t.leaves {
			occ := t.occupancyOf(leaf)
			c := dumpPalette[occ]
			if occ == leafUnallocated || occ == leafEmpty {
				c.Fprintf(w, "Leaf size/cap: 0/%d | ...empty...\n", cap(leaf))
				continue
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Leaf size/cap: %d/%d | ", len(leaf), cap(leaf))
			for j := range t.leafCap {
				if j < len(leaf) {
					fmt.Fprintf(&b, "%v | ", leaf[j])
				} else {
					b.WriteString("  | ")
				}
			}
			c.Fprintln(w, b.String())
		}
	}
	fmt.Fprintf(w, "%s\n\n", dumpRule)
}
