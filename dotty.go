package hat

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). The directory is drawn as a record with one
// field per slot, pointing to the allocated leaves.
func Tree2Dot[T any](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	fields := make([]string, 0, t.LeafCapacity())
	if t != nil {
		for i, leaf := range t.leaves {
			fields = append(fields, fmt.Sprintf("<d%d> %d", i, i))
			if cap(leaf) == 0 {
				continue
			}
			label := fmt.Sprintf("%d/%d", len(leaf), cap(leaf))
			if len(leaf) > 0 {
				label += fmt.Sprintf("\\n%v … %v", leaf[0], leaf[len(leaf)-1])
			}
			nodelist += fmt.Sprintf("\t\"leaf%d\" [label=\"%s\" %s];\n", i, label,
				leafDotStyles(t.occupancyOf(leaf)))
			edgelist += fmt.Sprintf("\t\"dir\":d%d -> \"leaf%d\";\n", i, i)
		}
	}
	if len(fields) == 0 {
		fields = append(fields, "∅")
	}
	fmt.Fprintf(w, "\t\"dir\" [label=\"%s\",shape=record,style=filled,fillcolor=\"%s\"];\n",
		strings.Join(fields, "|"), hexcolors[0])
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func leafDotStyles(occ occupancy) string {
	return fmt.Sprintf(",shape=box,style=filled,fillcolor=\"%s\"", hexcolors[occ])
}

// fill colours by occupancy
var hexcolors = [...]string{
	leafUnallocated: "white",
	leafEmpty:       "#CCDDFF",
	leafPartial:     "#FFCCAA",
	leafFull:        "#a3d7e4",
}
