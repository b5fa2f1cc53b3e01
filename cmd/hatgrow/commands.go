package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/hat"
	"github.com/urfave/cli/v2"
)

var cmdTable = &cli.Command{
	Name:   "table",
	Usage:  "print a row whenever appending changes the capacity",
	Flags:  []cli.Flag{countFlag, reserveFlag},
	Action: runTable,
}

var cmdDump = &cli.Command{
	Name:   "dump",
	Usage:  "print the leaf occupancy of a tree",
	Flags:  []cli.Flag{countFlag, reserveFlag},
	Action: runDump,
}

var cmdDot = &cli.Command{
	Name:   "dot",
	Usage:  "print the layout of a tree in Graphviz DOT format",
	Flags:  []cli.Flag{countFlag, reserveFlag},
	Action: runDot,
}

var cmdStats = &cli.Command{
	Name:   "stats",
	Usage:  "print growth counters after appending",
	Flags:  []cli.Flag{countFlag, reserveFlag},
	Action: runStats,
}

var errNegative = errors.New("hatgrow: count and reserve must not be negative")

// newTree creates a tree as configured by the command flags, without
// appending elements.
func newTree(c *cli.Context) (*hat.Tree[int], int, error) {
	n, r := c.Int("count"), c.Int("reserve")
	if n < 0 || r < 0 {
		return nil, 0, fmt.Errorf("%w: count=%d, reserve=%d", errNegative, n, r)
	}
	return hat.WithCapacity[int](r), n, nil
}

func buildTree(c *cli.Context) (*hat.Tree[int], error) {
	tree, n, err := newTree(c)
	if err != nil {
		return nil, err
	}
	for i := range n {
		tree.Append(i)
	}
	return tree, nil
}

func runTable(c *cli.Context) error {
	tree, n, err := newTree(c)
	if err != nil {
		return err
	}
	w := c.App.Writer
	barWidth := max(terminalWidth(w)-48, 8)
	fmt.Fprintf(w, "%8s %8s %8s %8s %6s\n", "i", "size", "capacity", "max", "L")
	capacity := tree.Capacity()
	for i := range n {
		tree.Append(i)
		if tree.Capacity() == capacity {
			continue
		}
		capacity = tree.Capacity()
		fmt.Fprintf(w, "%8d %8d %8d %8d %6d  %s\n", i, tree.Len(), capacity,
			tree.MaxCapacity(), tree.LeafCapacity(), fillBar(tree, barWidth))
	}
	return nil
}

// fillBar renders size and capacity of tree relative to its maximum capacity.
func fillBar(tree *hat.Tree[int], width int) string {
	maxCap := tree.MaxCapacity()
	if maxCap == 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}
	used := tree.Len() * width / maxCap
	reserved := tree.Capacity()*width/maxCap - used
	return "[" + strings.Repeat("#", used) + strings.Repeat(".", reserved) +
		strings.Repeat(" ", width-used-reserved) + "]"
}

func runDump(c *cli.Context) error {
	tree, err := buildTree(c)
	if err != nil {
		return err
	}
	tree.Dump(c.App.Writer)
	return nil
}

func runDot(c *cli.Context) error {
	tree, err := buildTree(c)
	if err != nil {
		return err
	}
	hat.Tree2Dot(tree, c.App.Writer)
	return nil
}

func runStats(c *cli.Context) error {
	tree, err := buildTree(c)
	if err != nil {
		return err
	}
	st := tree.Stats()
	w := c.App.Writer
	fmt.Fprintf(w, "elements:          %d\n", tree.Len())
	fmt.Fprintf(w, "capacity:          %d of %d (L=%d)\n", tree.Capacity(), tree.MaxCapacity(), tree.LeafCapacity())
	fmt.Fprintf(w, "reorganizations:   %d\n", st.Reorganizations)
	fmt.Fprintf(w, "leaf allocations:  %d\n", st.LeafAllocations)
	fmt.Fprintf(w, "moves:             %d\n", st.Moves)
	if tree.Len() > 0 {
		fmt.Fprintf(w, "moves per element: %.3f\n", float64(st.Moves)/float64(tree.Len()))
	}
	return nil
}
