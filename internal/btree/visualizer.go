package btree

import (
	"fmt"
	"strconv"
	"strings"
)

// Visualizer prints a tree level by level, each node as its bracketed keys:
//
//	0: [3]
//	1: [0 1 2] [4 5]
type Visualizer struct {
	Tree *Btree
}

func (v *Visualizer) Visualize() string {
	var sb strings.Builder
	level := []*Node{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*Node
		fmt.Fprintf(&sb, "%d:", depth)
		for _, n := range level {
			sb.WriteString(" [")
			for i := 0; i < n.numItems; i++ {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.Itoa(n.items[i].key))
			}
			sb.WriteByte(']')
			next = append(next, n.children[:n.numChildren]...)
		}
		sb.WriteByte('\n')
		level = next
	}
	return sb.String()
}
