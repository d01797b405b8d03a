package btree

import "fmt"

/*
OrderedValues flattens the tree into a slice where the element at position k
is the string form of the value stored under key k.

Placement is positional rather than an in-order walk: it relies on the caller
assigning keys densely from 0, which the column store does. Keys missing from
a sparse tree show up as empty strings.
*/
func (t *Btree) OrderedValues() []string {
	out := make([]string, 0, t.size)
	t.ForEach(func(n *Node) {
		for i := 0; i < n.numItems; i++ {
			it := n.items[i]
			if it.key >= len(out) {
				out = append(out, make([]string, it.key+1-len(out))...)
			}
			out[it.key] = fmt.Sprint(it.val)
		}
	})
	return out
}
