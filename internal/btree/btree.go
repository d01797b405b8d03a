// Package btree implements the in-memory ordered index that backs every
// column: a B-tree of minimum degree t keyed by non-negative integers.
//
// Nodes are split on the way down (preemptive splitting), so an insert
// never has to walk back up the tree. Nothing is ever deleted and the
// tree is not safe for concurrent use.
package btree

const minDegree = 2

// capacities of a node for a given minimum degree
func maxChildren(degree int) int { return 2 * degree }
func maxItems(degree int) int    { return maxChildren(degree) - 1 }
func minItems(degree int) int    { return degree - 1 }
