package btree

import "fmt"

/*
Node is a fixed-capacity storage unit of the tree.
items has room for 2t-1 data items and children for 2t child pointers. Only
the first numItems / numChildren slots are populated, the rest stay nil.
An internal node always has numItems+1 children, a leaf has none.
*/
type Node struct {
	leaf        bool
	items       []*item
	children    []*Node
	numItems    int
	numChildren int
}

// newNode returns an empty leaf sized for the given minimum degree.
func newNode(degree int) *Node {
	return &Node{
		leaf:     true,
		items:    make([]*item, maxItems(degree)),
		children: make([]*Node, maxChildren(degree)),
	}
}

func (n *Node) IsLeaf() bool { return n.leaf }

// Len returns the number of items held by the node.
func (n *Node) Len() int { return n.numItems }

func (n *Node) NumChildren() int { return n.numChildren }

func (n *Node) Key(i int) int { return n.items[i].key }

func (n *Node) Value(i int) any { return n.items[i].val }

func (n *Node) Child(i int) *Node { return n.children[i] }

func (n *Node) isFull() bool {
	return n.numItems == len(n.items)
}

/*
If data item with key k is found in node n, return its index i.
Else, return the index j where the key would have resided if it was present in the node.
This is also the position of the child pointer to follow.
*/
func (n *Node) search(key int) (int, bool) {
	low, high := 0, n.numItems
	for low < high {
		mid := (low + high) / 2
		switch k := n.items[mid].key; {
		case key > k:
			low = mid + 1
		case key < k:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

// helper method to insert data item at an arbitrary position of a node
func (n *Node) insertItemAt(pos int, it *item) {
	if n.isFull() {
		panic(fmt.Sprintf("btree: insert item into full node (%d items)", n.numItems))
	}
	if pos < n.numItems {
		copy(n.items[pos+1:n.numItems+1], n.items[pos:n.numItems])
	}
	n.items[pos] = it
	n.numItems++
}

// helper method to insert child pointer at an arbitrary position of a node
func (n *Node) insertChildAt(pos int, child *Node) {
	if n.numChildren == len(n.children) {
		panic(fmt.Sprintf("btree: insert child into full node (%d children)", n.numChildren))
	}
	if pos < n.numChildren {
		copy(n.children[pos+1:n.numChildren+1], n.children[pos:n.numChildren])
	}
	n.children[pos] = child
	n.numChildren++
	n.leaf = false
}

/*
split halves a full node. The upper t-1 items and, for internal nodes, the
upper t children move into a new sibling. The median item is cleared from
n and returned so the caller can promote it.
*/
func (n *Node) split(degree int) (*item, *Node) {
	mid := minItems(degree)
	midItem := n.items[mid]

	sibling := newNode(degree)
	sibling.leaf = n.leaf
	copy(sibling.items, n.items[mid+1:])
	sibling.numItems = minItems(degree)

	if !n.leaf {
		copy(sibling.children, n.children[mid+1:])
		sibling.numChildren = degree
		for i := mid + 1; i < len(n.children); i++ {
			n.children[i] = nil
		}
		n.numChildren = degree
	}

	for i := mid; i < len(n.items); i++ {
		n.items[i] = nil
	}
	n.numItems = minItems(degree)

	return midItem, sibling
}

// splitChild splits the full child at index and links the median and the new
// sibling into n. n itself must not be full.
func (n *Node) splitChild(index, degree int) {
	if n.isFull() {
		panic("btree: split child of a full node")
	}
	child := n.children[index]
	if child == nil || !child.isFull() {
		panic(fmt.Sprintf("btree: split of non-full child at index %d", index))
	}

	midItem, sibling := child.split(degree)
	n.insertChildAt(index+1, sibling)
	n.insertItemAt(index, midItem)
}

/*
insertNonFull places it in the subtree rooted at n, which must have room.
A full child is split before we descend into it, so every node we reach on
the way down has room for a promoted median.
*/
func (n *Node) insertNonFull(it *item, degree int) {
	if n.isFull() {
		panic("btree: insertNonFull on a full node")
	}

	i := n.numItems
	if n.leaf {
		// shift items right to make room
		for i >= 1 && it.key < n.items[i-1].key {
			n.items[i] = n.items[i-1]
			i--
		}
		n.items[i] = it
		n.numItems++
		return
	}

	for i >= 1 && it.key < n.items[i-1].key {
		i--
	}

	if n.children[i].isFull() {
		n.splitChild(i, degree)
		// the promoted median may now sit to the left of our key
		if it.key > n.items[i].key {
			i++
		}
	}
	n.children[i].insertNonFull(it, degree)
}
