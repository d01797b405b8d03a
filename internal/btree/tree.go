package btree

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNegativeKey  = errors.New("negative key")
)

/*
Btree keeps the minimum degree and a pointer to the root node.
A tree is made up of nodes. Each node contains data items.
*/
type Btree struct {
	degree int
	root   *Node
	size   int
}

// New creates an empty tree of the given minimum degree. It panics if degree
// is below 2, since a node could then never be split.
func New(degree int) *Btree {
	if degree < minDegree {
		panic("bad degree")
	}
	return &Btree{
		degree: degree,
		root:   newNode(degree),
	}
}

func (t *Btree) Degree() int { return t.degree }

// Len returns the number of items stored in the tree.
func (t *Btree) Len() int { return t.size }

func (t *Btree) Root() *Node { return t.root }

// Height returns the number of levels, 1 for a tree whose root is a leaf.
func (t *Btree) Height() int {
	h := 1
	for n := t.root; !n.leaf; n = n.children[0] {
		h++
	}
	return h
}

func (t *Btree) String() string {
	return fmt.Sprintf("btree(degree=%d, size=%d, height=%d)", t.degree, t.size, t.Height())
}

// Find searches the entire tree for key.
func (t *Btree) Find(key int) (any, error) {
	for next := t.root; next != nil; {
		pos, found := next.search(key)
		if found {
			return next.items[pos].val, nil
		}
		next = next.children[pos]
	}
	return nil, errors.Wrapf(ErrKeyNotFound, "key %d", key)
}

/*
Create a new root node.
The existing root becomes the new root's only child and is then split, which
promotes its median into the new root. This is the only way the tree grows
in height.
*/
func (t *Btree) splitRoot() {
	newRoot := newNode(t.degree)
	newRoot.insertChildAt(0, t.root)
	t.root = newRoot
	newRoot.splitChild(0, t.degree)
}

// Insert adds key with its value. Keys must be non-negative and unique: a
// duplicate is rejected with ErrDuplicateKey and the tree is left unchanged.
func (t *Btree) Insert(key int, val any) error {
	if key < 0 {
		return errors.Wrapf(ErrNegativeKey, "key %d", key)
	}
	if _, err := t.Find(key); err == nil {
		return errors.Wrapf(ErrDuplicateKey, "key %d", key)
	}

	// The tree root is full, so perform a split on the root.
	if t.root.isFull() {
		t.splitRoot()
	}

	t.root.insertNonFull(&item{key: key, val: val}, t.degree)
	t.size++
	return nil
}

// ForEach calls fn for every node, a parent before its children, and returns
// the tree.
func (t *Btree) ForEach(fn func(n *Node)) *Btree {
	var walk func(n *Node)
	walk = func(n *Node) {
		fn(n)
		for i := 0; i < n.numChildren; i++ {
			walk(n.children[i])
		}
	}
	walk(t.root)
	return t
}
