// Package column implements the column store: a database of named tables,
// each table a list of columns backed by one B-tree per column, all keyed
// by the row's primary key.
package column

import (
	"fmt"
	"unicode/utf8"

	"coldb/internal/btree"
)

// Column stores the cells of one table column under their primary keys.
// size is the maximum width, in characters, of a cell.
type Column struct {
	name string
	size int
	tree *btree.Btree
}

func newColumn(name string, size, blockSize int) *Column {
	return &Column{
		name: name,
		size: size,
		tree: btree.New(blockSize),
	}
}

func (c *Column) Name() string { return c.name }

func (c *Column) Size() int { return c.size }

func (c *Column) Tree() *btree.Btree { return c.tree }

// Values returns the cells as strings, indexed by primary key.
func (c *Column) Values() []string { return c.tree.OrderedValues() }

func (c *Column) fits(v any) bool {
	return utf8.RuneCountInString(fmt.Sprint(v)) <= c.size
}
