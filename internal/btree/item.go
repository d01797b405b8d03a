package btree

/*
data item in a node.
key uniquely identifies a data item and is used for sorting them.
val holds the cell value, a string or a number.
*/
type item struct {
	key int
	val any
}
