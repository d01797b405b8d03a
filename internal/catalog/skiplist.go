// Package catalog keeps the tables of a database ordered by name.
package catalog

import (
	"math"
	"math/rand"
	"strings"
)

const (
	MaxHeight = 16
	p         = 0.5
)

var probabilities [MaxHeight]uint32

type node[V any] struct {
	key   string
	val   V
	tower [MaxHeight]*node[V]
}

// SkipList is an ordered map from name to V. The zero value is not usable,
// create one with New.
type SkipList[V any] struct {
	head   *node[V] // starting head node
	height int      // current height
	size   int
}

func init() {
	probability := 1.0

	for level := 0; level < MaxHeight; level++ {
		probabilities[level] = uint32(probability * float64(math.MaxUint32))
		probability *= p
	}
}

func randomHeight() int {
	seed := rand.Uint32()

	height := 1
	for height < MaxHeight && seed <= probabilities[height] {
		height++
	}

	return height
}

func New[V any]() *SkipList[V] {
	return &SkipList[V]{
		head:   &node[V]{},
		height: 1,
	}
}

func (sl *SkipList[V]) search(key string) (*node[V], [MaxHeight]*node[V]) {
	var next *node[V]
	var journey [MaxHeight]*node[V]

	prev := sl.head
	// top to bottom level
	for level := sl.height - 1; level >= 0; level-- {
		for next = prev.tower[level]; next != nil; next = prev.tower[level] {
			// key <= next.key
			if strings.Compare(key, next.key) <= 0 {
				break
			}
			// key > next.key
			prev = next
		}
		journey[level] = prev
	}

	if next != nil && key == next.key {
		return next, journey
	}
	return nil, journey
}

func (sl *SkipList[V]) Get(key string) (V, bool) {
	n, _ := sl.search(key)

	if n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Insert stores val under key. It returns false and replaces the value when
// key was already present.
func (sl *SkipList[V]) Insert(key string, val V) bool {
	n, journey := sl.search(key)

	// update value of existing key
	if n != nil {
		n.val = val
		return false
	}

	height := randomHeight()
	newNode := &node[V]{
		key: key,
		val: val,
	}

	// bottom to top level
	for level := 0; level < height; level++ {
		prev := journey[level]
		if prev == nil {
			// prev is nil if we extend the height of the list,
			// journey has no entry for that level.
			prev = sl.head
		}
		newNode.tower[level] = prev.tower[level]
		prev.tower[level] = newNode
	}

	// update current height of skiplist
	if height > sl.height {
		sl.height = height
	}
	sl.size++
	return true
}

func (sl *SkipList[V]) Len() int { return sl.size }

// Ascend calls fn for every entry in ascending key order until fn returns false.
func (sl *SkipList[V]) Ascend(fn func(key string, val V) bool) {
	for n := sl.head.tower[0]; n != nil; n = n.tower[0] {
		if !fn(n.key, n.val) {
			return
		}
	}
}
