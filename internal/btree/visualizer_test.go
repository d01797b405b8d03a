package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizeEmptyTree(t *testing.T) {
	v := &Visualizer{Tree: New(2)}

	assert.Equal(t, "0: []\n", v.Visualize())
}

func TestVisualizeLevels(t *testing.T) {
	tree := New(2)
	for k := 0; k < 5; k++ {
		require.NoError(t, tree.Insert(k, k))
	}
	v := &Visualizer{Tree: tree}

	assert.Equal(t, "0: [1]\n1: [0] [2 3 4]\n", v.Visualize())
}
