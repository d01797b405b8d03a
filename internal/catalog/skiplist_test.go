package catalog

import (
	"sort"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys[V any](sl *SkipList[V]) []string {
	var out []string
	sl.Ascend(func(key string, _ V) bool {
		out = append(out, key)
		return true
	})
	return out
}

func TestSkipListGetMissing(t *testing.T) {
	sl := New[int]()

	v, ok := sl.Get("nope")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 0, sl.Len())
}

func TestSkipListInsertAndGet(t *testing.T) {
	sl := New[int]()
	assert.True(t, sl.Insert("b", 2))
	assert.True(t, sl.Insert("a", 1))
	assert.True(t, sl.Insert("c", 3))

	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := sl.Get(k)
		require.True(t, ok, k)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 3, sl.Len())
}

func TestSkipListInsertReplaces(t *testing.T) {
	sl := New[string]()
	require.True(t, sl.Insert("users", "v1"))

	assert.False(t, sl.Insert("users", "v2"))
	got, _ := sl.Get("users")
	assert.Equal(t, "v2", got)
	assert.Equal(t, 1, sl.Len())
}

func TestSkipListAscendIsSorted(t *testing.T) {
	sl := New[struct{}]()
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		k := faker.Word() + faker.Word()
		sl.Insert(k, struct{}{})
		seen[k] = true
	}

	want := make([]string, 0, len(seen))
	for k := range seen {
		want = append(want, k)
	}
	sort.Strings(want)

	assert.Equal(t, want, keys(sl))
	assert.Equal(t, len(want), sl.Len())
}

func TestSkipListAscendStops(t *testing.T) {
	sl := New[int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		sl.Insert(k, i)
	}

	var visited []string
	sl.Ascend(func(key string, _ int) bool {
		visited = append(visited, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, visited)
}
