package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/algorithms/containers"
)

func TestOrderedMap(t *testing.T) {
	t.Parallel()

	m := containers.NewOrderedMap[string, int]()
	m.Set("cherry", 3)
	m.Set("apple", 1)
	m.Set("banana", 2)
	m.Set("date", 4)

	assert.Equal(t, []string{"apple", "banana", "cherry", "date"}, m.Keys())

	v, ok := m.Get("banana")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	m.Set("banana", 20)
	v, _ = m.Get("banana")
	assert.Equal(t, 20, v)
	assert.Equal(t, 4, m.Len(), "overwrite does not add a key")

	assert.True(t, m.Delete("apple"))
	assert.False(t, m.Delete("apple"))
	_, ok = m.Get("apple")
	assert.False(t, ok)
	assert.Equal(t, []string{"banana", "cherry", "date"}, m.Keys())
}

func TestOrderedMapRange(t *testing.T) {
	t.Parallel()

	m := containers.NewOrderedMap[int, string]()
	for _, k := range []int{5, 1, 3} {
		m.Set(k, string(rune('a'+k)))
	}

	var visited []int
	m.Range(func(k int, v string) bool {
		visited = append(visited, k)
		return k < 3
	})
	assert.Equal(t, []int{1, 3}, visited, "stops once f returns false")
}
