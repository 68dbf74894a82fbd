package beam

import (
	"sync"
	"testing"

	"github.com/alexiusacademia/goframe/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	var c Counter
	n1 := node.New(0, 0, [3]int{0, 1, 2})
	n2 := node.New(3, 0, [3]int{3, 4, 5})
	n3 := node.New(3, 4, [3]int{6, 7, 8})

	e1, err := c.New(n1, n2)
	require.NoError(t, err)
	e2, err := c.New(n2, n3)
	require.NoError(t, err)

	assert.Equal(t, 1, e1.ID())
	assert.Equal(t, 2, e2.ID())
	assert.Equal(t, 2, c.Count())

	// failed constructions are not counted
	_, err = c.New(n1, n1)
	require.Error(t, err)
	assert.Equal(t, 2, c.Count())

	c.Clear()
	assert.Equal(t, 0, c.Count())

	e3, err := c.New(n1, n3)
	require.NoError(t, err)
	assert.Equal(t, 1, e3.ID())
}

func TestCounterConcurrent(t *testing.T) {
	var c Counter
	n1 := node.New(0, 0, [3]int{0, 1, 2})
	n2 := node.New(1, 0, [3]int{3, 4, 5})

	const workers = 16
	ids := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := c.New(n1, n2)
			if err == nil {
				ids[i] = e.ID()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, c.Count())
	seen := make(map[int]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}
