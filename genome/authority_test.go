package genome

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorityNodeNumbers(t *testing.T) {
	authority := NewAuthority(7, 12)

	assert.Equal(t, 7, authority.NextNodeNumber())
	assert.Equal(t, 8, authority.NextNodeNumber())
	assert.Equal(t, 9, authority.NextNodeNumber())
}

func TestAuthorityInnovationDeduplication(t *testing.T) {
	authority := NewAuthority(7, 12)

	first := authority.NextInnovationNumber(0, 5)
	assert.Equal(t, 12, first)
	assert.Equal(t, first, authority.NextInnovationNumber(0, 5),
		"identical proposals in one generation share a number")

	other := authority.NextInnovationNumber(1, 5)
	assert.Equal(t, 13, other)

	// Direction matters: (5, 0) is a different structural mutation.
	assert.Equal(t, 14, authority.NextInnovationNumber(5, 0))
}

func TestAuthorityNextGeneration(t *testing.T) {
	authority := NewAuthority(0, 0)

	first := authority.NextInnovationNumber(2, 3)
	authority.NextGeneration()
	second := authority.NextInnovationNumber(2, 3)

	assert.NotEqual(t, first, second,
		"the same structure in a later generation gets a fresh number")
	assert.Greater(t, second, first)
}

func TestAuthorityConcurrentAllocation(t *testing.T) {
	authority := NewAuthority(0, 0)

	const workers = 16
	const perWorker = 100
	var wg sync.WaitGroup
	results := make([][]int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results[w] = append(results[w], authority.NextNodeNumber())
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, numbers := range results {
		for _, n := range numbers {
			require.False(t, seen[n], "node number %d issued twice", n)
			seen[n] = true
		}
	}
	assert.Len(t, seen, workers*perWorker)
}
