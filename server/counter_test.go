package server

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_Next(t *testing.T) {
	t.Parallel()
	const workers, perWorker = 16, 250
	var c Counter
	results := make([][]uint64, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				results[i] = append(results[i], c.Next())
			}
		}()
	}
	wg.Wait()

	all := slices.Concat(results...)
	slices.Sort(all)
	want := make([]uint64, workers*perWorker)
	for i := range want {
		want[i] = uint64(i + 1)
	}
	assert.Equal(t, want, all)
	assert.Equal(t, uint64(workers*perWorker), c.Load())
}
