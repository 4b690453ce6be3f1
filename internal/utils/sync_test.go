package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalRWMutexGuardsWhenEnabled(t *testing.T) {
	mutex := &OptionalRWMutex{UseMutex: true}
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mutex.Lock()
				counter++
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()

	mutex.RLock()
	defer mutex.RUnlock()
	require.Equal(t, 1600, counter)
}

func TestOptionalRWMutexDisabledIsReentrant(t *testing.T) {
	mutex := &OptionalRWMutex{}

	mutex.Lock()
	mutex.Lock()
	mutex.Unlock()
	mutex.Unlock()

	require.True(t, mutex.Mutex.TryLock())
	mutex.Mutex.Unlock()
}
