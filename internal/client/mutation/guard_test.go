package mutation

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_AcquireRelease(t *testing.T) {
	g := NewGuard()

	release, err := g.Acquire("v1")
	require.NoError(t, err)
	assert.True(t, g.Busy("v1"))

	_, err = g.Acquire("v1")
	require.ErrorIs(t, err, ErrEntityBusy)

	release()
	assert.False(t, g.Busy("v1"))

	release2, err := g.Acquire("v1")
	require.NoError(t, err)
	defer release2()
}

func TestGuard_StaleReleaseIgnored(t *testing.T) {
	g := NewGuard()

	release1, err := g.Acquire("v1")
	require.NoError(t, err)
	release1()

	release2, err := g.Acquire("v1")
	require.NoError(t, err)

	// Повторный вызов старого release не снимает новый захват
	release1()
	assert.True(t, g.Busy("v1"))

	release2()
	assert.False(t, g.Busy("v1"))
}

func TestGuard_EmptyEntityNeverBlocks(t *testing.T) {
	g := NewGuard()

	r1, err := g.Acquire("")
	require.NoError(t, err)
	r2, err := g.Acquire("")
	require.NoError(t, err)
	r1()
	r2()
	assert.False(t, g.Busy(""))
}

func TestGuard_Concurrent(t *testing.T) {
	g := NewGuard()

	const workers = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		acquired int
		busy     int
		releases []func()
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := g.Acquire("v1")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if errors.Is(err, ErrEntityBusy) {
					busy++
				}
				return
			}
			acquired++
			releases = append(releases, release)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, acquired)
	assert.Equal(t, workers-1, busy)
	for _, r := range releases {
		r()
	}
}
