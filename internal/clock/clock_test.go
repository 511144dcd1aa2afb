package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/vaultkeeper/internal/clock"
)

func TestRealNowUsesUTC(t *testing.T) {
	now := clock.Real{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestRealAfterDeliversOnce(t *testing.T) {
	ch := clock.Real{}.After(10 * time.Millisecond)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("After did not trigger within timeout")
	}
}

func TestRecorder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := clock.NewRecorder(start)

	fired := <-rec.After(time.Second)
	assert.Equal(t, start.Add(time.Second), fired)

	<-rec.After(2 * time.Second)
	assert.Equal(t, start.Add(3*time.Second), rec.Now())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, rec.Delays())
}

func TestRecorderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := clock.NewRecorder(start)

	rec.Advance(time.Minute)

	assert.Equal(t, start.Add(time.Minute), rec.Now())
	assert.Empty(t, rec.Delays())
}
