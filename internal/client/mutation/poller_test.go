package mutation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/clock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPollConfig_Delays(t *testing.T) {
	cfg := PollConfig{BaseDelay: 1000 * time.Millisecond, MaxAttempts: 5}

	delays := cfg.Delays()

	assert.Equal(t, []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
	}, delays)
	for i := 1; i < len(delays); i++ {
		assert.Greater(t, delays[i], delays[i-1])
	}
	assert.Equal(t, 31*time.Second, cfg.Budget())
}

func TestPollConfig_LongSchedule(t *testing.T) {
	cfg := PollConfig{BaseDelay: time.Millisecond, MaxAttempts: maxAttempts}
	require.NoError(t, cfg.Validate())

	delays := cfg.Delays()

	require.Len(t, delays, maxAttempts)
	for i, d := range delays {
		assert.Equal(t, time.Millisecond<<uint(i), d)
		if i > 0 {
			assert.Greater(t, d, delays[i-1])
		}
	}
	assert.Positive(t, cfg.Budget())
}

func TestPollConfig_Validate(t *testing.T) {
	edge := time.Duration(math.MaxInt64 >> 5)

	tests := []struct {
		name    string
		cfg     PollConfig
		wantErr bool
	}{
		{name: "default", cfg: DefaultPollConfig()},
		{name: "zero delay", cfg: PollConfig{MaxAttempts: 3}, wantErr: true},
		{name: "zero attempts", cfg: PollConfig{BaseDelay: time.Second}, wantErr: true},
		{name: "too many attempts", cfg: PollConfig{BaseDelay: time.Second, MaxAttempts: maxAttempts + 1}, wantErr: true},
		{name: "schedule overflows", cfg: PollConfig{BaseDelay: 20 * time.Second, MaxAttempts: maxAttempts}, wantErr: true},
		{name: "largest base", cfg: PollConfig{BaseDelay: edge, MaxAttempts: 5}},
		{name: "base past edge", cfg: PollConfig{BaseDelay: edge + 1, MaxAttempts: 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			delays := tt.cfg.Delays()
			for i := 1; i < len(delays); i++ {
				assert.Greater(t, delays[i], delays[i-1])
			}
			assert.Positive(t, tt.cfg.Budget())
		})
	}
}

func TestNewPoller_InvalidConfigFallsBack(t *testing.T) {
	p := NewPoller[int](PollConfig{BaseDelay: 20 * time.Second, MaxAttempts: maxAttempts}, nil, discardLogger())

	assert.Equal(t, DefaultPollConfig(), p.Config())
}

func TestPoller_ConvergesOnFirstAttempt(t *testing.T) {
	rec := clock.NewRecorder(time.Unix(0, 0))
	p := NewPoller[int](PollConfig{BaseDelay: time.Second, MaxAttempts: 5}, rec, discardLogger())

	reads := 0
	result, err := p.Poll(context.Background(),
		func(ctx context.Context) (int, error) {
			reads++
			return 42, nil
		},
		func(v int) bool { return v == 42 },
		nil)

	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, 1, reads)
	assert.Equal(t, []time.Duration{time.Second}, rec.Delays())
}

func TestPoller_ExhaustsBudget(t *testing.T) {
	rec := clock.NewRecorder(time.Unix(0, 0))
	p := NewPoller[int](PollConfig{BaseDelay: 1000 * time.Millisecond, MaxAttempts: 3}, rec, discardLogger())

	var refreshed []int
	n := 0
	result, err := p.Poll(context.Background(),
		func(ctx context.Context) (int, error) {
			n++
			return n, nil
		},
		func(int) bool { return false },
		func(v int) { refreshed = append(refreshed, v) })

	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, 7*time.Second, result.Waited)
	assert.Equal(t, 3, result.Last)
	assert.Equal(t, []int{1, 2, 3}, refreshed)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, rec.Delays())
}

func TestPoller_ReadErrorIsInconclusive(t *testing.T) {
	rec := clock.NewRecorder(time.Unix(0, 0))
	p := NewPoller[int](PollConfig{BaseDelay: time.Millisecond, MaxAttempts: 4}, rec, discardLogger())

	calls := 0
	var refreshed []int
	result, err := p.Poll(context.Background(),
		func(ctx context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("connection reset")
			}
			return 10, nil
		},
		func(v int) bool { return v == 10 },
		func(v int) { refreshed = append(refreshed, v) })

	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, []int{10}, refreshed)
}

func TestPoller_AllReadsFail(t *testing.T) {
	rec := clock.NewRecorder(time.Unix(0, 0))
	p := NewPoller[int](PollConfig{BaseDelay: time.Millisecond, MaxAttempts: 2}, rec, discardLogger())

	result, err := p.Poll(context.Background(),
		func(ctx context.Context) (int, error) { return 0, errors.New("boom") },
		func(int) bool { return true },
		nil)

	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.False(t, result.HaveLast)
	assert.Equal(t, 2, result.Attempts)
}

func TestPoller_Cancelled(t *testing.T) {
	rec := clock.NewRecorder(time.Unix(0, 0))
	p := NewPoller[int](PollConfig{BaseDelay: time.Second, MaxAttempts: 5}, rec, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	reads := 0
	_, err := p.Poll(ctx,
		func(ctx context.Context) (int, error) {
			reads++
			cancel()
			return 0, nil
		},
		func(int) bool { return false },
		nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, reads)
}

func TestPoller_RealClockCancel(t *testing.T) {
	p := NewPoller[int](PollConfig{BaseDelay: time.Hour, MaxAttempts: 1}, nil, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Poll(ctx,
		func(ctx context.Context) (int, error) { return 0, nil },
		func(int) bool { return true },
		nil)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}
