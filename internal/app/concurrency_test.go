package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelPartialLimit_CollectsAllOutcomes(t *testing.T) {
	errOdd := errors.New("odd")

	fns := make([]func(context.Context) (int, error), 0, 6)
	for i := range 6 {
		fns = append(fns, func(context.Context) (int, error) {
			if i%2 == 1 {
				return 0, errOdd
			}
			return i * 10, nil
		})
	}

	results := ParallelPartialLimit(context.Background(), 2, fns...)

	require.Len(t, results, 6)
	for i, r := range results {
		if i%2 == 1 {
			assert.ErrorIs(t, r.Err, errOdd)
			continue
		}
		assert.NoError(t, r.Err)
		assert.Equal(t, i*10, r.Value)
	}
}

func TestParallelPartialLimit_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	fns := make([]func(context.Context) (struct{}, error), 8)
	for i := range fns {
		fns[i] = func(context.Context) (struct{}, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return struct{}{}, nil
		}
	}

	ParallelPartialLimit(context.Background(), 3, fns...)

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestParallelPartialLimit_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	results := ParallelPartialLimit(ctx, 1, func(context.Context) (int, error) {
		called = true
		return 1, nil
	})

	assert.False(t, called)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
