package simulate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/niuniu/niuniu"
)

func TestRun(t *testing.T) {
	opts := Options{Iterations: 5000, Workers: 4, Seed: 42}

	stats, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, opts.Iterations, stats.Iterations)

	total := stats.NoNiu
	for score := 1; score <= niuniu.MaxScore; score++ {
		total += stats.ByScore[score]
	}
	assert.Equal(t, opts.Iterations, total, "every deal lands in exactly one bucket")
	assert.Zero(t, stats.ByScore[0])
	assert.LessOrEqual(t, stats.Doubles, opts.Iterations-stats.NoNiu)
	assert.Greater(t, stats.NoNiu, 0)
	assert.Greater(t, stats.ByScore[niuniu.MaxScore], 0)
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Iterations: 2000, Workers: 3, Seed: 7}

	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	opts.Seed = 8
	c, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRunMoreWorkersThanIterations(t *testing.T) {
	stats, err := Run(context.Background(), Options{Iterations: 3, Workers: 16, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Iterations)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), Options{Iterations: 0})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, Options{Iterations: 100, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatsPercent(t *testing.T) {
	var s Stats
	assert.Zero(t, s.Percent(1))

	s.Record(niuniu.Result{})
	s.Record(niuniu.EvaluateHand(niuniu.MustHand(5, 5, 10, 10, 10)))
	assert.Equal(t, 2, s.Iterations)
	assert.Equal(t, 1, s.NoNiu)
	assert.Equal(t, 1, s.ByScore[10])
	assert.Equal(t, 1, s.Doubles)
	assert.InDelta(t, 50.0, s.Percent(s.NoNiu), 0.001)
}
