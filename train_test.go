package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainXOR(t *testing.T) {
	if testing.Short() {
		t.Skip("trains 20 networks")
	}
	// convergence depends on the initial weights, so check most seeds get there
	const runs = 20
	converged := 0
	for seed := int64(1); seed <= runs; seed++ {
		n, err := NewNetwork(Options{Hidden: []int{4}, Seed: seed})
		require.NoError(t, err)
		res := n.Train(xorData, TrainOptions{})
		if res.Error >= 0.05 {
			t.Logf("seed %d: error %g after %d epochs", seed, res.Error, res.Iterations)
			continue
		}
		converged++
		for _, ex := range xorData {
			got := n.Run(ex.Input).Seq
			assert.InDelta(t, ex.Output["0"], got[0], 0.2, "seed %d: %v", seed, ex.Input)
		}
	}
	assert.GreaterOrEqual(t, converged, runs*9/10)
}

func TestTrainStops(t *testing.T) {
	n, err := NewNetwork(Options{Seed: 2})
	require.NoError(t, err)

	res := n.Train(xorData, TrainOptions{Iterations: 7})
	assert.Equal(t, 7, res.Iterations)
	assert.Greater(t, res.Error, float32(0))

	// a threshold above any error stops after one epoch
	res = n.Train(xorData, TrainOptions{Iterations: 100, ErrorThreshold: 0.99})
	assert.Equal(t, 1, res.Iterations)
	assert.LessOrEqual(t, res.Error, float32(0.99))
}

func TestTrainProgress(t *testing.T) {
	n, err := NewNetwork(Options{Seed: 2})
	require.NoError(t, err)

	var reports []Progress
	res := n.Train(xorData, TrainOptions{
		Iterations: 25,
		Resolution: 10,
		OnProgress: func(p Progress) { reports = append(reports, p) },
	})
	require.Len(t, reports, 2)
	assert.Equal(t, 10, reports[0].Iterations)
	assert.Equal(t, 20, reports[1].Iterations)
	assert.Equal(t, 25, res.Iterations)
}

func TestTrainEpochError(t *testing.T) {
	n, err := NewNetwork(Options{Seed: 8})
	require.NoError(t, err)
	m, err := NewNetwork(Options{Seed: 8})
	require.NoError(t, err)

	res := n.Train(xorData, TrainOptions{Iterations: 1})

	// the epoch error is the rms of the item errors
	var sse float32
	for _, ex := range xorData {
		e := m.TrainItem(ex.Input, ex.Output)
		sse += e * e
	}
	assert.True(t, aboutEqual(res.Error*res.Error, sse/float32(len(xorData)), defTol))
}

func TestTrainEmpty(t *testing.T) {
	n, err := NewNetwork(Options{})
	require.NoError(t, err)
	called := false
	res := n.Train(nil, TrainOptions{Resolution: 1, OnProgress: func(Progress) { called = true }})
	assert.Equal(t, TrainResult{}, res)
	assert.False(t, called)
}
