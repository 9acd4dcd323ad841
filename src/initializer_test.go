package recur

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializers(t *testing.T) {
	t.Parallel()

	data := make([]float64, 64)
	rng := newTestRng(3)

	Constant(2.5).initialize(data, 8, 8, rng)
	for _, v := range data {
		require.InDelta(t, 2.5, v, 0)
	}

	Zeros().initialize(data, 8, 8, rng)
	for _, v := range data {
		require.Zero(t, v)
	}

	RandomUniform(-0.25, 0.25).initialize(data, 8, 8, rng)
	for _, v := range data {
		require.LessOrEqual(t, math.Abs(v), 0.25)
	}

	// k = gain/sqrt(fanIn)
	ScaledUniform(2.0).initialize(data, 16, 8, rng)
	k := 2.0 / math.Sqrt(16)
	for _, v := range data {
		require.LessOrEqual(t, math.Abs(v), k)
	}

	require.Equal(t, "constant", Constant(1).name())
	require.Equal(t, "zeros", Zeros().name())
	require.Equal(t, "random_uniform", RandomUniform(0, 1).name())
	require.Equal(t, "scaled_uniform", ScaledUniform(1).name())
}
