package recur

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// With identity input weights and zero recurrent weights every step
// depends only on its own input: h_t = tanh(x_t).
func TestScanIdentityWeights(t *testing.T) {
	t.Parallel()

	p := testParams(
		[]float64{1, 0, 0, 1},
		[]float64{0, 0, 0, 0},
		2, 2,
		[]float64{0, 0},
		[]float64{0, 0},
	)
	xs := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})

	hs, hLast, err := scan(p, xs, mat.NewVecDense(2, nil))
	require.NoError(t, err)

	want := [][2]float64{
		{math.Tanh(1), math.Tanh(0)},
		{math.Tanh(0), math.Tanh(1)},
		{math.Tanh(1), math.Tanh(1)},
	}
	for i, row := range want {
		require.InDelta(t, row[0], hs.At(i, 0), 1e-15)
		require.InDelta(t, row[1], hs.At(i, 1), 1e-15)
	}
	require.InDelta(t, math.Tanh(1), hLast.AtVec(0), 1e-15)
	require.InDelta(t, math.Tanh(1), hLast.AtVec(1), 1e-15)
}

// The fold must carry h_{t-1} into step t: with pure recurrent
// weights the state evolves even when every input is zero.
func TestScanCarriesState(t *testing.T) {
	t.Parallel()

	p := testParams(
		[]float64{0},
		[]float64{1},
		1, 1,
		[]float64{0},
		[]float64{0},
	)
	xs := mat.NewDense(3, 1, []float64{0, 0, 0})

	hs, hLast, err := scan(p, xs, mat.NewVecDense(1, []float64{0.5}))
	require.NoError(t, err)

	h := 0.5
	for i := 0; i < 3; i++ {
		h = math.Tanh(h)
		require.InDelta(t, h, hs.At(i, 0), 1e-15)
	}
	require.InDelta(t, h, hLast.AtVec(0), 1e-15)
}

// Zero-length sequence: no output rows, initial state passed through.
func TestScanEmptySequence(t *testing.T) {
	t.Parallel()

	p := testParams(
		[]float64{1},
		[]float64{1},
		1, 1,
		[]float64{1},
		[]float64{1},
	)
	h0 := mat.NewVecDense(1, []float64{0.25})

	hs, hLast, err := scan(p, nil, h0)
	require.NoError(t, err)
	require.Nil(t, hs)
	require.InDelta(t, 0.25, hLast.AtVec(0), 0)

	// Final state is a copy, not an alias.
	hLast.SetVec(0, -1)
	require.InDelta(t, 0.25, h0.AtVec(0), 0)
}

func TestRunStackLayerCountMismatch(t *testing.T) {
	t.Parallel()

	cfg := Config{InputSize: 2, HiddenSize: 2, NumLayers: 2, Seed: 1}
	store := newParamStore(cfg, newTestRng(1))
	xs := mat.NewDense(1, 2, []float64{1, 1})

	_, _, err := runStack(store, xs, mat.NewDense(3, 2, nil))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
