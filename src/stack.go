package recur

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// runStack chains scan across layers in index order: layer l's full
// output sequence becomes layer l+1's input. A layer may not start
// before the previous one has produced all of its timesteps; there is
// no streaming coupling between layers.
//
// hInits holds one initial hidden vector per layer, one row each.
// Returns the last layer's full output sequence (nil for zero-length
// input) and the (NumLayers x HiddenSize) stack of per-layer final
// hidden vectors.
func runStack(store *paramStore, xs *mat.Dense, hInits *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	layers := store.numLayers()
	if r, _ := hInits.Dims(); r != layers {
		return nil, nil, &ConfigError{
			Field: "hInits",
			Cause: fmt.Sprintf("got %d initial hidden vectors, model has %d layers", r, layers),
		}
	}

	finals := mat.NewDense(layers, store.cfg.HiddenSize, nil)
	seq := xs
	for l := 0; l < layers; l++ {
		p, err := store.get(l)
		if err != nil {
			return nil, nil, err
		}
		out, hLast, err := scan(p, seq, hInits.RowView(l))
		if err != nil {
			return nil, nil, err
		}
		finals.SetRow(l, hLast.RawVector().Data)
		seq = out
	}
	return seq, finals, nil
}
