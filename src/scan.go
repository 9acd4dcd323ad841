package recur

import "gonum.org/v1/gonum/mat"

// scan runs the strict left fold h_t = Step(x_t, h_{t-1}) over one
// layer's input sequence xs (one row per timestep). Step t consumes
// step t-1's output, so the loop is inherently serial; this is the
// dominant cost of the whole forward pass.
//
// A nil xs is the zero-length sequence: the returned sequence is nil
// and the final state is a copy of h0.
func scan(p LayerParams, xs *mat.Dense, h0 mat.Vector) (*mat.Dense, *mat.VecDense, error) {
	if xs == nil {
		return nil, mat.VecDenseCopyOf(h0), nil
	}

	steps, _ := xs.Dims()
	hidden := h0.Len()

	hs := mat.NewDense(steps, hidden, nil)
	h := h0
	for t := 0; t < steps; t++ {
		next, err := Step(p, xs.RowView(t), h)
		if err != nil {
			return nil, nil, err
		}
		hs.SetRow(t, next.RawVector().Data)
		h = next
	}
	return hs, mat.VecDenseCopyOf(h), nil
}
