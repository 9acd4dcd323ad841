package recur

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Step applies the recurrence once:
//
//	h' = tanh(WIh*x + WHh*h + BIh + BHh)
//
// Pure function: it allocates the result and never mutates its
// arguments, so identical inputs always produce identical outputs.
// Non-finite values in x, h or the parameters propagate through
// unchanged, matching the reference recurrence formula exactly.
func Step(p LayerParams, x, h mat.Vector) (*mat.VecDense, error) {
	hidden, d := p.WIh.Dims()
	if x.Len() != d {
		return nil, &ShapeError{
			Component: "cell", Phase: "forward", Batch: -1,
			Want:  fmt.Sprintf("input vector length %d", d),
			Got:   fmt.Sprintf("length %d", x.Len()),
			Cause: "input width must match WIh columns",
		}
	}
	if h.Len() != hidden {
		return nil, &ShapeError{
			Component: "cell", Phase: "forward", Batch: -1,
			Want:  fmt.Sprintf("hidden vector length %d", hidden),
			Got:   fmt.Sprintf("length %d", h.Len()),
			Cause: "hidden width must match WIh rows",
		}
	}

	out := mat.NewVecDense(hidden, nil)
	out.MulVec(p.WIh, x)

	rec := mat.NewVecDense(hidden, nil)
	rec.MulVec(p.WHh, h)

	out.AddVec(out, rec)
	out.AddVec(out, p.BIh)
	out.AddVec(out, p.BHh)

	data := out.RawVector().Data
	for i := range data {
		data[i] = math.Tanh(data[i])
	}
	return out, nil
}
