// Package recur implements the forward pass of a multi-layer,
// uni-directional tanh recurrent network over batch-first inputs.
//
// Recur provides a power-user focused API with explicit configuration
// and no hidden defaults. Every dimension must be specified up front;
// the forward pass never infers shapes from ambient state.
//
// Basic usage:
//
//	model, err := recur.New(recur.Config{
//		InputSize:  4,
//		HiddenSize: 8,
//		NumLayers:  2,
//		Seed:       42,
//		Workers:    0,
//	})
//
//	// xs[n] is one (L x InputSize) sequence; pass nil for h0 to
//	// start every layer from the zero state.
//	out, hn, err := model.Forward(xs, nil)
//
// out[n] is the last layer's full (L x HiddenSize) hidden sequence for
// batch element n; hn[layer] stacks the final hidden vectors of that
// layer across the batch, one row per element.
//
// Gradients, checkpointing and training loops are out of scope: the
// forward pass is a composition of mat primitives (matrix-vector
// product, addition, tanh) and nothing else.
package recur

// Version of the recur library
const Version = "1.0.0"

// DebugMode enables verbose logging
var DebugMode = false

// SetDebug enables or disables debug mode
func SetDebug(enabled bool) {
	DebugMode = enabled
}
