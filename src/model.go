package recur

import (
	"fmt"
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Model is a stack of uni-directional tanh recurrent layers with a
// batch-first forward pass. Parameters are initialized at
// construction and only change through SetLayerParams; Forward never
// writes to them, so one Model may serve concurrent callers.
type Model struct {
	cfg   Config
	store *paramStore
}

// New builds a model with randomly initialized parameters: every
// weight and bias entry uniform on [-k, k], k = 1/sqrt(HiddenSize).
func New(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Model{
		cfg:   cfg,
		store: newParamStore(cfg, rng),
	}, nil
}

// Config returns the construction settings.
func (m *Model) Config() Config {
	return m.cfg
}

// LayerParams returns a deep copy of one layer's parameters. The
// caller owns the copy; mutating it does not affect the model.
func (m *Model) LayerParams(layer int) (LayerParams, error) {
	p, err := m.store.get(layer)
	if err != nil {
		return LayerParams{}, err
	}
	return p.clone(), nil
}

// SetLayerParams overwrites one layer's parameters in bulk, copying
// the arguments. Intended for injecting externally computed weights
// when verifying numerical equivalence against another
// implementation. Must not race with a running Forward.
func (m *Model) SetLayerParams(layer int, wIh, wHh mat.Matrix, bIh, bHh mat.Vector) error {
	return m.store.set(layer, LayerParams{
		WIh: mat.DenseCopyOf(wIh),
		WHh: mat.DenseCopyOf(wHh),
		BIh: mat.VecDenseCopyOf(bIh),
		BHh: mat.VecDenseCopyOf(bHh),
	})
}

// Forward runs the full forward pass over a batch.
//
// xs[n] is one (L x InputSize) input sequence; every element must
// share the same L, and nil stands for the zero-length sequence.
// h0[n] is that element's (NumLayers x HiddenSize) stack of initial
// hidden vectors; a nil h0 defaults every layer to the zero state,
// sized from len(xs) rather than any ambient value.
//
// Returns out with out[n] the last layer's (L x HiddenSize) hidden
// sequence (nil when L is zero), and hn with hn[layer] the (N x
// HiddenSize) matrix of that layer's final hidden vectors across the
// batch.
//
// Batch elements are independent; with Config.Workers > 1 they are
// computed on that many goroutines sharing the read-only parameter
// store.
func (m *Model) Forward(xs []*mat.Dense, h0 []*mat.Dense) ([]*mat.Dense, []*mat.Dense, error) {
	n := len(xs)
	if n == 0 {
		return nil, nil, &ShapeError{
			Component: "forward", Phase: "forward", Batch: -1,
			Want:  "at least one input sequence",
			Got:   "empty batch",
			Cause: "batch size is taken from len(xs)",
		}
	}

	steps := 0
	if xs[0] != nil {
		steps, _ = xs[0].Dims()
	}
	for i, x := range xs {
		r, c := 0, m.cfg.InputSize
		if x != nil {
			r, c = x.Dims()
		}
		if r != steps {
			return nil, nil, &ShapeError{
				Component: "forward", Phase: "forward", Batch: i,
				Want:  fmt.Sprintf("%d timesteps", steps),
				Got:   fmt.Sprintf("%d timesteps", r),
				Cause: "all batch elements must share one sequence length",
			}
		}
		if c != m.cfg.InputSize {
			return nil, nil, &ShapeError{
				Component: "forward", Phase: "forward", Batch: i,
				Want:  fmt.Sprintf("feature width %d", m.cfg.InputSize),
				Got:   fmt.Sprintf("feature width %d", c),
				Cause: "layer 0 consumes InputSize features",
			}
		}
	}

	if h0 != nil {
		if len(h0) != n {
			return nil, nil, &ShapeError{
				Component: "forward", Phase: "forward", Batch: -1,
				Want:  fmt.Sprintf("batch size %d", n),
				Got:   fmt.Sprintf("batch size %d", len(h0)),
				Cause: "h0 must carry one initial state stack per input sequence",
			}
		}
		for i, h := range h0 {
			r, c := h.Dims()
			if r != m.cfg.NumLayers || c != m.cfg.HiddenSize {
				return nil, nil, &ShapeError{
					Component: "forward", Phase: "forward", Batch: i,
					Want:  fmt.Sprintf("h0 [%dx%d]", m.cfg.NumLayers, m.cfg.HiddenSize),
					Got:   fmt.Sprintf("[%dx%d]", r, c),
					Cause: "one initial hidden vector per layer",
				}
			}
		}
	}

	if DebugMode {
		log.Printf("recur: forward batch=%d steps=%d layers=%d workers=%d",
			n, steps, m.cfg.NumLayers, m.cfg.Workers)
	}

	// Workers never write to the same slot and the zero default is
	// read-only, so the slices need no locking.
	zero := mat.NewDense(m.cfg.NumLayers, m.cfg.HiddenSize, nil)
	outs := make([]*mat.Dense, n)
	finals := make([]*mat.Dense, n)

	run := func(i int) error {
		init := zero
		if h0 != nil {
			init = h0[i]
		}
		seq, fin, err := runStack(m.store, xs[i], init)
		if err != nil {
			return err
		}
		outs[i] = seq
		finals[i] = fin
		return nil
	}

	if m.cfg.Workers > 1 && n > 1 {
		var g errgroup.Group
		g.SetLimit(m.cfg.Workers)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error { return run(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := 0; i < n; i++ {
			if err := run(i); err != nil {
				return nil, nil, err
			}
		}
	}

	// Reassemble per-element final states into layer-leading form.
	hn := make([]*mat.Dense, m.cfg.NumLayers)
	for l := range hn {
		hn[l] = mat.NewDense(n, m.cfg.HiddenSize, nil)
		for i := 0; i < n; i++ {
			hn[l].SetRow(i, finals[i].RawRowView(l))
		}
	}
	return outs, hn, nil
}
