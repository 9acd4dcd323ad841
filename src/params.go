package recur

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// LayerParams holds one layer's weights and biases. WIh is
// (HiddenSize x D) where D is the layer's input width, WHh is
// (HiddenSize x HiddenSize), both biases have length HiddenSize.
type LayerParams struct {
	WIh *mat.Dense
	WHh *mat.Dense
	BIh *mat.VecDense
	BHh *mat.VecDense
}

// clone deep-copies so stored parameters never alias caller memory.
func (p LayerParams) clone() LayerParams {
	return LayerParams{
		WIh: mat.DenseCopyOf(p.WIh),
		WHh: mat.DenseCopyOf(p.WHh),
		BIh: mat.VecDenseCopyOf(p.BIh),
		BHh: mat.VecDenseCopyOf(p.BHh),
	}
}

// paramStore owns the per-layer parameters, indexed by layer. It is
// written during construction and by set; every forward pass only
// reads it, so a single store may serve concurrent batch workers.
type paramStore struct {
	cfg    Config
	layers []LayerParams
}

// newParamStore allocates and initializes all layer parameters, every
// entry drawn uniformly from [-k, k] with k = 1/sqrt(HiddenSize).
func newParamStore(cfg Config, rng *rand.Rand) *paramStore {
	init := ScaledUniform(1.0)
	s := &paramStore{
		cfg:    cfg,
		layers: make([]LayerParams, cfg.NumLayers),
	}
	for l := range s.layers {
		d := cfg.inputDim(l)
		p := LayerParams{
			WIh: mat.NewDense(cfg.HiddenSize, d, nil),
			WHh: mat.NewDense(cfg.HiddenSize, cfg.HiddenSize, nil),
			BIh: mat.NewVecDense(cfg.HiddenSize, nil),
			BHh: mat.NewVecDense(cfg.HiddenSize, nil),
		}
		init.initialize(p.WIh.RawMatrix().Data, cfg.HiddenSize, d, rng)
		init.initialize(p.WHh.RawMatrix().Data, cfg.HiddenSize, cfg.HiddenSize, rng)
		init.initialize(p.BIh.RawVector().Data, cfg.HiddenSize, 1, rng)
		init.initialize(p.BHh.RawVector().Data, cfg.HiddenSize, 1, rng)
		s.layers[l] = p
	}
	return s
}

func (s *paramStore) numLayers() int {
	return len(s.layers)
}

// get returns the live parameters for one layer. Callers must treat
// the result as read-only.
func (s *paramStore) get(layer int) (LayerParams, error) {
	if layer < 0 || layer >= len(s.layers) {
		return LayerParams{}, &ConfigError{
			Field: "layer",
			Cause: fmt.Sprintf("index %d out of range [0, %d)", layer, len(s.layers)),
		}
	}
	return s.layers[layer], nil
}

// set bulk-overwrites one layer's parameters after validating every
// dimension. Used to inject externally supplied weights for
// cross-implementation verification; never called concurrently with a
// forward pass.
func (s *paramStore) set(layer int, p LayerParams) error {
	if layer < 0 || layer >= len(s.layers) {
		return &ConfigError{
			Field: "layer",
			Cause: fmt.Sprintf("index %d out of range [0, %d)", layer, len(s.layers)),
		}
	}

	d := s.cfg.inputDim(layer)
	h := s.cfg.HiddenSize

	if r, c := p.WIh.Dims(); r != h || c != d {
		return &ShapeError{
			Component: "params", Phase: "set", Batch: -1,
			Want:  fmt.Sprintf("WIh [%dx%d]", h, d),
			Got:   fmt.Sprintf("[%dx%d]", r, c),
			Cause: fmt.Sprintf("layer %d input weights", layer),
		}
	}
	if r, c := p.WHh.Dims(); r != h || c != h {
		return &ShapeError{
			Component: "params", Phase: "set", Batch: -1,
			Want:  fmt.Sprintf("WHh [%dx%d]", h, h),
			Got:   fmt.Sprintf("[%dx%d]", r, c),
			Cause: fmt.Sprintf("layer %d recurrent weights", layer),
		}
	}
	if p.BIh.Len() != h {
		return &ShapeError{
			Component: "params", Phase: "set", Batch: -1,
			Want:  fmt.Sprintf("BIh length %d", h),
			Got:   fmt.Sprintf("length %d", p.BIh.Len()),
			Cause: fmt.Sprintf("layer %d input bias", layer),
		}
	}
	if p.BHh.Len() != h {
		return &ShapeError{
			Component: "params", Phase: "set", Batch: -1,
			Want:  fmt.Sprintf("BHh length %d", h),
			Got:   fmt.Sprintf("length %d", p.BHh.Len()),
			Cause: fmt.Sprintf("layer %d recurrent bias", layer),
		}
	}

	s.layers[layer] = p.clone()
	return nil
}
