package recur

import (
	"math"
	"math/rand"
)

// Initializer fills a parameter buffer with initial values
type Initializer interface {
	initialize(data []float64, fanIn, fanOut int, rng *rand.Rand)
	name() string
}

// ScaledUniformInit - uniform over [-k, k] with k = gain/sqrt(fanIn).
// With gain 1 and fanIn = HiddenSize this is the standard recurrent
// weight initialization.
type ScaledUniformInit struct {
	Gain float64
}

func ScaledUniform(gain float64) Initializer {
	return &ScaledUniformInit{Gain: gain}
}

func (s *ScaledUniformInit) initialize(data []float64, fanIn, fanOut int, rng *rand.Rand) {
	limit := s.Gain / math.Sqrt(float64(fanIn))
	fillRandUniform(data, -limit, limit, rng)
}

func (s *ScaledUniformInit) name() string { return "scaled_uniform" }

// RandomUniformInit - simple random uniform
type RandomUniformInit struct {
	MinVal float64
	MaxVal float64
}

func RandomUniform(minVal, maxVal float64) Initializer {
	return &RandomUniformInit{MinVal: minVal, MaxVal: maxVal}
}

func (r *RandomUniformInit) initialize(data []float64, fanIn, fanOut int, rng *rand.Rand) {
	fillRandUniform(data, r.MinVal, r.MaxVal, rng)
}

func (r *RandomUniformInit) name() string { return "random_uniform" }

// ZerosInit - initialize with zeros
type ZerosInit struct{}

func Zeros() Initializer { return &ZerosInit{} }

func (z *ZerosInit) initialize(data []float64, fanIn, fanOut int, rng *rand.Rand) {
	fill(data, 0)
}

func (z *ZerosInit) name() string { return "zeros" }

// ConstantInit - initialize with constant value
type ConstantInit struct {
	Value float64
}

func Constant(value float64) Initializer {
	return &ConstantInit{Value: value}
}

func (c *ConstantInit) initialize(data []float64, fanIn, fanOut int, rng *rand.Rand) {
	fill(data, c.Value)
}

func (c *ConstantInit) name() string { return "constant" }

func fill(data []float64, value float64) {
	for i := range data {
		data[i] = value
	}
}

func fillRandUniform(data []float64, low, high float64, rng *rand.Rand) {
	for i := range data {
		data[i] = rng.Float64()*(high-low) + low
	}
}
