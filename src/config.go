package recur

// Config holds all model construction settings - ALL fields required
// except Workers, which defaults to the sequential batch driver.
type Config struct {
	InputSize  int   // feature width of layer-0 inputs
	HiddenSize int   // hidden width of every layer
	NumLayers  int   // number of stacked recurrent layers
	Seed       int64 // weight-initialization seed
	Workers    int   // batch-parallel goroutines; <= 1 runs sequentially
}

// Validate checks all required fields are set
func (cfg Config) Validate() error {
	if cfg.InputSize < 1 {
		return &ConfigError{Field: "InputSize", Cause: "must be >= 1"}
	}
	if cfg.HiddenSize < 1 {
		return &ConfigError{Field: "HiddenSize", Cause: "must be >= 1"}
	}
	if cfg.NumLayers < 1 {
		return &ConfigError{Field: "NumLayers", Cause: "must be >= 1"}
	}
	return nil
}

// inputDim returns the feature width consumed by a layer: InputSize at
// layer 0, HiddenSize above it.
func (cfg Config) inputDim(layer int) int {
	if layer == 0 {
		return cfg.InputSize
	}
	return cfg.HiddenSize
}
