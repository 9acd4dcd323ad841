package recur

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ConfigError reports invalid construction parameters: a bad Config
// field, a mismatched number of initial hidden vectors, or a layer
// index outside [0, NumLayers).
type ConfigError struct {
	Field string // offending field or argument
	Cause string // human-readable cause
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("recur: invalid %s: %s", e.Field, e.Cause)
}

// ShapeError reports a tensor argument whose dimensions disagree with
// the forward-pass contract. It is surfaced at the offending call and
// never retried: the computation is deterministic, so a retry cannot
// change the outcome.
type ShapeError struct {
	Component string // "cell", "scan", "stack", "forward", "params"
	Phase     string // "forward", "set"
	Batch     int    // batch index, -1 if not relevant
	Want      string // expected dimensions
	Got       string // observed dimensions
	Cause     string
}

func (e *ShapeError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "recur: %s shape mismatch in %s", e.Component, e.Phase)
	if e.Batch >= 0 {
		fmt.Fprintf(&b, " at batch %d", e.Batch)
	}
	b.WriteString("\n")

	if e.Want != "" {
		fmt.Fprintf(&b, "  expected: %s\n", e.Want)
	}
	if e.Got != "" {
		fmt.Fprintf(&b, "  got:      %s\n", e.Got)
	}
	fmt.Fprintf(&b, "  cause:    %s", e.Cause)

	return b.String()
}

// MatrixInfo captures matrix state for diagnostics and error reporting
type MatrixInfo struct {
	Rows     int
	Cols     int
	NaNCount int
	InfCount int
	MinValue float64
	MaxValue float64
}

// Format returns a compact string representation
func (m *MatrixInfo) Format() string {
	s := fmt.Sprintf("[%dx%d]", m.Rows, m.Cols)
	if m.NaNCount > 0 || m.InfCount > 0 {
		s += fmt.Sprintf(" (corrupt: %d NaN, %d Inf)", m.NaNCount, m.InfCount)
	} else {
		s += fmt.Sprintf(" range=[%.4f, %.4f]", m.MinValue, m.MaxValue)
	}
	return s
}

// ScanMatrix checks a matrix for NaN/Inf and collects stats. The
// forward pass itself propagates non-finite values untouched; this is
// a caller-side diagnostic only.
func ScanMatrix(a mat.Matrix) *MatrixInfo {
	if a == nil {
		return nil
	}

	r, c := a.Dims()
	info := &MatrixInfo{
		Rows:     r,
		Cols:     c,
		MinValue: math.Inf(1),
		MaxValue: math.Inf(-1),
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			switch {
			case math.IsNaN(v):
				info.NaNCount++
			case math.IsInf(v, 0):
				info.InfCount++
			default:
				if v < info.MinValue {
					info.MinValue = v
				}
				if v > info.MaxValue {
					info.MaxValue = v
				}
			}
		}
	}

	// Handle empty or all-corrupt matrices
	if math.IsInf(info.MinValue, 1) {
		info.MinValue = 0
	}
	if math.IsInf(info.MaxValue, -1) {
		info.MaxValue = 0
	}

	return info
}
