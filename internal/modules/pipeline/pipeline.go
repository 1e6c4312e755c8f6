package pipeline

import (
	"fmt"

	"github.com/openhrv/etcore/pkg/formulas"
)

// Config parameterizes one run of the ET core transform.
type Config struct {
	K              float64 // core constant, divisor for percent change (80 for HRV, 60 for VO2)
	DeviationScale float64 // display multiplier for (1 - E); 0 disables the deviation view
}

// Result holds every derived sequence for one input series. All slices
// have the same length as Raw and are index-aligned. Deviation is nil
// when the config disables it.
type Result struct {
	Raw       []float64 `json:"raw"`
	Pct       []float64 `json:"pct"`
	T         []float64 `json:"t"`
	E         []float64 `json:"e"`
	Deviation []float64 `json:"deviation,omitempty"`
}

// Normalize divides each percent-change element by the core constant K,
// yielding the dimensionless T sequence.
func Normalize(pct []float64, k float64) []float64 {
	t := make([]float64, len(pct))
	for i, p := range pct {
		t[i] = p / k
	}
	return t
}

// Score computes E[i] = 1 - T[i]^2. Unbounded below: |T| > 1 gives a
// negative score. See BoundedScore for the clamped variant.
func Score(t []float64) []float64 {
	e := make([]float64, len(t))
	for i, v := range t {
		e[i] = 1.0 - v*v
	}
	return e
}

// BoundedScore is Score clamped to [0, 1], for use as a confidence-style
// value.
func BoundedScore(t []float64) []float64 {
	e := make([]float64, len(t))
	for i, v := range t {
		e[i] = formulas.Clamp(1.0-v*v, 0.0, 1.0)
	}
	return e
}

// Deviation rescales the distance from neutrality, (1 - E[i]) * scale.
// Display-only: E values near 1 are otherwise too small to see on a chart.
func Deviation(e []float64, scale float64) []float64 {
	dev := make([]float64, len(e))
	for i, v := range e {
		dev[i] = (1.0 - v) * scale
	}
	return dev
}

// Run applies the whole ET pipeline to one raw series:
// raw -> percent change -> T = pct/K -> E = 1 - T^2, plus the optional
// deviation view. Pure and deterministic; the input slice is not mutated.
func Run(values []float64, cfg Config) (Result, error) {
	if cfg.K <= 0 {
		return Result{}, fmt.Errorf("core constant K must be positive, got %v", cfg.K)
	}

	raw := make([]float64, len(values))
	copy(raw, values)

	pct := formulas.PercentChange(raw)
	t := Normalize(pct, cfg.K)
	e := Score(t)

	res := Result{
		Raw: raw,
		Pct: pct,
		T:   t,
		E:   e,
	}

	if cfg.DeviationScale > 0 {
		res.Deviation = Deviation(e, cfg.DeviationScale)
	}

	return res, nil
}
