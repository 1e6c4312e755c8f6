package formulas

// PercentChange computes the step-by-step relative change of a series,
// expressed in percent:
//
//	pct[i] = 100 * (x[i] - x[i-1]) / x[i-1]
//
// The output has the same length as the input. Element 0 is always 0.0
// (no previous reference point). A zero previous value saturates to 0.0
// instead of producing Inf/NaN.
func PercentChange(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	pct := make([]float64, len(values))
	pct[0] = 0.0

	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			pct[i] = 0.0
			continue
		}
		pct[i] = 100.0 * (values[i] - prev) / prev
	}

	return pct
}

// Clamp bounds v to the [lo, hi] interval.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
