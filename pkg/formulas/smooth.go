package formulas

import (
	"github.com/markcheno/go-talib"
)

// Smooth applies an exponential moving average to a series, used as a
// display overlay next to the raw values.
//
// talib leaves the warm-up region (the first period-1 elements) as zeros;
// those are backfilled with the raw values so the overlay stays
// index-aligned with the input. Returns nil when the series is shorter
// than the period or the period is < 2.
func Smooth(values []float64, period int) []float64 {
	if period < 2 || len(values) < period {
		return nil
	}

	ema := talib.Ema(values, period)

	out := make([]float64, len(values))
	copy(out, ema)
	for i := 0; i < period-1 && i < len(out); i++ {
		out[i] = values[i]
	}

	return out
}
