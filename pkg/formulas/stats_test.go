package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{80, 78, 76, 75, 77, 79, 80, 78, 76, 77})

	assert.Equal(t, 10, s.Count)
	assert.InDelta(t, 77.6, s.Mean, 1e-9)
	assert.Equal(t, 75.0, s.Min)
	assert.Equal(t, 80.0, s.Max)
	assert.Greater(t, s.StdDev, 0.0)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, SeriesSummary{}, s)
}

func TestSmooth(t *testing.T) {
	values := []float64{80, 78, 76, 75, 77, 79, 80, 78, 76, 77}

	out := Smooth(values, 3)
	assert.Len(t, out, len(values))

	// Warm-up region carries the raw values.
	assert.Equal(t, values[0], out[0])
	assert.Equal(t, values[1], out[1])
}

func TestSmoothTooShort(t *testing.T) {
	assert.Nil(t, Smooth([]float64{80, 78}, 5))
	assert.Nil(t, Smooth([]float64{80, 78, 76}, 1))
}
