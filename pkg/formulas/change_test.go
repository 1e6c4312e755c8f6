package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{
			name:   "empty series",
			values: []float64{},
			want:   []float64{},
		},
		{
			name:   "single element",
			values: []float64{80},
			want:   []float64{0.0},
		},
		{
			name:   "two elements",
			values: []float64{80, 78},
			want:   []float64{0.0, -2.5},
		},
		{
			name:   "rise and fall",
			values: []float64{100, 110, 99},
			want:   []float64{0.0, 10.0, -10.0},
		},
		{
			name:   "zero previous saturates to zero",
			values: []float64{0, 50, 55},
			want:   []float64{0.0, 0.0, 10.0},
		},
		{
			name:   "flat series",
			values: []float64{60, 60, 60},
			want:   []float64{0.0, 0.0, 0.0},
		},
		{
			name:   "negative values use the formula unchanged",
			values: []float64{-10, -5},
			want:   []float64{0.0, -50.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(tt.values)

			require.Len(t, got, len(tt.values))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-12, "index %d", i)
			}
		})
	}
}

func TestPercentChangeFirstElementAlwaysZero(t *testing.T) {
	series := [][]float64{
		{1},
		{0, 0, 0},
		{42, 41, 43, 40},
		{-3, 7, -2},
	}

	for _, s := range series {
		got := PercentChange(s)
		assert.Equal(t, 0.0, got[0])
	}
}

func TestPercentChangeNeverNaNOrInf(t *testing.T) {
	got := PercentChange([]float64{0, 1, 0, 2, 0})

	for i, v := range got {
		assert.False(t, math.IsNaN(v), "index %d is NaN", i)
		assert.False(t, math.IsInf(v, 0), "index %d is Inf", i)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.5, 0, 1))
	assert.Equal(t, 0.7, Clamp(0.7, 0, 1))
}
