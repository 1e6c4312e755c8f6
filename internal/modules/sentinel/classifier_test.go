package sentinel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(Config{K: 80, RedThreshold: 0.85, YellowThreshold: 0.95})
	require.NoError(t, err)
	return c
}

func TestEvaluateStates(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name      string
		previous  float64
		current   float64
		wantState State
	}{
		{
			name:      "rise of exactly K percent is suspected noise",
			previous:  80,
			current:   144, // +80%
			wantState: StateInfo,
		},
		{
			name:      "rise just under K percent is recovery",
			previous:  1000,
			current:   1799, // +79.9%
			wantState: StateGreen,
		},
		{
			name:      "small rise is recovery",
			previous:  78,
			current:   80,
			wantState: StateGreen,
		},
		{
			name:      "no change is stable",
			previous:  80,
			current:   80,
			wantState: StateGreen,
		},
		{
			name:      "zero previous saturates to stable",
			previous:  0,
			current:   50,
			wantState: StateGreen,
		},
		{
			name:      "mild drop is stable",
			previous:  80,
			current:   78, // -2.5%, core ~0.999
			wantState: StateGreen,
		},
		{
			name:      "drop into the yellow band",
			previous:  80,
			current:   60, // -25%, T=-0.3125, core=0.90234375
			wantState: StateYellow,
		},
		{
			name:      "deep drop is red",
			previous:  80,
			current:   40, // -50%, T=-0.625, core=0.609375
			wantState: StateRed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := c.Evaluate(tt.previous, tt.current)
			assert.Equal(t, tt.wantState, ev.State)
		})
	}
}

func TestEvaluateThresholdComparisonIsStrict(t *testing.T) {
	// prev=80 curr=64 gives T=-0.25 and a core of exactly 0.9375.
	// With the red threshold set to that same value the state must be
	// YELLOW, not RED: the comparison is strict less-than.
	c, err := New(Config{K: 80, RedThreshold: 0.9375, YellowThreshold: 0.95})
	require.NoError(t, err)

	ev := c.Evaluate(80, 64)
	assert.Equal(t, 0.9375, ev.Core)
	assert.Equal(t, StateYellow, ev.State)

	// A hair below the threshold flips to RED.
	c2, err := New(Config{K: 80, RedThreshold: 0.93750001, YellowThreshold: 0.95})
	require.NoError(t, err)
	assert.Equal(t, StateRed, c2.Evaluate(80, 64).State)
}

func TestSentinelValueRange(t *testing.T) {
	c := newTestClassifier(t)

	pairs := [][2]float64{
		{80, 144}, {80, 80}, {80, 78}, {78, 80}, {80, 40},
		{80, 0}, {0, 80}, {100, 250}, {1, 2}, {-10, -5},
	}

	for _, p := range pairs {
		ev := c.Evaluate(p[0], p[1])
		assert.GreaterOrEqual(t, ev.Value, 0.0, "pair %v", p)
		assert.LessOrEqual(t, ev.Value, 2.0, "pair %v", p)
	}
}

func TestSentinelValueZones(t *testing.T) {
	c := newTestClassifier(t)

	// Neutral: no change and INFO both sit at 1.0.
	assert.Equal(t, 1.0, c.Evaluate(80, 80).Value)
	assert.Equal(t, 1.0, c.Evaluate(80, 144).Value)

	// Recovery side lands in (1, 2].
	rec := c.Evaluate(78, 80)
	assert.Greater(t, rec.Value, 1.0)
	assert.InDelta(t, 1.0+rec.T, rec.Value, 1e-12)

	// Drop side is the bounded core, in [0, 1).
	drop := c.Evaluate(80, 40)
	assert.Equal(t, drop.Core, drop.Value)
	assert.Less(t, drop.Value, 1.0)
}

func TestNewValidation(t *testing.T) {
	_, err := New(Config{K: 0, RedThreshold: 0.85, YellowThreshold: 0.95})
	assert.Error(t, err)

	_, err = New(Config{K: 80, RedThreshold: 0.95, YellowThreshold: 0.85})
	assert.Error(t, err)

	_, err = New(Config{K: 80, RedThreshold: 0.85, YellowThreshold: 1.5})
	assert.Error(t, err)
}
