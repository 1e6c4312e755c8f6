package sentinel

import (
	"fmt"

	"github.com/openhrv/etcore/pkg/formulas"
)

// State is the discrete classification of a single two-sample transition.
type State string

const (
	StateInfo   State = "INFO"
	StateGreen  State = "GREEN"
	StateYellow State = "YELLOW"
	StateRed    State = "RED"
)

// Config holds classifier thresholds. RedThreshold and YellowThreshold
// apply to the bounded core score on the drop side; comparisons are
// strict, so a core of exactly RedThreshold classifies as YELLOW.
type Config struct {
	K               float64
	RedThreshold    float64 // default 0.85
	YellowThreshold float64 // default 0.95
}

// Evaluation is the full output for one transition. Value collapses state
// and magnitude into a single [0, 2] scalar around a neutral point of 1.0:
// drop side in [0, 1), neutral exactly 1.0, recovery side in (1, 2].
type Evaluation struct {
	Pct     float64 `json:"pct"`
	T       float64 `json:"t"`
	Core    float64 `json:"core"`
	State   State   `json:"state"`
	Value   float64 `json:"value"`
	Message string  `json:"message"`
}

// Classifier maps (previous, current) sample pairs to a State and a
// sentinel value. No history, no learning: two samples in, one state out,
// in constant time.
type Classifier struct {
	cfg Config
}

// New creates a classifier. Returns an error when K is not positive or
// the thresholds are not ordered 0 < red < yellow <= 1.
func New(cfg Config) (*Classifier, error) {
	if cfg.K <= 0 {
		return nil, fmt.Errorf("core constant K must be positive, got %v", cfg.K)
	}
	if cfg.RedThreshold <= 0 || cfg.RedThreshold >= cfg.YellowThreshold || cfg.YellowThreshold > 1 {
		return nil, fmt.Errorf("thresholds must satisfy 0 < red < yellow <= 1, got red=%v yellow=%v",
			cfg.RedThreshold, cfg.YellowThreshold)
	}
	return &Classifier{cfg: cfg}, nil
}

// Evaluate classifies the transition from previous to current.
//
// A rise of K percent or more is flagged INFO rather than celebrated:
// jumps that large are treated as suspected sensor noise, not signal.
// Smaller rises are GREEN recovery. Drops are graded by how far the
// bounded core score has fallen from 1.
func (c *Classifier) Evaluate(previous, current float64) Evaluation {
	pct := 0.0
	if previous != 0 {
		pct = 100.0 * (current - previous) / previous
	}

	t := pct / c.cfg.K
	core := formulas.Clamp(1.0-t*t, 0.0, 1.0)

	ev := Evaluation{Pct: pct, T: t, Core: core}

	switch {
	case pct >= c.cfg.K:
		ev.State = StateInfo
		ev.Message = "possible spike / sensor noise"
		ev.Value = 1.0
	case pct > 0:
		ev.State = StateGreen
		ev.Message = "recovery/rebound"
		ev.Value = 1.0 + formulas.Clamp(t, 0.0, 1.0)
	case pct < 0:
		switch {
		case core < c.cfg.RedThreshold:
			ev.State = StateRed
			ev.Message = "reserve collapsing, trigger recommended"
		case core < c.cfg.YellowThreshold:
			ev.State = StateYellow
			ev.Message = "load increasing"
		default:
			ev.State = StateGreen
			ev.Message = "stable"
		}
		ev.Value = core
	default:
		ev.State = StateGreen
		ev.Message = "stable"
		ev.Value = 1.0
	}

	return ev
}
