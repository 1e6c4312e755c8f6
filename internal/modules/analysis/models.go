package analysis

import (
	"time"

	"github.com/openhrv/etcore/internal/modules/pipeline"
	"github.com/openhrv/etcore/pkg/formulas"
)

// ComputeRequest carries the raw text of one compute action. Profiles maps
// a profile name ("A", "B", ...) to its comma-separated series text; an
// empty text means the profile is omitted from the request.
type ComputeRequest struct {
	Profiles map[string]string `json:"profiles"`

	// Signal selects the core constant: "hrv" (default) or "vo2".
	Signal string `json:"signal,omitempty"`

	// SmoothPeriod enables the EMA overlay on the raw series when >= 2.
	// Overview only.
	SmoothPeriod int `json:"smooth_period,omitempty"`

	// DeviationScale overrides the configured display multiplier.
	// Detail only.
	DeviationScale float64 `json:"deviation_scale,omitempty"`
}

// ProfileOverview is the per-profile payload of the overview computation:
// the raw series against its E curve, plus descriptive statistics.
type ProfileOverview struct {
	Raw      []float64              `json:"raw"`
	E        []float64              `json:"e"`
	Smoothed []float64              `json:"smoothed,omitempty"`
	Summary  formulas.SeriesSummary `json:"summary"`
}

// OverviewResponse is the answer to one overview compute action.
type OverviewResponse struct {
	RequestID string                     `json:"request_id"`
	K         float64                    `json:"k"`
	StepCount int                        `json:"step_count"`
	Profiles  map[string]ProfileOverview `json:"profiles"`
}

// ProfileDetail is the per-profile payload of the detail computation:
// every stage of the pipeline as an index-aligned sequence.
type ProfileDetail struct {
	pipeline.Result
	Summary formulas.SeriesSummary `json:"summary"`
}

// DetailResponse is the answer to one detail compute action.
type DetailResponse struct {
	RequestID      string                   `json:"request_id"`
	K              float64                  `json:"k"`
	DeviationScale float64                  `json:"deviation_scale"`
	StepCount      int                      `json:"step_count"`
	Profiles       map[string]ProfileDetail `json:"profiles"`
}

// Snapshot is one stored computation result, immutable once written.
type Snapshot struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Payload   []byte    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot kinds, one per compute entry point.
const (
	KindOverview = "overview"
	KindDetail   = "detail"
)
