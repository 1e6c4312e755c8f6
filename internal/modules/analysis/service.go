package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openhrv/etcore/internal/config"
	"github.com/openhrv/etcore/internal/modules/pipeline"
	"github.com/openhrv/etcore/internal/modules/series"
	"github.com/openhrv/etcore/pkg/formulas"
)

// ErrNoProfiles is returned when every profile in a request is empty.
var ErrNoProfiles = errors.New("enter at least one HRV profile")

// RequestError marks a failure caused by the request itself (bad tokens,
// too few points). Handlers map it to a 400.
type RequestError struct {
	Profile string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Profile == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("profile %s: %s", e.Profile, e.Err.Error())
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Service runs the ET pipeline over multi-profile compute requests and
// records a snapshot of each successful result.
type Service struct {
	cfg  *config.Config
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new analysis service. repo may be nil, in which
// case results are not persisted.
func NewService(cfg *config.Config, repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		cfg:  cfg,
		repo: repo,
		log:  log.With().Str("service", "analysis").Logger(),
	}
}

// DefaultProfiles returns the three demo series shipped with the
// dashboards: A high, B medium, C low baseline.
func DefaultProfiles() map[string]string {
	return map[string]string{
		"A": "80,78,76,75,77,79,80,78,76,77",
		"B": "60,58,56,55,57,59,60,58,56,57",
		"C": "40,38,36,35,37,39,40,38,36,37",
	}
}

// Overview computes raw vs E for every supplied profile, with summary
// statistics and an optional EMA overlay. A profile needs at least one
// point; a parse failure anywhere aborts the whole request.
func (s *Service) Overview(req ComputeRequest) (*OverviewResponse, error) {
	parsed, err := s.parseProfiles(req.Profiles, 1)
	if err != nil {
		return nil, err
	}

	k := s.cfg.KForSignal(req.Signal)
	stepCount := series.TruncateToCommon(parsed)

	resp := &OverviewResponse{
		RequestID: uuid.NewString(),
		K:         k,
		StepCount: stepCount,
		Profiles:  make(map[string]ProfileOverview, len(parsed)),
	}

	for name, values := range parsed {
		res, err := pipeline.Run(values, pipeline.Config{K: k})
		if err != nil {
			return nil, err
		}

		resp.Profiles[name] = ProfileOverview{
			Raw:      res.Raw,
			E:        res.E,
			Smoothed: formulas.Smooth(res.Raw, req.SmoothPeriod),
			Summary:  formulas.Summarize(res.Raw),
		}
	}

	s.saveSnapshot(KindOverview, resp.RequestID, resp)
	s.log.Debug().
		Str("request_id", resp.RequestID).
		Int("profiles", len(resp.Profiles)).
		Int("steps", stepCount).
		Msg("Overview computed")

	return resp, nil
}

// Detail computes the full pipeline (raw, pct, T, E, deviation) for every
// supplied profile. Each profile needs at least two points so the
// percent-change column has a real reference step.
func (s *Service) Detail(req ComputeRequest) (*DetailResponse, error) {
	parsed, err := s.parseProfiles(req.Profiles, 2)
	if err != nil {
		return nil, err
	}

	k := s.cfg.KForSignal(req.Signal)
	scale := req.DeviationScale
	if scale <= 0 {
		scale = s.cfg.DeviationScale
	}
	stepCount := series.TruncateToCommon(parsed)

	resp := &DetailResponse{
		RequestID:      uuid.NewString(),
		K:              k,
		DeviationScale: scale,
		StepCount:      stepCount,
		Profiles:       make(map[string]ProfileDetail, len(parsed)),
	}

	for name, values := range parsed {
		res, err := pipeline.Run(values, pipeline.Config{K: k, DeviationScale: scale})
		if err != nil {
			return nil, err
		}

		resp.Profiles[name] = ProfileDetail{
			Result:  res,
			Summary: formulas.Summarize(res.Raw),
		}
	}

	s.saveSnapshot(KindDetail, resp.RequestID, resp)
	s.log.Debug().
		Str("request_id", resp.RequestID).
		Int("profiles", len(resp.Profiles)).
		Int("steps", stepCount).
		Msg("Detail computed")

	return resp, nil
}

// LatestSnapshot returns the stored result of the most recent computation
// of a kind, or nil when nothing has been computed yet.
func (s *Service) LatestSnapshot(kind string) (*Snapshot, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetLatest(kind)
}

// parseProfiles parses every non-empty profile text. Parse failures abort
// the whole request; there is no silent fallback to defaults. minPoints
// applies per supplied profile.
func (s *Service) parseProfiles(texts map[string]string, minPoints int) (map[string][]float64, error) {
	parsed := make(map[string][]float64, len(texts))

	for name, text := range texts {
		values, err := series.Parse(text)
		if err != nil {
			return nil, &RequestError{Profile: name, Err: err}
		}
		if len(values) == 0 {
			continue // profile omitted
		}
		if len(values) < minPoints {
			return nil, &RequestError{
				Profile: name,
				Err:     fmt.Errorf("needs at least %d points, got %d", minPoints, len(values)),
			}
		}
		parsed[name] = values
	}

	if len(parsed) == 0 {
		return nil, &RequestError{Err: ErrNoProfiles}
	}

	return parsed, nil
}

func (s *Service) saveSnapshot(kind, requestID string, payload any) {
	if s.repo == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("kind", kind).Msg("Failed to marshal snapshot")
		return
	}

	snap := &Snapshot{
		ID:        requestID,
		Kind:      kind,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}

	// Snapshot persistence is best-effort: a storage failure must not
	// fail the computation it records.
	if err := s.repo.Save(snap); err != nil {
		s.log.Error().Err(err).Str("kind", kind).Msg("Failed to save snapshot")
	}
}
