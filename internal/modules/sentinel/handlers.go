package sentinel

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/openhrv/etcore/internal/config"
)

// Handler exposes the two-sample classifier over HTTP
type Handler struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewHandler creates a new sentinel handler
func NewHandler(cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{
		cfg: cfg,
		log: log.With().Str("handler", "sentinel").Logger(),
	}
}

// EvaluateRequest carries one two-sample transition.
type EvaluateRequest struct {
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`

	// Signal selects the core constant: "hrv" (default) or "vo2".
	Signal string `json:"signal,omitempty"`
}

// HandleEvaluate classifies a single transition
// POST /api/sentinel/evaluate
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	classifier, err := New(Config{
		K:               h.cfg.KForSignal(req.Signal),
		RedThreshold:    h.cfg.RedThreshold,
		YellowThreshold: h.cfg.YellowThreshold,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Classifier configuration invalid")
		h.writeError(w, http.StatusInternalServerError, "Classifier configuration invalid")
		return
	}

	ev := classifier.Evaluate(req.Previous, req.Current)

	h.log.Debug().
		Float64("previous", req.Previous).
		Float64("current", req.Current).
		Str("state", string(ev.State)).
		Msg("Transition evaluated")

	h.writeJSON(w, http.StatusOK, ev)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
