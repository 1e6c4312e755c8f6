package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// Handler exposes the analysis service over HTTP
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new analysis handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

// HandleOverview computes raw vs E curves for the supplied profiles
// POST /api/analysis/overview
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Overview(req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// HandleDetail computes the full pipeline tables for the supplied profiles
// POST /api/analysis/detail
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Detail(req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// HandleDefaults returns the demo profile series
// GET /api/analysis/defaults
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"profiles": DefaultProfiles(),
	})
}

// HandleLatestSnapshot returns the stored result of the last computation
// GET /api/analysis/snapshots/latest?kind=overview|detail
func (h *Handler) HandleLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind != KindOverview && kind != KindDetail {
		h.writeError(w, http.StatusBadRequest, "kind must be 'overview' or 'detail'")
		return
	}

	snap, err := h.service.LatestSnapshot(kind)
	if err != nil {
		h.log.Error().Err(err).Str("kind", kind).Msg("Failed to load snapshot")
		h.writeError(w, http.StatusInternalServerError, "Failed to load snapshot")
		return
	}
	if snap == nil {
		h.writeError(w, http.StatusNotFound, "No computation recorded yet")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"id":         snap.ID,
		"kind":       snap.Kind,
		"created_at": snap.CreatedAt,
		"result":     json.RawMessage(snap.Payload),
	})
}

// respondError maps request-scoped failures to a 400 and everything else
// to a 500. The 400 message names the offending token or profile.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		h.writeError(w, http.StatusBadRequest, reqErr.Error())
		return
	}

	h.log.Error().Err(err).Msg("Computation failed")
	h.writeError(w, http.StatusInternalServerError, "Computation failed")
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
