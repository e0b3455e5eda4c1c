package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/line-model/internal/engine"
	"github.com/XavierBriggs/fortuna/services/line-model/internal/hub"
	"github.com/XavierBriggs/fortuna/services/line-model/internal/ratings"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// SnapshotSink mirrors rating snapshots to external persistence.
type SnapshotSink interface {
	WriteRatingSnapshot(ctx context.Context, snap models.PowerRatingSnapshot) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	engine *engine.Engine
	store  *ratings.Store
	hub    *hub.Hub
	sink   SnapshotSink
	log    zerolog.Logger
}

// NewHandler creates a new handler. The hub and sink are optional.
func NewHandler(eng *engine.Engine, store *ratings.Store, h *hub.Hub, sink SnapshotSink, log zerolog.Logger) *Handler {
	return &Handler{
		engine: eng,
		store:  store,
		hub:    h,
		sink:   sink,
		log:    log.With().Str("component", "handlers").Logger(),
	}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "line-model",
	})
}

// Evaluate runs the pipeline for a single game and returns the evaluation
// plus recommendation without publishing them anywhere.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	result, err := h.engine.EvaluateGame(req)
	if err != nil {
		respondError(w, statusForError(err), fmt.Sprintf("evaluation failed: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// EvaluateBatch evaluates many games; per-game failures are reported in the
// response items, never as a whole-batch failure.
func (h *Handler) EvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []models.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	items := h.engine.EvaluateBatch(r.Context(), reqs)

	respondJSON(w, http.StatusOK, items)
}

// GetRating returns a team's current power rating
func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	rating, err := h.store.CurrentRating(teamID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team_id": teamID,
		"rating":  rating,
	})
}

// GetRatingHistory returns a team's full snapshot history
func (h *Handler) GetRatingHistory(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	history := h.store.History(teamID)
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no rating history for team %s", teamID))
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// ratingUpdateRequest is the weekly update payload
type ratingUpdateRequest struct {
	Season              int                 `json:"season"`
	Week                int                 `json:"week"`
	TrueGamePerformance float64             `json:"true_game_performance"`
	Inputs              models.RatingInputs `json:"inputs"`
}

// UpdateRating records a weekly rating update for a team
func (h *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	var req ratingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	snapshot, err := h.store.RecordWeeklyUpdate(teamID, req.Season, req.Week, req.TrueGamePerformance, req.Inputs)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUpdate) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.sink != nil {
		if err := h.sink.WriteRatingSnapshot(r.Context(), snapshot); err != nil {
			h.log.Warn().Str("team_id", teamID).Err(err).Msg("failed to mirror rating snapshot")
		}
	}

	respondJSON(w, http.StatusCreated, snapshot)
}

// Metrics returns engine and hub counters
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	evaluated, plays, errs := h.engine.GetMetrics()

	payload := map[string]interface{}{
		"evaluated":      evaluated,
		"plays":          plays,
		"errors":         errs,
		"avg_latency_ms": strconv.FormatFloat(h.engine.GetAvgLatencyMs(), 'f', 1, 64),
	}

	if h.hub != nil {
		connections, messages := h.hub.Metrics()
		payload["ws_clients"] = h.hub.ClientCount()
		payload["ws_connections_total"] = connections
		payload["ws_messages_total"] = messages
	}

	respondJSON(w, http.StatusOK, payload)
}

// HandleWebSocket attaches a dashboard client to the hub
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "websocket feed not enabled")
		return
	}
	h.hub.HandleWebSocket(w, r)
}

// statusForError maps pipeline errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidMarket), errors.Is(err, models.ErrInvalidWeather):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrMissingRating), errors.Is(err, models.ErrNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrInvariantViolation):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
