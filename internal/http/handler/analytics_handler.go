package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/service"
	"go.uber.org/zap"
)

// AnalyticsHandler handles HTTP requests for analytics events
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Track godoc
// @Summary Track an event
// @Description Records one analytics event from the public site
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body domain.TrackEventRequest true "Event payload"
// @Success 202 "Accepted"
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /events [post]
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req domain.TrackEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.analyticsService.Track(r.Context(), &req); err != nil {
		h.logger.Error("failed to track event", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to track event")
		return
	}

	respondJSON(w, http.StatusAccepted, nil)
}

// ListBySession godoc
// @Summary List events by session
// @Description Returns all events recorded under a browser session, oldest first
// @Tags Analytics
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} domain.AnalyticsEventDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /events/session/{sessionId} [get]
func (h *AnalyticsHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	events, err := h.analyticsService.ListBySession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to list events by session", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	respondJSON(w, http.StatusOK, events)
}

// GetPageViewStats godoc
// @Summary Page view statistics
// @Description Returns page view aggregates over a date range, defaulting to the trailing seven days
// @Tags Analytics
// @Produce json
// @Param startDate query string false "Range start (RFC 3339)"
// @Param endDate query string false "Range end (RFC 3339)"
// @Success 200 {object} domain.PageViewStats
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /events/pageviews [get]
func (h *AnalyticsHandler) GetPageViewStats(w http.ResponseWriter, r *http.Request) {
	start, err := queryTime(r, "startDate")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "startDate must be an RFC 3339 timestamp")
		return
	}
	end, err := queryTime(r, "endDate")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "endDate must be an RFC 3339 timestamp")
		return
	}

	stats, err := h.analyticsService.GetPageViewStats(r.Context(), start, end)
	if err != nil {
		h.logger.Error("failed to get page view stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get page view stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// queryTime parses an optional RFC 3339 query parameter
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
