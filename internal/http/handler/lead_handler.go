package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/http/middleware"
	"github.com/northbridge-capital/broker-api/internal/service"
	"go.uber.org/zap"
)

// LeadHandler handles HTTP requests for leads
type LeadHandler struct {
	leadService *service.LeadService
	logger      *zap.Logger
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadService *service.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Submit a lead
// @Description Scores and stores a finance lead from the public intake form
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body domain.CreateLeadRequest true "Lead intake form"
// @Success 201 {object} domain.CreateLeadResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /leads [post]
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.leadService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create lead", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	middleware.RecordLeadCreated(string(resp.Priority))
	respondJSON(w, http.StatusCreated, resp)
}

// CheckEmail godoc
// @Summary Check for an existing lead email
// @Description Returns whether a lead with the given email already exists
// @Tags Leads
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} domain.EmailExistsResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /leads/check-email [get]
func (h *LeadHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	if err := validate.Var(email, "email,max=255"); err != nil {
		respondWithError(w, http.StatusBadRequest, "Must be a valid email address")
		return
	}

	exists, err := h.leadService.EmailExists(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to check lead email", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to check email")
		return
	}

	respondJSON(w, http.StatusOK, domain.EmailExistsResponse{Exists: exists})
}

// List godoc
// @Summary List leads
// @Description Returns leads filtered by status, newest first
// @Tags Leads
// @Produce json
// @Param status query string false "Lead status" Enums(new, contacted, qualified, converted) default(new)
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads [get]
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.LeadStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.LeadStatusNew
	}
	switch status {
	case domain.LeadStatusNew, domain.LeadStatusContacted, domain.LeadStatusQualified, domain.LeadStatusConverted:
	default:
		respondWithError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	leads, err := h.leadService.ListByStatus(r.Context(), status, queryLimit(r))
	if err != nil {
		h.logger.Error("failed to list leads", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

// ListHot godoc
// @Summary List hot leads
// @Description Returns untouched hot-priority leads, newest first
// @Tags Leads
// @Produce json
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} domain.LeadDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/hot [get]
func (h *LeadHandler) ListHot(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.ListHot(r.Context(), queryLimit(r))
	if err != nil {
		h.logger.Error("failed to list hot leads", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list hot leads")
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

// ListRecent godoc
// @Summary List recent leads
// @Description Returns the most recently created leads regardless of status
// @Tags Leads
// @Produce json
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} domain.LeadDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/recent [get]
func (h *LeadHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.ListRecent(r.Context(), queryLimit(r))
	if err != nil {
		h.logger.Error("failed to list recent leads", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list recent leads")
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

// ListByTrade godoc
// @Summary List leads by trade
// @Description Returns leads for a given trade type, newest first
// @Tags Leads
// @Produce json
// @Param tradeType path string true "Trade type"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} domain.LeadDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/trade/{tradeType} [get]
func (h *LeadHandler) ListByTrade(w http.ResponseWriter, r *http.Request) {
	tradeType := chi.URLParam(r, "tradeType")

	leads, err := h.leadService.ListByTrade(r.Context(), tradeType, queryLimit(r))
	if err != nil {
		h.logger.Error("failed to list leads by trade", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list leads by trade")
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

// GetStats godoc
// @Summary Lead statistics
// @Description Returns aggregate lead counts and the average score for the dashboard
// @Tags Leads
// @Produce json
// @Success 200 {object} domain.LeadStats
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/stats [get]
func (h *LeadHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leadService.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to get lead stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get lead stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetByID godoc
// @Summary Get lead
// @Description Returns a single lead by ID
// @Tags Leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} domain.LeadDTO
// @Failure 400 {object} domain.APIError "Invalid ID"
// @Failure 404 {object} domain.APIError "Lead not found"
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			respondWithError(w, http.StatusNotFound, "Lead not found")
			return
		}
		h.logger.Error("failed to get lead", zap.Error(err), zap.String("lead_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get lead")
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

// UpdateStatus godoc
// @Summary Update lead status
// @Description Moves a lead to a new pipeline status
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body domain.UpdateLeadStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError "Lead not found"
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /leads/{id}/status [put]
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var req domain.UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.leadService.UpdateStatus(r.Context(), id, domain.LeadStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, service.ErrLeadNotFound):
			respondWithError(w, http.StatusNotFound, "Lead not found")
		case errors.Is(err, service.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update lead status", zap.Error(err), zap.String("lead_id", id.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to update lead status")
		}
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// queryLimit parses the limit query parameter, 0 meaning "use the default"
func queryLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 0 {
		return 0
	}
	return limit
}
