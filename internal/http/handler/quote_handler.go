package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/finance"
	"github.com/northbridge-capital/broker-api/internal/http/middleware"
	"github.com/northbridge-capital/broker-api/internal/service"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for the loan calculator
type QuoteHandler struct {
	quoteService *service.QuoteService
	logger       *zap.Logger
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *service.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// Save godoc
// @Summary Save a quote calculation
// @Description Persists one calculator run exactly as submitted
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body domain.SaveQuoteRequest true "Calculator figures"
// @Success 201 {object} domain.SaveQuoteResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /quotes [post]
func (h *QuoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.quoteService.Save(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to save quote", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to save quote")
		return
	}

	middleware.RecordQuoteSaved()
	respondJSON(w, http.StatusCreated, resp)
}

// Calculate godoc
// @Summary Calculate loan figures
// @Description Runs the amortization formula without storing anything
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body domain.CalculateRequest true "Loan parameters"
// @Success 200 {object} domain.CalculateResponse
// @Failure 400 {object} domain.APIError
// @Router /quotes/calculate [post]
func (h *QuoteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.quoteService.Calculate(&req)
	if err != nil {
		if errors.Is(err, finance.ErrNonPositivePrincipal) ||
			errors.Is(err, finance.ErrNonPositiveTerm) ||
			errors.Is(err, finance.ErrNegativeRate) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to calculate quote", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to calculate quote")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListBySession godoc
// @Summary List quotes by session
// @Description Returns all quotes saved under a browser session, newest first
// @Tags Quotes
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} domain.QuoteDTO
// @Failure 500 {object} domain.APIError
// @Router /quotes/session/{sessionId} [get]
func (h *QuoteHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	quotes, err := h.quoteService.ListBySession(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to list quotes by session", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list quotes")
		return
	}

	respondJSON(w, http.StatusOK, quotes)
}

// ListByLead godoc
// @Summary List quotes by lead
// @Description Returns all quotes linked to a lead, newest first
// @Tags Quotes
// @Produce json
// @Param leadId path string true "Lead ID"
// @Success 200 {array} domain.QuoteDTO
// @Failure 400 {object} domain.APIError "Invalid ID"
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotes/lead/{leadId} [get]
func (h *QuoteHandler) ListByLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := uuid.Parse(chi.URLParam(r, "leadId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	quotes, err := h.quoteService.ListByLead(r.Context(), leadID)
	if err != nil {
		h.logger.Error("failed to list quotes by lead", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list quotes")
		return
	}

	respondJSON(w, http.StatusOK, quotes)
}

// GetStats godoc
// @Summary Calculator statistics
// @Description Returns aggregate calculator usage for the dashboard
// @Tags Quotes
// @Produce json
// @Success 200 {object} domain.CalculatorStats
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotes/stats [get]
func (h *QuoteHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.quoteService.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to get calculator stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get calculator stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
