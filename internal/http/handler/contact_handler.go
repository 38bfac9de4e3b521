package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/http/middleware"
	"github.com/northbridge-capital/broker-api/internal/service"
	"go.uber.org/zap"
)

// ContactHandler handles HTTP requests for contact form submissions
type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Submit a contact form
// @Description Stores a contact form submission and notifies the sales inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body domain.CreateContactRequest true "Contact form"
// @Success 201 {object} domain.CreateContactResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /contact [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.contactService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create contact submission", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create contact submission")
		return
	}

	middleware.RecordContactSubmission()
	respondJSON(w, http.StatusCreated, resp)
}

// List godoc
// @Summary List contact submissions
// @Description Returns contact submissions, newest first, optionally filtered by status
// @Tags Contact
// @Produce json
// @Param status query string false "Submission status" Enums(new, replied)
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} domain.ContactSubmissionDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contact [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *domain.ContactStatus
	if s := r.URL.Query().Get("status"); s != "" {
		cs := domain.ContactStatus(s)
		switch cs {
		case domain.ContactStatusNew, domain.ContactStatusReplied:
			status = &cs
		default:
			respondWithError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
	}

	submissions, err := h.contactService.List(r.Context(), status, queryLimit(r))
	if err != nil {
		h.logger.Error("failed to list contact submissions", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list contact submissions")
		return
	}

	respondJSON(w, http.StatusOK, submissions)
}

// UpdateStatus godoc
// @Summary Update submission status
// @Description Marks a contact submission as new or replied
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body domain.UpdateContactStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError "Submission not found"
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contact/{id}/status [put]
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	var req domain.UpdateContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.contactService.UpdateStatus(r.Context(), id, domain.ContactStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			respondWithError(w, http.StatusNotFound, "Submission not found")
		case errors.Is(err, service.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update submission status", zap.Error(err), zap.String("submission_id", id.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to update submission status")
		}
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
