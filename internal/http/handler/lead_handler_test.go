package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/config"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/http/handler"
	"github.com/northbridge-capital/broker-api/internal/mail"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"github.com/northbridge-capital/broker-api/internal/service"
	"github.com/northbridge-capital/broker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var handlerTestNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newLeadRouter(t *testing.T) chi.Router {
	t.Helper()
	clk := clock.Fixed{T: handlerTestNow}
	db := testutil.NewTestDB(t, clk)
	repo := repository.NewLeadRepository(db)
	notifier := mail.NewNotifier(&config.MailConfig{Enabled: false}, zap.NewNop())
	svc := service.NewLeadService(repo, notifier, clk, zap.NewNop())
	h := handler.NewLeadHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/leads", h.Create)
	r.Get("/leads/check-email", h.CheckEmail)
	r.Get("/leads/{id}", h.GetByID)
	r.Put("/leads/{id}/status", h.UpdateStatus)
	return r
}

const validLeadJSON = `{
	"fullName": "Sarah Hughes",
	"email": "sarah@hughesroofing.co.uk",
	"tradeType": "roofer",
	"location": {"county": "Kent", "town": "Maidstone"},
	"financeDetails": {"amount": 150000, "purpose": "new scaffolding fleet", "urgency": "urgent"},
	"businessInfo": {"yearsTrading": "5+", "annualRevenue": "500k+", "creditScore": "excellent"}
}`

func TestLeadHandler_Create(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(validLeadJSON))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.CreateLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, domain.LeadPriorityHot, resp.Priority)
	assert.NotEqual(t, uuid.Nil, resp.LeadID)
}

func TestLeadHandler_Create_ValidationError(t *testing.T) {
	r := newLeadRouter(t)

	body := `{"fullName": "No Email", "location": {"county": "Kent", "town": "Maidstone"}, "financeDetails": {"amount": 1, "purpose": "x", "urgency": "urgent"}}`
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "email")
}

func TestLeadHandler_Create_MalformedJSON(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_CheckEmail(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(validLeadJSON))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/leads/check-email?email=sarah@hughesroofing.co.uk", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.EmailExistsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)

	req = httptest.NewRequest(http.MethodGet, "/leads/check-email?email=nobody@example.com", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
}

func TestLeadHandler_CheckEmail_MissingParameter(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/leads/check-email", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_GetByID_NotFound(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/leads/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadHandler_GetByID_InvalidID(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/leads/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_UpdateStatus(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(validLeadJSON))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.CreateLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req = httptest.NewRequest(http.MethodPut, "/leads/"+created.LeadID.String()+"/status",
		strings.NewReader(`{"status": "contacted"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/leads/"+created.LeadID.String(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var lead domain.LeadDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, domain.LeadStatusContacted, lead.Status)
	require.NotNil(t, lead.LastContactedAt)
}

func TestLeadHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/leads/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status": "archived"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_UpdateStatus_UnknownLead(t *testing.T) {
	r := newLeadRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/leads/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status": "contacted"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
