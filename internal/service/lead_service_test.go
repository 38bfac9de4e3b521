package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/config"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/mail"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"github.com/northbridge-capital/broker-api/internal/service"
	"github.com/northbridge-capital/broker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newNotifier() *mail.Notifier {
	return mail.NewNotifier(&config.MailConfig{Enabled: false}, zap.NewNop())
}

func newLeadService(t *testing.T) (*service.LeadService, *gorm.DB) {
	t.Helper()
	clk := clock.Fixed{T: testNow}
	db := testutil.NewTestDB(t, clk)
	repo := repository.NewLeadRepository(db)
	return service.NewLeadService(repo, newNotifier(), clk, zap.NewNop()), db
}

// leadServiceAt builds a service over an existing database with a
// different frozen time, so tests can create records at distinct instants
func leadServiceAt(db *gorm.DB, at time.Time) *service.LeadService {
	repo := repository.NewLeadRepository(db)
	return service.NewLeadService(repo, newNotifier(), clock.Fixed{T: at}, zap.NewNop())
}

func maxScoreLead() *domain.CreateLeadRequest {
	return &domain.CreateLeadRequest{
		FullName:  "Sarah Hughes",
		Email:     "sarah@hughesroofing.co.uk",
		TradeType: "roofer",
		Location:  domain.LocationInput{County: "Kent", Town: "Maidstone"},
		FinanceDetails: domain.FinanceDetailsInput{
			Amount:  150000,
			Purpose: "new scaffolding fleet",
			Urgency: domain.UrgencyUrgent,
		},
		BusinessInfo: &domain.BusinessInfoInput{
			YearsTrading:  "5+",
			AnnualRevenue: "500k+",
			CreditScore:   "excellent",
		},
	}
}

func TestLeadService_Create_MaxInputScoresHot(t *testing.T) {
	svc, _ := newLeadService(t)

	resp, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)

	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, domain.LeadPriorityHot, resp.Priority)
	assert.NotEqual(t, uuid.Nil, resp.LeadID)

	lead, err := svc.GetByID(context.Background(), resp.LeadID)
	require.NoError(t, err)
	assert.Equal(t, 100, lead.Score)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, "2025-03-10T12:00:00Z", lead.CreatedAt)
	assert.Nil(t, lead.LastContactedAt)
}

func TestLeadService_Create_MinimalInputScoresCold(t *testing.T) {
	svc, _ := newLeadService(t)

	resp, err := svc.Create(context.Background(), &domain.CreateLeadRequest{
		FullName: "Tom Price",
		Email:    "tom@example.com",
		Location: domain.LocationInput{County: "Devon", Town: "Exeter"},
		FinanceDetails: domain.FinanceDetailsInput{
			Amount:  1000,
			Purpose: "van repairs",
			Urgency: domain.UrgencyPlanning,
		},
	})
	require.NoError(t, err)

	// 5 amount points + 5 urgency points, no business info
	assert.Equal(t, 10, resp.Score)
	assert.Equal(t, domain.LeadPriorityCold, resp.Priority)
}

func TestLeadService_Create_UnrecognizedUrgencyStillScores(t *testing.T) {
	svc, _ := newLeadService(t)

	resp, err := svc.Create(context.Background(), &domain.CreateLeadRequest{
		FullName: "Ana Costa",
		Email:    "ana@example.com",
		Location: domain.LocationInput{County: "Surrey", Town: "Woking"},
		FinanceDetails: domain.FinanceDetailsInput{
			Amount:  60000,
			Purpose: "machinery",
			Urgency: "whenever",
		},
	})
	require.NoError(t, err)

	// 25 amount points, zero urgency points
	assert.Equal(t, 25, resp.Score)
	assert.Equal(t, domain.LeadPriorityCold, resp.Priority)
}

func TestLeadService_UpdateStatus_DoesNotRescore(t *testing.T) {
	svc, _ := newLeadService(t)

	resp, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), resp.LeadID, domain.LeadStatusQualified))

	lead, err := svc.GetByID(context.Background(), resp.LeadID)
	require.NoError(t, err)
	assert.Equal(t, 100, lead.Score)
	assert.Equal(t, domain.LeadPriorityHot, lead.Priority)
	assert.Equal(t, domain.LeadStatusQualified, lead.Status)
}

func TestLeadService_UpdateStatus_ContactedStampsLastContactedAt(t *testing.T) {
	svc, db := newLeadService(t)

	resp, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)

	contactedAt := testNow.Add(2 * time.Hour)
	later := leadServiceAt(db, contactedAt)
	require.NoError(t, later.UpdateStatus(context.Background(), resp.LeadID, domain.LeadStatusContacted))

	lead, err := svc.GetByID(context.Background(), resp.LeadID)
	require.NoError(t, err)
	require.NotNil(t, lead.LastContactedAt)
	assert.Equal(t, "2025-03-10T14:00:00Z", *lead.LastContactedAt)

	// Moving on to qualified must not clear the contact timestamp
	require.NoError(t, later.UpdateStatus(context.Background(), resp.LeadID, domain.LeadStatusQualified))
	lead, err = svc.GetByID(context.Background(), resp.LeadID)
	require.NoError(t, err)
	require.NotNil(t, lead.LastContactedAt)
	assert.Equal(t, "2025-03-10T14:00:00Z", *lead.LastContactedAt)
}

func TestLeadService_UpdateStatus_UnknownLead(t *testing.T) {
	svc, _ := newLeadService(t)

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.LeadStatusContacted)
	assert.ErrorIs(t, err, service.ErrLeadNotFound)
}

func TestLeadService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newLeadService(t)

	resp, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), resp.LeadID, domain.LeadStatus("archived"))
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestLeadService_GetByID_NotFound(t *testing.T) {
	svc, _ := newLeadService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrLeadNotFound)
}

func TestLeadService_EmailExists(t *testing.T) {
	svc, _ := newLeadService(t)

	_, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)

	exists, err := svc.EmailExists(context.Background(), "sarah@hughesroofing.co.uk")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.EmailExists(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLeadService_GetStats_EmptyTable(t *testing.T) {
	svc, _ := newLeadService(t)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, int64(0), stats.Today)
	assert.Equal(t, int64(0), stats.ThisWeek)
	assert.Equal(t, int64(0), stats.ThisMonth)
	assert.Equal(t, float64(0), stats.AvgScore)

	// Every status and priority key is present even on an empty table
	assert.Len(t, stats.ByStatus, 4)
	assert.Len(t, stats.ByPriority, 3)
	for _, status := range []domain.LeadStatus{
		domain.LeadStatusNew, domain.LeadStatusContacted,
		domain.LeadStatusQualified, domain.LeadStatusConverted,
	} {
		count, ok := stats.ByStatus[status]
		assert.True(t, ok)
		assert.Equal(t, int64(0), count)
	}
}

func TestLeadService_GetStats_CountsAndAverage(t *testing.T) {
	svc, db := newLeadService(t)

	_, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)

	// Second lead created ten days back: outside the 24h and 7d windows
	old := leadServiceAt(db, testNow.AddDate(0, 0, -10))
	_, err = old.Create(context.Background(), &domain.CreateLeadRequest{
		FullName: "Tom Price",
		Email:    "tom@example.com",
		Location: domain.LocationInput{County: "Devon", Town: "Exeter"},
		FinanceDetails: domain.FinanceDetailsInput{
			Amount:  1000,
			Purpose: "van repairs",
			Urgency: domain.UrgencyPlanning,
		},
	})
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Today)
	assert.Equal(t, int64(1), stats.ThisWeek)
	assert.Equal(t, int64(2), stats.ThisMonth)
	assert.Equal(t, int64(2), stats.ByStatus[domain.LeadStatusNew])
	assert.Equal(t, int64(1), stats.ByPriority[domain.LeadPriorityHot])
	assert.Equal(t, int64(1), stats.ByPriority[domain.LeadPriorityCold])
	assert.Equal(t, float64(55), stats.AvgScore) // (100 + 10) / 2
}

func TestLeadService_ListHot_OnlyUntouchedHotLeads(t *testing.T) {
	svc, _ := newLeadService(t)

	hot, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)
	require.Equal(t, domain.LeadPriorityHot, hot.Priority)

	worked := maxScoreLead()
	worked.Email = "worked@example.com"
	workedResp, err := svc.Create(context.Background(), worked)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), workedResp.LeadID, domain.LeadStatusContacted))

	cold, err := svc.Create(context.Background(), &domain.CreateLeadRequest{
		FullName: "Tom Price",
		Email:    "tom@example.com",
		Location: domain.LocationInput{County: "Devon", Town: "Exeter"},
		FinanceDetails: domain.FinanceDetailsInput{
			Amount:  1000,
			Purpose: "van repairs",
			Urgency: domain.UrgencyPlanning,
		},
	})
	require.NoError(t, err)
	require.Equal(t, domain.LeadPriorityCold, cold.Priority)

	leads, err := svc.ListHot(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, hot.LeadID, leads[0].ID)
}

func TestLeadService_ListByStatus(t *testing.T) {
	svc, _ := newLeadService(t)

	resp, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.LeadID, domain.LeadStatusConverted))

	converted, err := svc.ListByStatus(context.Background(), domain.LeadStatusConverted, 0)
	require.NoError(t, err)
	require.Len(t, converted, 1)
	assert.Equal(t, resp.LeadID, converted[0].ID)

	fresh, err := svc.ListByStatus(context.Background(), domain.LeadStatusNew, 0)
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestLeadService_ListByTrade(t *testing.T) {
	svc, _ := newLeadService(t)

	roofer, err := svc.Create(context.Background(), maxScoreLead())
	require.NoError(t, err)

	other := maxScoreLead()
	other.Email = "plumber@example.com"
	other.TradeType = "plumber"
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	leads, err := svc.ListByTrade(context.Background(), "roofer", 0)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, roofer.LeadID, leads[0].ID)
}
