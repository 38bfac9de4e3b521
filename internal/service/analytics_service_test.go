package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"github.com/northbridge-capital/broker-api/internal/service"
	"github.com/northbridge-capital/broker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAnalyticsService(t *testing.T) (*service.AnalyticsService, *gorm.DB) {
	t.Helper()
	clk := clock.Fixed{T: testNow}
	db := testutil.NewTestDB(t, clk)
	repo := repository.NewAnalyticsRepository(db)
	return service.NewAnalyticsService(repo, clk, zap.NewNop()), db
}

func analyticsServiceAt(db *gorm.DB, at time.Time) *service.AnalyticsService {
	repo := repository.NewAnalyticsRepository(db)
	return service.NewAnalyticsService(repo, clock.Fixed{T: at}, zap.NewNop())
}

func pageView(session, path string) *domain.TrackEventRequest {
	return &domain.TrackEventRequest{
		EventType: domain.EventTypePageView,
		PagePath:  path,
		SessionID: session,
	}
}

func TestAnalyticsService_Track_PayloadStoredUntouched(t *testing.T) {
	svc, _ := newAnalyticsService(t)

	payload := json.RawMessage(`{"button":"get-quote","position":3}`)
	err := svc.Track(context.Background(), &domain.TrackEventRequest{
		EventType: "cta_click",
		EventData: payload,
		PagePath:  "/trades/roofer",
		SessionID: "sess-1",
	})
	require.NoError(t, err)

	events, err := svc.ListBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "cta_click", events[0].EventType)
	assert.JSONEq(t, string(payload), string(events[0].EventData))
	assert.Equal(t, "2025-03-10T12:00:00Z", events[0].CreatedAt)
}

func TestAnalyticsService_ListBySession_OldestFirst(t *testing.T) {
	svc, db := newAnalyticsService(t)

	later := analyticsServiceAt(db, testNow.Add(time.Minute))
	require.NoError(t, later.Track(context.Background(), pageView("sess-2", "/second")))
	require.NoError(t, svc.Track(context.Background(), pageView("sess-2", "/first")))

	events, err := svc.ListBySession(context.Background(), "sess-2")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "/first", events[0].PagePath)
	assert.Equal(t, "/second", events[1].PagePath)
}

func TestAnalyticsService_GetPageViewStats_DefaultWindow(t *testing.T) {
	svc, db := newAnalyticsService(t)

	require.NoError(t, svc.Track(context.Background(), pageView("sess-a", "/")))
	require.NoError(t, svc.Track(context.Background(), pageView("sess-a", "/calculator")))
	require.NoError(t, svc.Track(context.Background(), pageView("sess-b", "/")))

	// Not a page view: excluded from the aggregate
	require.NoError(t, svc.Track(context.Background(), &domain.TrackEventRequest{
		EventType: "cta_click",
		PagePath:  "/",
		SessionID: "sess-a",
	}))

	// Outside the trailing seven days: excluded
	old := analyticsServiceAt(db, testNow.AddDate(0, 0, -8))
	require.NoError(t, old.Track(context.Background(), pageView("sess-c", "/")))

	stats, err := svc.GetPageViewStats(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByPage["/"])
	assert.Equal(t, int64(1), stats.ByPage["/calculator"])
	assert.Equal(t, int64(2), stats.UniqueSessions)
	assert.Equal(t, testNow, stats.EndDate)
	assert.Equal(t, testNow.Add(-7*24*time.Hour), stats.StartDate)
}

func TestAnalyticsService_GetPageViewStats_ExplicitRange(t *testing.T) {
	svc, db := newAnalyticsService(t)

	require.NoError(t, svc.Track(context.Background(), pageView("sess-a", "/")))
	old := analyticsServiceAt(db, testNow.AddDate(0, 0, -20))
	require.NoError(t, old.Track(context.Background(), pageView("sess-b", "/")))

	start := testNow.AddDate(0, 0, -30)
	end := testNow
	stats, err := svc.GetPageViewStats(context.Background(), &start, &end)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, start, stats.StartDate)
	assert.Equal(t, end, stats.EndDate)
}

func TestAnalyticsService_PurgeOldEvents(t *testing.T) {
	svc, db := newAnalyticsService(t)

	require.NoError(t, svc.Track(context.Background(), pageView("sess-keep", "/")))
	old := analyticsServiceAt(db, testNow.AddDate(0, 0, -100))
	require.NoError(t, old.Track(context.Background(), pageView("sess-drop", "/")))

	purged, err := svc.PurgeOldEvents(context.Background(), 90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	kept, err := svc.ListBySession(context.Background(), "sess-keep")
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	dropped, err := svc.ListBySession(context.Background(), "sess-drop")
	require.NoError(t, err)
	assert.Empty(t, dropped)
}
