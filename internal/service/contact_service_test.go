package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
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

func newContactService(t *testing.T) (*service.ContactService, *gorm.DB) {
	t.Helper()
	clk := clock.Fixed{T: testNow}
	db := testutil.NewTestDB(t, clk)
	repo := repository.NewContactRepository(db)
	return service.NewContactService(repo, newNotifier(), clk, zap.NewNop()), db
}

func contactServiceAt(db *gorm.DB, at time.Time) *service.ContactService {
	repo := repository.NewContactRepository(db)
	return service.NewContactService(repo, newNotifier(), clock.Fixed{T: at}, zap.NewNop())
}

func sampleContact() *domain.CreateContactRequest {
	return &domain.CreateContactRequest{
		Name:    "Maya Okafor",
		Email:   "maya@okafordrainage.co.uk",
		Subject: "Asset finance question",
		Message: "Looking to finance a second CCTV drainage van.",
	}
}

func TestContactService_Create(t *testing.T) {
	svc, _ := newContactService(t)

	resp, err := svc.Create(context.Background(), sampleContact())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.SubmissionID)

	submissions, err := svc.List(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, resp.SubmissionID, submissions[0].ID)
	assert.Equal(t, domain.ContactStatusNew, submissions[0].Status)
	assert.Equal(t, "2025-03-10T12:00:00Z", submissions[0].CreatedAt)
	assert.Nil(t, submissions[0].RepliedAt)
}

func TestContactService_List_StatusFilter(t *testing.T) {
	svc, _ := newContactService(t)

	first, err := svc.Create(context.Background(), sampleContact())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), sampleContact())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), first.SubmissionID, domain.ContactStatusReplied))

	replied := domain.ContactStatusReplied
	submissions, err := svc.List(context.Background(), &replied, 0)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, first.SubmissionID, submissions[0].ID)

	fresh := domain.ContactStatusNew
	submissions, err = svc.List(context.Background(), &fresh, 0)
	require.NoError(t, err)
	assert.Len(t, submissions, 1)
}

func TestContactService_UpdateStatus_RepliedStampsRepliedAt(t *testing.T) {
	svc, db := newContactService(t)

	resp, err := svc.Create(context.Background(), sampleContact())
	require.NoError(t, err)

	later := contactServiceAt(db, testNow.Add(30*time.Minute))
	require.NoError(t, later.UpdateStatus(context.Background(), resp.SubmissionID, domain.ContactStatusReplied))

	submissions, err := svc.List(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, domain.ContactStatusReplied, submissions[0].Status)
	require.NotNil(t, submissions[0].RepliedAt)
	assert.Equal(t, "2025-03-10T12:30:00Z", *submissions[0].RepliedAt)
}

func TestContactService_UpdateStatus_BackToNewKeepsRepliedAt(t *testing.T) {
	svc, _ := newContactService(t)

	resp, err := svc.Create(context.Background(), sampleContact())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.SubmissionID, domain.ContactStatusReplied))
	require.NoError(t, svc.UpdateStatus(context.Background(), resp.SubmissionID, domain.ContactStatusNew))

	submissions, err := svc.List(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, domain.ContactStatusNew, submissions[0].Status)
	assert.NotNil(t, submissions[0].RepliedAt)
}

func TestContactService_UpdateStatus_UnknownSubmission(t *testing.T) {
	svc, _ := newContactService(t)

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.ContactStatusReplied)
	assert.ErrorIs(t, err, service.ErrSubmissionNotFound)
}

func TestContactService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newContactService(t)

	resp, err := svc.Create(context.Background(), sampleContact())
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), resp.SubmissionID, domain.ContactStatus("spam"))
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}
