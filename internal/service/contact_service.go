package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/mail"
	"github.com/northbridge-capital/broker-api/internal/mapper"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"go.uber.org/zap"
)

type ContactService struct {
	contactRepo *repository.ContactRepository
	notifier    *mail.Notifier
	clk         clock.Clock
	logger      *zap.Logger
}

func NewContactService(
	contactRepo *repository.ContactRepository,
	notifier *mail.Notifier,
	clk clock.Clock,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		clk:         clk,
		logger:      logger,
	}
}

func (s *ContactService) Create(ctx context.Context, req *domain.CreateContactRequest) (*domain.CreateContactResponse, error) {
	submission := &domain.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		LeadID:    req.LeadID,
		Status:    domain.ContactStatusNew,
		CreatedAt: s.clk.Now(),
	}

	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	s.logger.Info("contact submission created",
		zap.String("submission_id", submission.ID.String()),
		zap.String("subject", submission.Subject),
	)

	s.notifier.NotifyContactSubmission(submission)

	return &domain.CreateContactResponse{SubmissionID: submission.ID}, nil
}

func (s *ContactService) List(ctx context.Context, status *domain.ContactStatus, limit int) ([]domain.ContactSubmissionDTO, error) {
	submissions, err := s.contactRepo.List(ctx, status, clampLimit(limit, defaultLeadLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return mapper.ToContactSubmissionDTOs(submissions), nil
}

// UpdateStatus changes a submission's handling status. RepliedAt is
// stamped only when the new status is "replied".
func (s *ContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) error {
	switch status {
	case domain.ContactStatusNew, domain.ContactStatusReplied:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var repliedAt *time.Time
	if status == domain.ContactStatusReplied {
		now := s.clk.Now()
		repliedAt = &now
	}

	affected, err := s.contactRepo.UpdateStatus(ctx, id, status, repliedAt)
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}
	if affected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}
