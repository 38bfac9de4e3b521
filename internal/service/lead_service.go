package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/mail"
	"github.com/northbridge-capital/broker-api/internal/mapper"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"github.com/northbridge-capital/broker-api/internal/scoring"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultLeadLimit = 50
	defaultHotLimit  = 20
	maxLeadLimit     = 200
)

type LeadService struct {
	leadRepo *repository.LeadRepository
	notifier *mail.Notifier
	clk      clock.Clock
	logger   *zap.Logger
}

func NewLeadService(
	leadRepo *repository.LeadRepository,
	notifier *mail.Notifier,
	clk clock.Clock,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		leadRepo: leadRepo,
		notifier: notifier,
		clk:      clk,
		logger:   logger,
	}
}

// Create scores the intake form and persists the lead. The score and
// priority are computed here, once; status updates never re-score.
func (s *LeadService) Create(ctx context.Context, req *domain.CreateLeadRequest) (*domain.CreateLeadResponse, error) {
	in := scoring.Input{
		Amount:  req.FinanceDetails.Amount,
		Urgency: req.FinanceDetails.Urgency,
	}
	if req.BusinessInfo != nil {
		in.YearsTrading = req.BusinessInfo.YearsTrading
		in.AnnualRevenue = req.BusinessInfo.AnnualRevenue
		in.CreditScore = req.BusinessInfo.CreditScore
	}
	result := scoring.Score(in)

	now := s.clk.Now()
	lead := &domain.Lead{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		CompanyName:   req.CompanyName,
		County:        req.Location.County,
		Town:          req.Location.Town,
		Postcode:      req.Location.Postcode,
		Amount:        req.FinanceDetails.Amount,
		Purpose:       req.FinanceDetails.Purpose,
		Urgency:       req.FinanceDetails.Urgency,
		TermMonths:    req.FinanceDetails.TermMonths,
		PreferredRate: req.FinanceDetails.PreferredRate,
		TradeType:     req.TradeType,
		Score:         result.Score,
		Priority:      result.Priority,
		Status:        domain.LeadStatusNew,
	}
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if req.BusinessInfo != nil {
		lead.YearsTrading = req.BusinessInfo.YearsTrading
		lead.AnnualRevenue = req.BusinessInfo.AnnualRevenue
		lead.Employees = req.BusinessInfo.Employees
		lead.Certifications = req.BusinessInfo.Certifications
		lead.CreditScore = req.BusinessInfo.CreditScore
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.Info("lead created",
		zap.String("lead_id", lead.ID.String()),
		zap.Int("score", lead.Score),
		zap.String("priority", string(lead.Priority)),
	)

	if lead.Priority == domain.LeadPriorityHot {
		s.notifier.NotifyHotLead(lead)
	}

	return &domain.CreateLeadResponse{
		LeadID:   lead.ID,
		Score:    result.Score,
		Priority: result.Priority,
	}, nil
}

// UpdateStatus moves a lead to a new pipeline status. Any value in the
// closed status set is accepted from any current status; transition order
// is not enforced. LastContactedAt is stamped only when the new status is
// "contacted".
func (s *LeadService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) error {
	switch status {
	case domain.LeadStatusNew, domain.LeadStatusContacted, domain.LeadStatusQualified, domain.LeadStatusConverted:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	now := s.clk.Now()
	var lastContactedAt *time.Time
	if status == domain.LeadStatusContacted {
		lastContactedAt = &now
	}

	affected, err := s.leadRepo.UpdateStatus(ctx, id, status, now, lastContactedAt)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if affected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeadDTO, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) ListByStatus(ctx context.Context, status domain.LeadStatus, limit int) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.ListByStatus(ctx, status, clampLimit(limit, defaultLeadLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list leads by status: %w", err)
	}
	return mapper.ToLeadDTOs(leads), nil
}

func (s *LeadService) ListHot(ctx context.Context, limit int) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.ListHot(ctx, clampLimit(limit, defaultHotLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list hot leads: %w", err)
	}
	return mapper.ToLeadDTOs(leads), nil
}

func (s *LeadService) ListRecent(ctx context.Context, limit int) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.ListRecent(ctx, clampLimit(limit, defaultLeadLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leads: %w", err)
	}
	return mapper.ToLeadDTOs(leads), nil
}

func (s *LeadService) ListByTrade(ctx context.Context, tradeType string, limit int) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.ListByTrade(ctx, tradeType, clampLimit(limit, defaultLeadLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list leads by trade: %w", err)
	}
	return mapper.ToLeadDTOs(leads), nil
}

func (s *LeadService) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.leadRepo.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (s *LeadService) GetStats(ctx context.Context) (*domain.LeadStats, error) {
	stats, err := s.leadRepo.GetStats(ctx, s.clk.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get lead stats: %w", err)
	}
	return stats, nil
}

// clampLimit applies the default and ceiling to a caller-supplied limit
func clampLimit(limit, def int) int {
	if limit < 1 {
		return def
	}
	if limit > maxLeadLimit {
		return maxLeadLimit
	}
	return limit
}
