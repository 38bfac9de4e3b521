package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/finance"
	"github.com/northbridge-capital/broker-api/internal/mapper"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"go.uber.org/zap"
)

type QuoteService struct {
	quoteRepo *repository.QuoteRepository
	clk       clock.Clock
	logger    *zap.Logger
}

func NewQuoteService(
	quoteRepo *repository.QuoteRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		quoteRepo: quoteRepo,
		clk:       clk,
		logger:    logger,
	}
}

// Save persists one calculator run. The derived figures are stored as the
// calculator submitted them; this endpoint does not recompute or verify
// them against the amortization formula.
func (s *QuoteService) Save(ctx context.Context, req *domain.SaveQuoteRequest) (*domain.SaveQuoteResponse, error) {
	quote := &domain.QuoteCalculation{
		LoanAmount:     req.LoanAmount,
		TermMonths:     req.TermMonths,
		InterestRate:   req.InterestRate,
		MonthlyPayment: req.MonthlyPayment,
		TotalInterest:  req.TotalInterest,
		TotalAmount:    req.TotalAmount,
		TradeType:      req.TradeType,
		County:         req.County,
		Town:           req.Town,
		LeadID:         req.LeadID,
		SessionID:      req.SessionID,
		CreatedAt:      s.clk.Now(),
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote calculation: %w", err)
	}

	return &domain.SaveQuoteResponse{QuoteID: quote.ID}, nil
}

// Calculate runs the amortization formula without persisting anything
func (s *QuoteService) Calculate(req *domain.CalculateRequest) (*domain.CalculateResponse, error) {
	result, err := finance.Amortize(req.LoanAmount, req.InterestRate, req.TermMonths)
	if err != nil {
		return nil, err
	}

	return &domain.CalculateResponse{
		MonthlyPayment: result.MonthlyPayment,
		TotalInterest:  result.TotalInterest,
		TotalAmount:    result.TotalAmount,
	}, nil
}

func (s *QuoteService) ListBySession(ctx context.Context, sessionID string) ([]domain.QuoteDTO, error) {
	quotes, err := s.quoteRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes by session: %w", err)
	}
	return mapper.ToQuoteDTOs(quotes), nil
}

func (s *QuoteService) ListByLead(ctx context.Context, leadID uuid.UUID) ([]domain.QuoteDTO, error) {
	quotes, err := s.quoteRepo.ListByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes by lead: %w", err)
	}
	return mapper.ToQuoteDTOs(quotes), nil
}

func (s *QuoteService) GetStats(ctx context.Context) (*domain.CalculatorStats, error) {
	stats, err := s.quoteRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get calculator stats: %w", err)
	}
	return stats, nil
}
