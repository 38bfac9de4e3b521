package repository

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"gorm.io/gorm"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, quote *domain.QuoteCalculation) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *QuoteRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.QuoteCalculation, error) {
	var quotes []domain.QuoteCalculation
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}

func (r *QuoteRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]domain.QuoteCalculation, error) {
	var quotes []domain.QuoteCalculation
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}

// GetStats aggregates the quote table. Amount and term averages are
// rounded to the nearest whole number, the rate average to two decimals.
func (r *QuoteRepository) GetStats(ctx context.Context) (*domain.CalculatorStats, error) {
	stats := &domain.CalculatorStats{
		ByTrade: make(map[string]int64),
	}

	if err := r.db.WithContext(ctx).Model(&domain.QuoteCalculation{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var averages struct {
		AvgLoanAmount   float64
		AvgTermMonths   float64
		AvgInterestRate float64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.QuoteCalculation{}).
		Select(
			"COALESCE(AVG(loan_amount), 0) as avg_loan_amount, " +
				"COALESCE(AVG(term_months), 0) as avg_term_months, " +
				"COALESCE(AVG(interest_rate), 0) as avg_interest_rate",
		).
		Scan(&averages).Error; err != nil {
		return nil, err
	}
	stats.AvgLoanAmount = int64(math.Round(averages.AvgLoanAmount))
	stats.AvgTermMonths = int64(math.Round(averages.AvgTermMonths))
	stats.AvgInterestRate = math.Round(averages.AvgInterestRate*100) / 100

	var tradeRows []struct {
		TradeType string
		Count     int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.QuoteCalculation{}).
		Select("trade_type, COUNT(*) as count").
		Where("trade_type <> ''").
		Group("trade_type").
		Scan(&tradeRows).Error; err != nil {
		return nil, err
	}
	for _, row := range tradeRows {
		stats.ByTrade[row.TradeType] = row.Count
	}

	return stats, nil
}
