package service

import (
	"context"
	"fmt"
	"time"

	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"github.com/northbridge-capital/broker-api/internal/mapper"
	"github.com/northbridge-capital/broker-api/internal/repository"
	"go.uber.org/zap"
)

// defaultPageViewWindow is the trailing window used when the caller does
// not supply a date range
const defaultPageViewWindow = 7 * 24 * time.Hour

type AnalyticsService struct {
	analyticsRepo *repository.AnalyticsRepository
	clk           clock.Clock
	logger        *zap.Logger
}

func NewAnalyticsService(
	analyticsRepo *repository.AnalyticsRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		clk:           clk,
		logger:        logger,
	}
}

// Track appends one event. The payload is stored untouched; nothing in
// the backend ever inspects it.
func (s *AnalyticsService) Track(ctx context.Context, req *domain.TrackEventRequest) error {
	event := &domain.AnalyticsEvent{
		EventType:  req.EventType,
		EventData:  string(req.EventData),
		PagePath:   req.PagePath,
		PageTitle:  req.PageTitle,
		TradeType:  req.TradeType,
		County:     req.County,
		Town:       req.Town,
		SessionID:  req.SessionID,
		UserAgent:  req.UserAgent,
		DeviceType: req.DeviceType,
		CreatedAt:  s.clk.Now(),
	}

	if err := s.analyticsRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to track event: %w", err)
	}

	return nil
}

func (s *AnalyticsService) ListBySession(ctx context.Context, sessionID string) ([]domain.AnalyticsEventDTO, error) {
	events, err := s.analyticsRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by session: %w", err)
	}
	return mapper.ToAnalyticsEventDTOs(events), nil
}

// GetPageViewStats aggregates page views over [start, end], defaulting to
// the trailing seven days when the range is not supplied
func (s *AnalyticsService) GetPageViewStats(ctx context.Context, start, end *time.Time) (*domain.PageViewStats, error) {
	to := s.clk.Now()
	if end != nil {
		to = *end
	}
	from := to.Add(-defaultPageViewWindow)
	if start != nil {
		from = *start
	}

	stats, err := s.analyticsRepo.GetPageViewStats(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get page view stats: %w", err)
	}
	return stats, nil
}

// PurgeOldEvents removes events past the retention window. Called by the
// nightly retention job.
func (s *AnalyticsService) PurgeOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.clk.Now().AddDate(0, 0, -retentionDays)

	purged, err := s.analyticsRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old events: %w", err)
	}

	if purged > 0 {
		s.logger.Info("purged old analytics events",
			zap.Int64("purged", purged),
			zap.Time("cutoff", cutoff),
		)
	}

	return purged, nil
}
