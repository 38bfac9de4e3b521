package repository

import (
	"context"
	"time"

	"github.com/northbridge-capital/broker-api/internal/domain"
	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event *domain.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *AnalyticsRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.AnalyticsEvent, error) {
	var events []domain.AnalyticsEvent
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

// GetPageViewStats aggregates page_view events inside [start, end]
func (r *AnalyticsRepository) GetPageViewStats(ctx context.Context, start, end time.Time) (*domain.PageViewStats, error) {
	stats := &domain.PageViewStats{
		ByPage:    make(map[string]int64),
		StartDate: start,
		EndDate:   end,
	}

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&domain.AnalyticsEvent{}).
			Where("event_type = ?", domain.EventTypePageView).
			Where("created_at >= ? AND created_at <= ?", start, end)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var pageRows []struct {
		PagePath string
		Count    int64
	}
	if err := base().
		Select("page_path, COUNT(*) as count").
		Group("page_path").
		Scan(&pageRows).Error; err != nil {
		return nil, err
	}
	for _, row := range pageRows {
		stats.ByPage[row.PagePath] = row.Count
	}

	if err := base().
		Select("COUNT(DISTINCT session_id)").
		Scan(&stats.UniqueSessions).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// DeleteOlderThan removes events created before the cutoff and returns
// how many were purged. Used by the retention job.
func (r *AnalyticsRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.AnalyticsEvent{})
	return result.RowsAffected, result.Error
}
