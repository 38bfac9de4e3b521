package repository

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateStatus patches the status and timestamps of a lead. The score and
// priority columns are deliberately untouched: they are derived once at
// creation. Returns the number of rows affected so callers can detect a
// missing lead.
func (r *LeadRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.LeadStatus,
	updatedAt time.Time,
	lastContactedAt *time.Time,
) (int64, error) {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": updatedAt,
	}
	if lastContactedAt != nil {
		updates["last_contacted_at"] = *lastContactedAt
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *LeadRepository) ListByStatus(ctx context.Context, status domain.LeadStatus, limit int) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error
	return leads, err
}

// ListHot returns unworked high-priority leads: priority=hot AND status=new
func (r *LeadRepository) ListHot(ctx context.Context, limit int) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Where("priority = ? AND status = ?", domain.LeadPriorityHot, domain.LeadStatusNew).
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error
	return leads, err
}

func (r *LeadRepository) ListRecent(ctx context.Context, limit int) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error
	return leads, err
}

func (r *LeadRepository) ListByTrade(ctx context.Context, tradeType string, limit int) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Where("trade_type = ?", tradeType).
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error
	return leads, err
}

func (r *LeadRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// GetStats aggregates the lead table for the dashboard. The time windows
// are trailing 24 hours, 7 days and 30 days from the supplied instant.
// Aggregation runs in SQL rather than over a collected result set.
func (r *LeadRepository) GetStats(ctx context.Context, now time.Time) (*domain.LeadStats, error) {
	stats := &domain.LeadStats{
		ByStatus: map[domain.LeadStatus]int64{
			domain.LeadStatusNew:       0,
			domain.LeadStatusContacted: 0,
			domain.LeadStatusQualified: 0,
			domain.LeadStatusConverted: 0,
		},
		ByPriority: map[domain.LeadPriority]int64{
			domain.LeadPriorityHot:  0,
			domain.LeadPriorityWarm: 0,
			domain.LeadPriorityCold: 0,
		},
	}

	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	windows := []struct {
		since time.Time
		dest  *int64
	}{
		{now.Add(-24 * time.Hour), &stats.Today},
		{now.Add(-7 * 24 * time.Hour), &stats.ThisWeek},
		{now.Add(-30 * 24 * time.Hour), &stats.ThisMonth},
	}
	for _, w := range windows {
		if err := r.db.WithContext(ctx).
			Model(&domain.Lead{}).
			Where("created_at >= ?", w.since).
			Count(w.dest).Error; err != nil {
			return nil, err
		}
	}

	var statusRows []struct {
		Status domain.LeadStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Status] = row.Count
	}

	var priorityRows []struct {
		Priority domain.LeadPriority
		Count    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Select("priority, COUNT(*) as count").
		Group("priority").
		Scan(&priorityRows).Error; err != nil {
		return nil, err
	}
	for _, row := range priorityRows {
		stats.ByPriority[row.Priority] = row.Count
	}

	var avgScore float64
	if err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avgScore).Error; err != nil {
		return nil, err
	}
	stats.AvgScore = math.Round(avgScore*100) / 100

	return stats, nil
}
