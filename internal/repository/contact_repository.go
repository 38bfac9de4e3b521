package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// List returns submissions newest first, optionally filtered by status
func (r *ContactRepository) List(ctx context.Context, status *domain.ContactStatus, limit int) ([]domain.ContactSubmission, error) {
	var submissions []domain.ContactSubmission
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Find(&submissions).Error
	return submissions, err
}

// UpdateStatus patches the handling status. RepliedAt is stamped only
// when the new status is "replied". Returns rows affected so callers can
// detect a missing submission.
func (r *ContactRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.ContactStatus,
	repliedAt *time.Time,
) (int64, error) {
	updates := map[string]interface{}{
		"status": status,
	}
	if repliedAt != nil {
		updates["replied_at"] = *repliedAt
	}

	result := r.db.WithContext(ctx).
		Model(&domain.ContactSubmission{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}
