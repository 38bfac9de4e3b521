package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RetentionJobName is the name of the analytics retention job
const RetentionJobName = "analytics_retention"

// retentionTimeout bounds a single purge run
const retentionTimeout = 5 * time.Minute

// EventPurger defines the interface for purging old analytics events.
// This interface allows the job to call the service without importing the
// service package directly.
type EventPurger interface {
	PurgeOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

// RetentionJob deletes analytics events older than the retention window.
type RetentionJob struct {
	purger        EventPurger
	retentionDays int
	logger        *zap.Logger
}

// NewRetentionJob creates a new analytics retention job.
func NewRetentionJob(purger EventPurger, retentionDays int, logger *zap.Logger) *RetentionJob {
	return &RetentionJob{
		purger:        purger,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Run executes one purge pass. Called by the scheduler.
func (j *RetentionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), retentionTimeout)
	defer cancel()

	start := time.Now()
	purged, err := j.purger.PurgeOldEvents(ctx, j.retentionDays)
	if err != nil {
		j.logger.Error("analytics retention job failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("analytics retention job completed",
		zap.Int64("purged", purged),
		zap.Int("retention_days", j.retentionDays),
		zap.Duration("duration", time.Since(start)))
}

// RegisterRetentionJob registers the analytics retention job with the
// scheduler using the given cron expression.
func RegisterRetentionJob(scheduler *Scheduler, purger EventPurger, retentionDays int, cronExpr string, logger *zap.Logger) error {
	job := NewRetentionJob(purger, retentionDays, logger)
	return scheduler.AddJob(RetentionJobName, cronExpr, job.Run)
}
