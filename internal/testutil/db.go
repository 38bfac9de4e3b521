// Package testutil provides shared helpers for package tests.
package testutil

import (
	"testing"

	"github.com/northbridge-capital/broker-api/internal/clock"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory sqlite database with the schema migrated.
// Record timestamps come from the supplied clock so tests are deterministic.
func NewTestDB(t *testing.T, clk clock.Clock) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: clk.Now,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.Lead{},
		&domain.QuoteCalculation{},
		&domain.ContactSubmission{},
		&domain.AnalyticsEvent{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
