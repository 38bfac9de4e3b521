// Package scoring implements the deterministic lead scorer. The score is
// an additive sum of independent point buckets over the lead's finance and
// business attributes, computed exactly once when the lead is created.
package scoring

import "github.com/northbridge-capital/broker-api/internal/domain"

// Priority thresholds, inclusive on the lower bound
const (
	hotThreshold  = 70
	warmThreshold = 40
)

// maxScore caps the final score. The bucket maxima sum to exactly 100, so
// the clamp only matters if bucket weights change.
const maxScore = 100

// Input holds the attributes the scorer reads. Amount and Urgency come
// from the finance details; the rest are optional business-info tiers and
// contribute nothing when empty.
type Input struct {
	Amount        float64
	Urgency       string
	YearsTrading  string
	AnnualRevenue string
	CreditScore   string
}

// Result is the derived score and priority tier
type Result struct {
	Score    int
	Priority domain.LeadPriority
}

// Score maps a lead's attributes to a score in [0,100] and a priority
// tier. Every input produces some score; unrecognized values fall through
// to default buckets rather than failing.
func Score(in Input) Result {
	total := amountPoints(in.Amount) +
		urgencyPoints(in.Urgency) +
		yearsTradingPoints(in.YearsTrading) +
		annualRevenuePoints(in.AnnualRevenue) +
		creditScorePoints(in.CreditScore)

	if total > maxScore {
		total = maxScore
	}

	return Result{Score: total, Priority: priorityFor(total)}
}

// amountPoints awards up to 30 points by loan amount. Thresholds are
// inclusive lower bounds, highest first.
func amountPoints(amount float64) int {
	switch {
	case amount >= 100000:
		return 30
	case amount >= 50000:
		return 25
	case amount >= 25000:
		return 20
	case amount >= 10000:
		return 15
	case amount >= 5000:
		return 10
	default:
		return 5
	}
}

// urgencyPoints awards up to 30 points. Unrecognized urgency is not an
// error; it simply scores zero.
func urgencyPoints(urgency string) int {
	switch urgency {
	case domain.UrgencyUrgent:
		return 30
	case domain.UrgencyThisWeek:
		return 25
	case domain.UrgencyThisMonth:
		return 15
	case domain.UrgencyPlanning:
		return 5
	default:
		return 0
	}
}

// yearsTradingPoints awards up to 15 points when the field is present.
// Any non-empty value outside the named tiers still earns the "other"
// bucket; an absent field contributes nothing.
func yearsTradingPoints(years string) int {
	if years == "" {
		return 0
	}
	switch years {
	case "5+":
		return 15
	case "3-5":
		return 12
	case "1-3":
		return 8
	default:
		return 4
	}
}

// annualRevenuePoints awards up to 15 points when the field is present
func annualRevenuePoints(revenue string) int {
	if revenue == "" {
		return 0
	}
	switch revenue {
	case "500k+":
		return 15
	case "250k-500k":
		return 12
	case "100k-250k":
		return 8
	case "50k-100k":
		return 5
	default:
		return 2
	}
}

// creditScorePoints awards up to 10 points when the field is present
func creditScorePoints(credit string) int {
	if credit == "" {
		return 0
	}
	switch credit {
	case "excellent":
		return 10
	case "good":
		return 8
	case "fair":
		return 5
	default:
		return 2
	}
}

func priorityFor(score int) domain.LeadPriority {
	switch {
	case score >= hotThreshold:
		return domain.LeadPriorityHot
	case score >= warmThreshold:
		return domain.LeadPriorityWarm
	default:
		return domain.LeadPriorityCold
	}
}
