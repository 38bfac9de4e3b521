package mapper

import (
	"encoding/json"
	"time"

	"github.com/northbridge-capital/broker-api/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// ToLeadDTO converts Lead to LeadDTO
func ToLeadDTO(lead *domain.Lead) domain.LeadDTO {
	return domain.LeadDTO{
		ID:              lead.ID,
		FullName:        lead.FullName,
		Email:           lead.Email,
		Phone:           lead.Phone,
		CompanyName:     lead.CompanyName,
		County:          lead.County,
		Town:            lead.Town,
		Postcode:        lead.Postcode,
		Amount:          lead.Amount,
		Purpose:         lead.Purpose,
		Urgency:         lead.Urgency,
		TermMonths:      lead.TermMonths,
		PreferredRate:   lead.PreferredRate,
		TradeType:       lead.TradeType,
		YearsTrading:    lead.YearsTrading,
		AnnualRevenue:   lead.AnnualRevenue,
		Employees:       lead.Employees,
		Certifications:  lead.Certifications,
		CreditScore:     lead.CreditScore,
		Score:           lead.Score,
		Priority:        lead.Priority,
		Status:          lead.Status,
		CreatedAt:       formatTime(lead.CreatedAt),
		UpdatedAt:       formatTime(lead.UpdatedAt),
		LastContactedAt: formatTimePtr(lead.LastContactedAt),
	}
}

// ToLeadDTOs converts a slice of leads
func ToLeadDTOs(leads []domain.Lead) []domain.LeadDTO {
	dtos := make([]domain.LeadDTO, len(leads))
	for i := range leads {
		dtos[i] = ToLeadDTO(&leads[i])
	}
	return dtos
}

// ToQuoteDTO converts QuoteCalculation to QuoteDTO
func ToQuoteDTO(quote *domain.QuoteCalculation) domain.QuoteDTO {
	return domain.QuoteDTO{
		ID:             quote.ID,
		LoanAmount:     quote.LoanAmount,
		TermMonths:     quote.TermMonths,
		InterestRate:   quote.InterestRate,
		MonthlyPayment: quote.MonthlyPayment,
		TotalInterest:  quote.TotalInterest,
		TotalAmount:    quote.TotalAmount,
		TradeType:      quote.TradeType,
		County:         quote.County,
		Town:           quote.Town,
		LeadID:         quote.LeadID,
		SessionID:      quote.SessionID,
		CreatedAt:      formatTime(quote.CreatedAt),
	}
}

// ToQuoteDTOs converts a slice of quotes
func ToQuoteDTOs(quotes []domain.QuoteCalculation) []domain.QuoteDTO {
	dtos := make([]domain.QuoteDTO, len(quotes))
	for i := range quotes {
		dtos[i] = ToQuoteDTO(&quotes[i])
	}
	return dtos
}

// ToContactSubmissionDTO converts ContactSubmission to its DTO
func ToContactSubmissionDTO(submission *domain.ContactSubmission) domain.ContactSubmissionDTO {
	return domain.ContactSubmissionDTO{
		ID:        submission.ID,
		Name:      submission.Name,
		Email:     submission.Email,
		Phone:     submission.Phone,
		Subject:   submission.Subject,
		Message:   submission.Message,
		LeadID:    submission.LeadID,
		Status:    submission.Status,
		CreatedAt: formatTime(submission.CreatedAt),
		RepliedAt: formatTimePtr(submission.RepliedAt),
	}
}

// ToContactSubmissionDTOs converts a slice of submissions
func ToContactSubmissionDTOs(submissions []domain.ContactSubmission) []domain.ContactSubmissionDTO {
	dtos := make([]domain.ContactSubmissionDTO, len(submissions))
	for i := range submissions {
		dtos[i] = ToContactSubmissionDTO(&submissions[i])
	}
	return dtos
}

// ToAnalyticsEventDTO converts AnalyticsEvent to its DTO. The stored
// payload is passed through as raw JSON without inspection.
func ToAnalyticsEventDTO(event *domain.AnalyticsEvent) domain.AnalyticsEventDTO {
	var data json.RawMessage
	if event.EventData != "" {
		data = json.RawMessage(event.EventData)
	}
	return domain.AnalyticsEventDTO{
		ID:         event.ID,
		EventType:  event.EventType,
		EventData:  data,
		PagePath:   event.PagePath,
		PageTitle:  event.PageTitle,
		TradeType:  event.TradeType,
		County:     event.County,
		Town:       event.Town,
		SessionID:  event.SessionID,
		UserAgent:  event.UserAgent,
		DeviceType: event.DeviceType,
		CreatedAt:  formatTime(event.CreatedAt),
	}
}

// ToAnalyticsEventDTOs converts a slice of events
func ToAnalyticsEventDTOs(events []domain.AnalyticsEvent) []domain.AnalyticsEventDTO {
	dtos := make([]domain.AnalyticsEventDTO, len(events))
	for i := range events {
		dtos[i] = ToAnalyticsEventDTO(&events[i])
	}
	return dtos
}
