package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ErrorResponse is the generic error payload returned by handlers
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LocationInput carries the location block of an intake form
type LocationInput struct {
	County   string `json:"county" validate:"required,max=100"`
	Town     string `json:"town" validate:"required,max=100"`
	Postcode string `json:"postcode,omitempty" validate:"omitempty,max=20"`
}

// FinanceDetailsInput carries the finance block of an intake form
type FinanceDetailsInput struct {
	Amount        float64  `json:"amount" validate:"gte=0"`
	Purpose       string   `json:"purpose" validate:"required,max=200"`
	Urgency       string   `json:"urgency" validate:"required,max=50"`
	TermMonths    *int     `json:"termMonths,omitempty" validate:"omitempty,gt=0"`
	PreferredRate *float64 `json:"preferredRate,omitempty" validate:"omitempty,gte=0"`
}

// BusinessInfoInput carries the optional business block of an intake form.
// The tier strings are free-form; unrecognized non-empty values still earn
// the scorer's "other" bucket points.
type BusinessInfoInput struct {
	YearsTrading   string `json:"yearsTrading,omitempty" validate:"omitempty,max=20"`
	AnnualRevenue  string `json:"annualRevenue,omitempty" validate:"omitempty,max=20"`
	Employees      string `json:"employees,omitempty" validate:"omitempty,max=20"`
	Certifications string `json:"certifications,omitempty" validate:"omitempty,max=500"`
	CreditScore    string `json:"creditScore,omitempty" validate:"omitempty,max=20"`
}

// CreateLeadRequest is the lead-intake payload
type CreateLeadRequest struct {
	FullName       string              `json:"fullName" validate:"required,max=200"`
	Email          string              `json:"email" validate:"required,email,max=255"`
	Phone          string              `json:"phone,omitempty" validate:"omitempty,max=50"`
	CompanyName    string              `json:"companyName,omitempty" validate:"omitempty,max=200"`
	TradeType      string              `json:"tradeType,omitempty" validate:"omitempty,max=100"`
	Location       LocationInput       `json:"location" validate:"required"`
	FinanceDetails FinanceDetailsInput `json:"financeDetails" validate:"required"`
	BusinessInfo   *BusinessInfoInput  `json:"businessInfo,omitempty"`
}

// CreateLeadResponse returns the identifier plus the derived score and tier
type CreateLeadResponse struct {
	LeadID   uuid.UUID    `json:"leadId"`
	Score    int          `json:"score"`
	Priority LeadPriority `json:"priority"`
}

// UpdateLeadStatusRequest changes a lead's pipeline status
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified converted"`
}

// LeadDTO is the admin-facing lead representation
type LeadDTO struct {
	ID              uuid.UUID    `json:"id"`
	FullName        string       `json:"fullName"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone,omitempty"`
	CompanyName     string       `json:"companyName,omitempty"`
	County          string       `json:"county"`
	Town            string       `json:"town"`
	Postcode        string       `json:"postcode,omitempty"`
	Amount          float64      `json:"amount"`
	Purpose         string       `json:"purpose"`
	Urgency         string       `json:"urgency"`
	TermMonths      *int         `json:"termMonths,omitempty"`
	PreferredRate   *float64     `json:"preferredRate,omitempty"`
	TradeType       string       `json:"tradeType,omitempty"`
	YearsTrading    string       `json:"yearsTrading,omitempty"`
	AnnualRevenue   string       `json:"annualRevenue,omitempty"`
	Employees       string       `json:"employees,omitempty"`
	Certifications  string       `json:"certifications,omitempty"`
	CreditScore     string       `json:"creditScore,omitempty"`
	Score           int          `json:"score"`
	Priority        LeadPriority `json:"priority"`
	Status          LeadStatus   `json:"status"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt"`
	LastContactedAt *string      `json:"lastContactedAt,omitempty"`
}

// EmailExistsResponse answers the intake form's duplicate-email check
type EmailExistsResponse struct {
	Exists bool `json:"exists"`
}

// LeadStats aggregates the lead table for the dashboard.
// Every status and priority key is always present, zero-valued on an
// empty table.
type LeadStats struct {
	Total      int64                  `json:"total"`
	Today      int64                  `json:"today"`
	ThisWeek   int64                  `json:"thisWeek"`
	ThisMonth  int64                  `json:"thisMonth"`
	ByStatus   map[LeadStatus]int64   `json:"byStatus"`
	ByPriority map[LeadPriority]int64 `json:"byPriority"`
	AvgScore   float64                `json:"avgScore"`
}

// SaveQuoteRequest persists a calculator run. The derived figures are
// stored as submitted; the calculator UI is the source of truth here.
type SaveQuoteRequest struct {
	LoanAmount     float64    `json:"loanAmount" validate:"gt=0"`
	TermMonths     int        `json:"termMonths" validate:"gt=0"`
	InterestRate   float64    `json:"interestRate" validate:"gte=0"`
	MonthlyPayment float64    `json:"monthlyPayment" validate:"gte=0"`
	TotalInterest  float64    `json:"totalInterest" validate:"gte=0"`
	TotalAmount    float64    `json:"totalAmount" validate:"gte=0"`
	TradeType      string     `json:"tradeType,omitempty" validate:"omitempty,max=100"`
	County         string     `json:"county,omitempty" validate:"omitempty,max=100"`
	Town           string     `json:"town,omitempty" validate:"omitempty,max=100"`
	LeadID         *uuid.UUID `json:"leadId,omitempty"`
	SessionID      string     `json:"sessionId,omitempty" validate:"omitempty,max=100"`
}

// SaveQuoteResponse returns the new quote identifier
type SaveQuoteResponse struct {
	QuoteID uuid.UUID `json:"quoteId"`
}

// CalculateRequest is the stateless amortization endpoint payload
type CalculateRequest struct {
	LoanAmount   float64 `json:"loanAmount" validate:"gt=0"`
	TermMonths   int     `json:"termMonths" validate:"gt=0"`
	InterestRate float64 `json:"interestRate" validate:"gte=0"`
}

// CalculateResponse carries the amortization output
type CalculateResponse struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalAmount    float64 `json:"totalAmount"`
}

// QuoteDTO is the stored quote representation
type QuoteDTO struct {
	ID             uuid.UUID  `json:"id"`
	LoanAmount     float64    `json:"loanAmount"`
	TermMonths     int        `json:"termMonths"`
	InterestRate   float64    `json:"interestRate"`
	MonthlyPayment float64    `json:"monthlyPayment"`
	TotalInterest  float64    `json:"totalInterest"`
	TotalAmount    float64    `json:"totalAmount"`
	TradeType      string     `json:"tradeType,omitempty"`
	County         string     `json:"county,omitempty"`
	Town           string     `json:"town,omitempty"`
	LeadID         *uuid.UUID `json:"leadId,omitempty"`
	SessionID      string     `json:"sessionId,omitempty"`
	CreatedAt      string     `json:"createdAt"`
}

// CalculatorStats aggregates the quote table for the dashboard.
// avgLoanAmount and avgTermMonths are rounded to the nearest integer,
// avgInterestRate to two decimal places.
type CalculatorStats struct {
	Total           int64            `json:"total"`
	AvgLoanAmount   int64            `json:"avgLoanAmount"`
	AvgTermMonths   int64            `json:"avgTermMonths"`
	AvgInterestRate float64          `json:"avgInterestRate"`
	ByTrade         map[string]int64 `json:"byTrade"`
}

// CreateContactRequest is the contact-form payload
type CreateContactRequest struct {
	Name    string     `json:"name" validate:"required,max=200"`
	Email   string     `json:"email" validate:"required,email,max=255"`
	Phone   string     `json:"phone,omitempty" validate:"omitempty,max=50"`
	Subject string     `json:"subject" validate:"required,max=200"`
	Message string     `json:"message" validate:"required"`
	LeadID  *uuid.UUID `json:"leadId,omitempty"`
}

// CreateContactResponse returns the new submission identifier
type CreateContactResponse struct {
	SubmissionID uuid.UUID `json:"submissionId"`
}

// UpdateContactStatusRequest changes a submission's handling status
type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new replied"`
}

// ContactSubmissionDTO is the admin-facing submission representation
type ContactSubmissionDTO struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	LeadID    *uuid.UUID    `json:"leadId,omitempty"`
	Status    ContactStatus `json:"status"`
	CreatedAt string        `json:"createdAt"`
	RepliedAt *string       `json:"repliedAt,omitempty"`
}

// TrackEventRequest records one analytics event. EventData is passed
// through untouched.
type TrackEventRequest struct {
	EventType  string          `json:"eventType" validate:"required,max=100"`
	EventData  json.RawMessage `json:"eventData,omitempty"`
	PagePath   string          `json:"pagePath" validate:"required,max=500"`
	PageTitle  string          `json:"pageTitle,omitempty" validate:"omitempty,max=300"`
	TradeType  string          `json:"tradeType,omitempty" validate:"omitempty,max=100"`
	County     string          `json:"county,omitempty" validate:"omitempty,max=100"`
	Town       string          `json:"town,omitempty" validate:"omitempty,max=100"`
	SessionID  string          `json:"sessionId" validate:"required,max=100"`
	UserAgent  string          `json:"userAgent,omitempty" validate:"omitempty,max=500"`
	DeviceType string          `json:"deviceType,omitempty" validate:"omitempty,max=50"`
}

// AnalyticsEventDTO is the admin-facing event representation
type AnalyticsEventDTO struct {
	ID         uuid.UUID       `json:"id"`
	EventType  string          `json:"eventType"`
	EventData  json.RawMessage `json:"eventData,omitempty"`
	PagePath   string          `json:"pagePath"`
	PageTitle  string          `json:"pageTitle,omitempty"`
	TradeType  string          `json:"tradeType,omitempty"`
	County     string          `json:"county,omitempty"`
	Town       string          `json:"town,omitempty"`
	SessionID  string          `json:"sessionId"`
	UserAgent  string          `json:"userAgent,omitempty"`
	DeviceType string          `json:"deviceType,omitempty"`
	CreatedAt  string          `json:"createdAt"`
}

// PageViewStats aggregates page_view events over a date window
type PageViewStats struct {
	Total          int64            `json:"total"`
	ByPage         map[string]int64 `json:"byPage"`
	UniqueSessions int64            `json:"uniqueSessions"`
	StartDate      time.Time        `json:"startDate"`
	EndDate        time.Time        `json:"endDate"`
}
