package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns the primary key when the caller did not
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// LeadStatus represents the pipeline status of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
)

// LeadPriority is the tier derived from the lead score at creation time.
// It is computed once and never recalculated, even when the status changes.
type LeadPriority string

const (
	LeadPriorityHot  LeadPriority = "hot"
	LeadPriorityWarm LeadPriority = "warm"
	LeadPriorityCold LeadPriority = "cold"
)

// Urgency values recognized by the lead scorer. Any other string is
// accepted but contributes no urgency points.
const (
	UrgencyUrgent    = "urgent"
	UrgencyThisWeek  = "this-week"
	UrgencyThisMonth = "this-month"
	UrgencyPlanning  = "planning"
)

// Lead represents a finance inquiry captured from the marketing site
type Lead struct {
	BaseModel
	FullName    string `gorm:"type:varchar(200);not null"`
	Email       string `gorm:"type:varchar(255);not null;index"`
	Phone       string `gorm:"type:varchar(50)"`
	CompanyName string `gorm:"type:varchar(200)"`

	// Location
	County   string `gorm:"type:varchar(100);not null"`
	Town     string `gorm:"type:varchar(100);not null"`
	Postcode string `gorm:"type:varchar(20)"`

	// Finance details
	Amount        float64  `gorm:"not null"`
	Purpose       string   `gorm:"type:varchar(200);not null"`
	Urgency       string   `gorm:"type:varchar(50);not null"`
	TermMonths    *int     `gorm:""`
	PreferredRate *float64 `gorm:""`
	TradeType     string   `gorm:"type:varchar(100);index"`

	// Business info (all optional, free-text tiers from the intake form)
	YearsTrading   string `gorm:"type:varchar(20)"`
	AnnualRevenue  string `gorm:"type:varchar(20)"`
	Employees      string `gorm:"type:varchar(20)"`
	Certifications string `gorm:"type:varchar(500)"`
	CreditScore    string `gorm:"type:varchar(20)"`

	// Derived at creation, immutable thereafter
	Score    int          `gorm:"not null"`
	Priority LeadPriority `gorm:"type:varchar(10);not null;index"`

	Status          LeadStatus `gorm:"type:varchar(20);not null;default:'new';index"`
	LastContactedAt *time.Time `gorm:""`
}

// QuoteCalculation is a persisted snapshot of one amortization-calculator
// run. Created once per calculator submission, immutable thereafter.
type QuoteCalculation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	LoanAmount   float64   `gorm:"not null"`
	TermMonths   int       `gorm:"not null"`
	InterestRate float64   `gorm:"not null"`

	// Calculator output, stored as submitted by the caller
	MonthlyPayment float64 `gorm:"not null"`
	TotalInterest  float64 `gorm:"not null"`
	TotalAmount    float64 `gorm:"not null"`

	TradeType string     `gorm:"type:varchar(100);index"`
	County    string     `gorm:"type:varchar(100)"`
	Town      string     `gorm:"type:varchar(100)"`
	LeadID    *uuid.UUID `gorm:"type:uuid;index"`
	SessionID string     `gorm:"type:varchar(100);index"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (q *QuoteCalculation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// ContactStatus represents the handling status of a contact submission
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusReplied ContactStatus = "replied"
)

// ContactSubmission represents a message sent through the contact form
type ContactSubmission struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key"`
	Name      string        `gorm:"type:varchar(200);not null"`
	Email     string        `gorm:"type:varchar(255);not null"`
	Phone     string        `gorm:"type:varchar(50)"`
	Subject   string        `gorm:"type:varchar(200);not null"`
	Message   string        `gorm:"type:text;not null"`
	LeadID    *uuid.UUID    `gorm:"type:uuid;index"`
	Status    ContactStatus `gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt time.Time     `gorm:"not null"`
	RepliedAt *time.Time    `gorm:""`
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// EventTypePageView is the event type aggregated by the page-view stats query
const EventTypePageView = "page_view"

// AnalyticsEvent is a write-once, append-only tracking record.
// EventData is an opaque JSON payload that the backend never inspects.
type AnalyticsEvent struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	EventType  string    `gorm:"type:varchar(100);not null;index"`
	EventData  string    `gorm:"type:text"`
	PagePath   string    `gorm:"type:varchar(500);not null;index"`
	PageTitle  string    `gorm:"type:varchar(300)"`
	TradeType  string    `gorm:"type:varchar(100)"`
	County     string    `gorm:"type:varchar(100)"`
	Town       string    `gorm:"type:varchar(100)"`
	SessionID  string    `gorm:"type:varchar(100);not null;index"`
	UserAgent  string    `gorm:"type:varchar(500)"`
	DeviceType string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
