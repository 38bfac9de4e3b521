package service

import "errors"

// Common service errors
var (
	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")

	// ErrSubmissionNotFound is returned when a contact submission is not found
	ErrSubmissionNotFound = errors.New("contact submission not found")

	// ErrInvalidStatus is returned when a status value is outside the closed set
	ErrInvalidStatus = errors.New("invalid status")
)
