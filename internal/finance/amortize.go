// Package finance implements the fixed-rate loan amortization used by
// every calculator page and by the quote endpoints.
package finance

import (
	"errors"
	"math"
)

// Input validation errors
var (
	ErrNonPositivePrincipal = errors.New("principal must be greater than zero")
	ErrNonPositiveTerm      = errors.New("term months must be greater than zero")
	ErrNegativeRate         = errors.New("annual rate must not be negative")
)

// Amortization is the output of one calculator run. All values are
// unrounded GBP amounts; display rounding is the caller's concern.
type Amortization struct {
	MonthlyPayment float64
	TotalInterest  float64
	TotalAmount    float64
}

// Amortize computes the fixed monthly payment for a loan of the given
// principal over termMonths at annualRatePercent (e.g. 6 for 6% APR).
//
// A zero rate is handled explicitly: the annuity formula divides zero by
// zero there, so interest-free loans fall back to straight-line repayment.
func Amortize(principal float64, annualRatePercent float64, termMonths int) (Amortization, error) {
	if principal <= 0 {
		return Amortization{}, ErrNonPositivePrincipal
	}
	if termMonths <= 0 {
		return Amortization{}, ErrNonPositiveTerm
	}
	if annualRatePercent < 0 {
		return Amortization{}, ErrNegativeRate
	}

	monthlyRate := annualRatePercent / 100 / 12

	var monthlyPayment float64
	if monthlyRate == 0 {
		monthlyPayment = principal / float64(termMonths)
	} else {
		growth := math.Pow(1+monthlyRate, float64(termMonths))
		monthlyPayment = principal * (monthlyRate * growth) / (growth - 1)
	}

	totalAmount := monthlyPayment * float64(termMonths)

	return Amortization{
		MonthlyPayment: monthlyPayment,
		TotalInterest:  totalAmount - principal,
		TotalAmount:    totalAmount,
	}, nil
}
