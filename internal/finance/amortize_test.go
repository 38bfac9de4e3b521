package finance_test

import (
	"testing"

	"github.com/northbridge-capital/broker-api/internal/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortize_StandardLoan(t *testing.T) {
	// Repayment-mortgage-style sanity check: £240,000 at 6% over 120 months
	result, err := finance.Amortize(240000, 6, 120)
	require.NoError(t, err)

	assert.InDelta(t, 2664.49, result.MonthlyPayment, 0.01)
	assert.InDelta(t, 319738.56, result.TotalAmount, 1.0)
	assert.InDelta(t, 79738.56, result.TotalInterest, 1.0)
}

func TestAmortize_ZeroRate(t *testing.T) {
	// Interest-free loans must not fall into the 0/0 branch of the
	// annuity formula
	result, err := finance.Amortize(12000, 0, 12)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, result.MonthlyPayment, 1e-9)
	assert.InDelta(t, 0.0, result.TotalInterest, 1e-9)
	assert.InDelta(t, 12000.0, result.TotalAmount, 1e-9)
}

func TestAmortize_Identities(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{5000, 9.9, 24},
		{25000, 7.5, 60},
		{100000, 4.25, 84},
		{250000, 0, 36},
		{750, 19.9, 6},
	}

	for _, tc := range cases {
		result, err := finance.Amortize(tc.principal, tc.rate, tc.term)
		require.NoError(t, err)

		// totalAmount == monthlyPayment * term
		assert.InDelta(t, result.MonthlyPayment*float64(tc.term), result.TotalAmount, 1e-6)
		// totalInterest == totalAmount - principal
		assert.InDelta(t, result.TotalAmount-tc.principal, result.TotalInterest, 1e-6)
		// interest never negative for non-negative rates
		assert.GreaterOrEqual(t, result.TotalInterest, -1e-9)
	}
}

func TestAmortize_InvalidInputs(t *testing.T) {
	_, err := finance.Amortize(0, 5, 12)
	assert.ErrorIs(t, err, finance.ErrNonPositivePrincipal)

	_, err = finance.Amortize(-1000, 5, 12)
	assert.ErrorIs(t, err, finance.ErrNonPositivePrincipal)

	_, err = finance.Amortize(10000, 5, 0)
	assert.ErrorIs(t, err, finance.ErrNonPositiveTerm)

	_, err = finance.Amortize(10000, 5, -6)
	assert.ErrorIs(t, err, finance.ErrNonPositiveTerm)

	_, err = finance.Amortize(10000, -0.1, 12)
	assert.ErrorIs(t, err, finance.ErrNegativeRate)
}

func TestAmortize_HigherRateCostsMore(t *testing.T) {
	low, err := finance.Amortize(50000, 3, 48)
	require.NoError(t, err)
	high, err := finance.Amortize(50000, 8, 48)
	require.NoError(t, err)

	assert.Greater(t, high.MonthlyPayment, low.MonthlyPayment)
	assert.Greater(t, high.TotalInterest, low.TotalInterest)
}
