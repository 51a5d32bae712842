package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loansim/loansim/internal/domain"
)

func newTestLoan(principal, interest int64, rate float64) *Loan {
	return NewLoan(domain.LoanRecord{
		Name:                   "test",
		PrincipalPennies:       principal,
		AccruedInterestPennies: interest,
		InterestRate:           rate,
	}, 0)
}

func TestMonthlyRateDerivation(t *testing.T) {
	tests := []struct {
		name       string
		annualRate float64
	}{
		{"five percent", 0.05},
		{"three percent", 0.03},
		{"ten percent", 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly := monthlyRate(tt.annualRate)
			// Twelve months of compounding must reproduce one year of
			// daily compounding.
			one := decimal.NewFromInt(1)
			yearFromMonthly := one.Add(monthly).Pow(decimal.NewFromInt(12))

			daily := decimal.NewFromFloat(1 + tt.annualRate/365)
			yearFromDaily := daily.Pow(decimal.NewFromInt(365))

			diff := yearFromMonthly.Sub(yearFromDaily).Abs()
			assert.True(t, diff.LessThan(decimal.NewFromFloat(1e-9)),
				"compounding mismatch: %s vs %s", yearFromMonthly, yearFromDaily)
		})
	}
}

func TestMonthlyRateZero(t *testing.T) {
	assert.True(t, monthlyRate(0).IsZero())
}

func TestNewLoanAutoPayDiscount(t *testing.T) {
	record := domain.LoanRecord{Name: "a", PrincipalPennies: 100000, InterestRate: 0.05}

	discounted := NewLoan(record, 0.0025)
	assert.InDelta(t, 0.0475, discounted.InterestRate, 1e-12)

	// Discount larger than the rate floors at zero, never negative.
	floored := NewLoan(record, 0.10)
	assert.Equal(t, 0.0, floored.InterestRate)
	assert.True(t, floored.MonthlyRate().IsZero())
}

func TestAccrueOneMonthInterest(t *testing.T) {
	loan := newTestLoan(100000, 0, 0.05)
	before := loan.BalancePennies()

	loan.AccrueOneMonthInterest()

	assert.Greater(t, loan.BalancePennies(), before)
	assert.Equal(t, int64(100000), loan.PrincipalPennies, "accrual must not touch principal")

	// Interest is the ceiling of balance times the monthly rate.
	expected := decimal.NewFromInt(before).Mul(loan.MonthlyRate()).Ceil().IntPart()
	assert.Equal(t, expected, loan.AccruedInterestPennies)
}

func TestAccrueZeroRateLoan(t *testing.T) {
	loan := newTestLoan(100000, 0, 0)
	loan.AccrueOneMonthInterest()
	assert.Equal(t, int64(100000), loan.BalancePennies())
}

func TestMinimumPaymentFullBalanceAtZeroHorizon(t *testing.T) {
	loan := newTestLoan(50000, 1234, 0.05)
	assert.Equal(t, int64(51234), loan.MinimumPaymentPennies(0))
	assert.Equal(t, int64(51234), loan.MinimumPaymentPennies(-1))
}

func TestMinimumPaymentZeroRateStraightLine(t *testing.T) {
	loan := newTestLoan(120000, 0, 0)
	assert.Equal(t, int64(1000), loan.MinimumPaymentPennies(120))

	// 1001 over 2 months rounds up, never down.
	odd := newTestLoan(1001, 0, 0)
	assert.Equal(t, int64(501), odd.MinimumPaymentPennies(2))
}

func TestMinimumPaymentAnnuity(t *testing.T) {
	// $10,000 at 5% over 120 months is roughly $106/month.
	loan := newTestLoan(1000000, 0, 0.05)
	minimum := loan.MinimumPaymentPennies(120)
	assert.Greater(t, minimum, int64(10500))
	assert.Less(t, minimum, int64(10700))

	// Shorter horizons cost more per month.
	assert.Greater(t, loan.MinimumPaymentPennies(60), minimum)
}

func TestMinimumPaymentNeverExceedsPostAccrualBalance(t *testing.T) {
	// The ceiling on the payment can never outrun the ceiling on a full
	// month of accrued interest, even at a one-month horizon.
	for _, balance := range []int64{1, 7, 99, 100001, 999999999} {
		loan := newTestLoan(balance, 0, 0.12)
		minimum := loan.MinimumPaymentPennies(1)
		loan.AccrueOneMonthInterest()
		assert.LessOrEqual(t, minimum, loan.BalancePennies(),
			"balance %d: minimum %d exceeds %d", balance, minimum, loan.BalancePennies())
	}
}

func TestMakePaymentInterestBeforePrincipal(t *testing.T) {
	loan := newTestLoan(10000, 500, 0.05)

	// Payment smaller than accrued interest touches only interest.
	require.NoError(t, loan.MakePayment(300))
	assert.Equal(t, int64(200), loan.AccruedInterestPennies)
	assert.Equal(t, int64(10000), loan.PrincipalPennies)

	// Remainder spills into principal.
	require.NoError(t, loan.MakePayment(700))
	assert.Equal(t, int64(0), loan.AccruedInterestPennies)
	assert.Equal(t, int64(9500), loan.PrincipalPennies)
}

func TestMakePaymentExactBalance(t *testing.T) {
	loan := newTestLoan(10000, 500, 0.05)
	require.NoError(t, loan.MakePayment(10500))
	assert.Equal(t, int64(0), loan.BalancePennies())
}

func TestMakePaymentOverpayFails(t *testing.T) {
	loan := newTestLoan(10000, 0, 0.05)
	err := loan.MakePayment(10001)
	require.Error(t, err)

	var violation *InvariantViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "test", violation.Loan)
	assert.Equal(t, int64(10001), violation.AmountPennies)
	assert.Equal(t, int64(10000), violation.BalancePennies)

	// A failed payment must not mutate the loan.
	assert.Equal(t, int64(10000), loan.BalancePennies())
}

func TestFixedMinimumRetiresLoanOverHorizon(t *testing.T) {
	// Recomputing and paying the minimum every month retires the loan in
	// exactly the horizon, with a zero balance and nothing negative.
	loan := newTestLoan(1000000, 0, 0.05)
	portfolio := NewLoanPortfolio([]*Loan{loan})

	for monthsRemaining := 120; monthsRemaining > 0; monthsRemaining-- {
		_, err := portfolio.SimulateOneMonthMinimumPayments(monthsRemaining)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(0), portfolio.BalancePennies())
	assert.GreaterOrEqual(t, loan.PrincipalPennies, int64(0))
}
