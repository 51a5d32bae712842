package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loansim/loansim/internal/domain"
)

func threeLoanRecords() []domain.LoanRecord {
	return []domain.LoanRecord{
		{Name: "low", PrincipalPennies: 100000, InterestRate: 0.03},
		{Name: "high", PrincipalPennies: 100000, InterestRate: 0.07},
		{Name: "mid", PrincipalPennies: 100000, InterestRate: 0.05},
	}
}

func TestPortfolioOrdersByRateDescending(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)

	require.Len(t, portfolio.Loans, 3)
	assert.Equal(t, "high", portfolio.Loans[0].Name)
	assert.Equal(t, "mid", portfolio.Loans[1].Name)
	assert.Equal(t, "low", portfolio.Loans[2].Name)
}

func TestPortfolioOrderStableOnTies(t *testing.T) {
	records := []domain.LoanRecord{
		{Name: "first", PrincipalPennies: 100, InterestRate: 0.05},
		{Name: "second", PrincipalPennies: 200, InterestRate: 0.05},
		{Name: "third", PrincipalPennies: 300, InterestRate: 0.05},
	}
	portfolio := NewLoanPortfolioFromRecords(records, 0)

	assert.Equal(t, "first", portfolio.Loans[0].Name)
	assert.Equal(t, "second", portfolio.Loans[1].Name)
	assert.Equal(t, "third", portfolio.Loans[2].Name)
}

func TestPortfolioBalanceSumsLoans(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)
	assert.Equal(t, int64(300000), portfolio.BalancePennies())
}

func TestAdditionalPaymentAvalanche(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)

	// Enough to retire the highest-rate loan and dent the next one.
	require.NoError(t, portfolio.MakeAdditionalPayment(150000))

	assert.Equal(t, int64(0), portfolio.Loans[0].BalancePennies(), "highest rate retired first")
	assert.Equal(t, int64(50000), portfolio.Loans[1].BalancePennies(), "remainder hits next rate")
	assert.Equal(t, int64(100000), portfolio.Loans[2].BalancePennies(), "lowest rate untouched")
}

func TestAdditionalPaymentStopsAtFirstPartial(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)

	require.NoError(t, portfolio.MakeAdditionalPayment(40000))

	assert.Equal(t, int64(60000), portfolio.Loans[0].BalancePennies())
	assert.Equal(t, int64(100000), portfolio.Loans[1].BalancePennies())
	assert.Equal(t, int64(100000), portfolio.Loans[2].BalancePennies())
}

func TestAdditionalPaymentExcessIsUnspent(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)

	require.NoError(t, portfolio.MakeAdditionalPayment(10_000_000))

	assert.Equal(t, int64(0), portfolio.BalancePennies())
	for _, l := range portfolio.Loans {
		assert.GreaterOrEqual(t, l.PrincipalPennies, int64(0))
	}
}

func TestAdditionalPaymentSkipsRetiredLoans(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)
	require.NoError(t, portfolio.MakeAdditionalPayment(100000)) // retires "high"

	require.NoError(t, portfolio.MakeAdditionalPayment(30000))
	assert.Equal(t, int64(0), portfolio.Loans[0].BalancePennies())
	assert.Equal(t, int64(70000), portfolio.Loans[1].BalancePennies())
}

func TestAdditionalPaymentNonPositiveIsNoOp(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)

	require.NoError(t, portfolio.MakeAdditionalPayment(0))
	require.NoError(t, portfolio.MakeAdditionalPayment(-500))
	assert.Equal(t, int64(300000), portfolio.BalancePennies())
}

func TestSimulateOneMonthPaysEveryLoan(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)

	expected := portfolio.MinimumPayment(120)
	paid, err := portfolio.SimulateOneMonthMinimumPayments(120)
	require.NoError(t, err)

	assert.Equal(t, expected, paid, "minimums are computed against the pre-accrual balance")
	assert.Less(t, portfolio.BalancePennies(), int64(300000))
}

func TestSimulateFullHorizonRetiresPortfolio(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)

	for monthsRemaining := 120; monthsRemaining > 0; monthsRemaining-- {
		_, err := portfolio.SimulateOneMonthMinimumPayments(monthsRemaining)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(0), portfolio.BalancePennies())
}

func TestSnapshotPreservesPortfolioOrder(t *testing.T) {
	portfolio := NewLoanPortfolioFromRecords(threeLoanRecords(), 0)
	snaps := portfolio.Snapshot()

	require.Len(t, snaps, 3)
	assert.Equal(t, "high", snaps[0].Name)
	assert.Equal(t, int64(100000), snaps[0].BalancePennies)
}
