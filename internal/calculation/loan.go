package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/loansim/loansim/internal/domain"
)

// daysPerYear is the day-count basis used both to derive the daily rate and
// to compound it back out to a year.
const daysPerYear = 365

// Loan is one debt instrument inside a simulation run. Balances are integer
// pennies and never go negative: a fully paid loan persists with balance 0
// and is skipped by the portfolio's allocation walk.
type Loan struct {
	Name                   string
	PrincipalPennies       int64
	AccruedInterestPennies int64
	InterestRate           float64 // annual nominal rate after auto-pay discount

	monthlyRate decimal.Decimal
}

// NewLoan builds a mutable Loan from an immutable record. The auto-pay rate
// discount is subtracted from the record's rate, floored at zero.
func NewLoan(record domain.LoanRecord, autoPayDiscount float64) *Loan {
	rate := record.InterestRate - autoPayDiscount
	if rate < 0 {
		rate = 0
	}
	return &Loan{
		Name:                   record.Name,
		PrincipalPennies:       record.PrincipalPennies,
		AccruedInterestPennies: record.AccruedInterestPennies,
		InterestRate:           rate,
		monthlyRate:            monthlyRate(rate),
	}
}

// monthlyRate derives the monthly rate whose 12-fold monthly compounding
// reproduces a full year of daily compounding at rate/daysPerYear.
func monthlyRate(annualRate float64) decimal.Decimal {
	daily := annualRate / daysPerYear
	monthly := math.Pow(math.Pow(1+daily, daysPerYear), 1.0/12.0) - 1
	return decimal.NewFromFloat(monthly)
}

// BalancePennies is the total owed: principal plus accrued interest.
func (l *Loan) BalancePennies() int64 {
	return l.PrincipalPennies + l.AccruedInterestPennies
}

// MonthlyRate exposes the derived monthly rate.
func (l *Loan) MonthlyRate() decimal.Decimal {
	return l.monthlyRate
}

// AccrueOneMonthInterest adds one month of interest on the full balance to
// the unpaid interest. Rounding is ceiling: fractional pennies never favor
// the borrower.
func (l *Loan) AccrueOneMonthInterest() {
	interest := decimal.NewFromInt(l.BalancePennies()).Mul(l.monthlyRate).Ceil().IntPart()
	l.AccruedInterestPennies += interest
}

// MinimumPaymentPennies returns the fixed installment that fully amortizes
// the current balance over monthsRemaining periods at the loan's monthly
// rate (the standard annuity formula), rounded up to whole pennies.
//
// A horizon of zero means the loan is due now: the minimum is the full
// balance. A zero monthly rate degenerates to straight-line repayment.
func (l *Loan) MinimumPaymentPennies(monthsRemaining int) int64 {
	if monthsRemaining <= 0 {
		return l.BalancePennies()
	}
	balance := decimal.NewFromInt(l.BalancePennies())
	n := decimal.NewFromInt(int64(monthsRemaining))
	if l.monthlyRate.IsZero() {
		return balance.Div(n).Ceil().IntPart()
	}
	one := decimal.NewFromInt(1)
	compounded := one.Add(l.monthlyRate).Pow(n)
	numerator := l.monthlyRate.Mul(compounded)
	denominator := compounded.Sub(one)
	return balance.Mul(numerator).Div(denominator).Ceil().IntPart()
}

// MakePayment applies amountPennies to the loan: accrued interest first,
// remainder to principal. Paying more than the balance would drive the
// principal negative; that is an allocation bug in the caller and returns
// an InvariantViolationError.
func (l *Loan) MakePayment(amountPennies int64) error {
	if amountPennies > l.BalancePennies() {
		return &InvariantViolationError{
			Loan:           l.Name,
			AmountPennies:  amountPennies,
			BalancePennies: l.BalancePennies(),
		}
	}
	if amountPennies < l.AccruedInterestPennies {
		l.AccruedInterestPennies -= amountPennies
		return nil
	}
	amountPennies -= l.AccruedInterestPennies
	l.AccruedInterestPennies = 0
	l.PrincipalPennies -= amountPennies
	return nil
}

// Snapshot captures the loan's current state for reporting.
func (l *Loan) Snapshot() domain.LoanSnapshot {
	return domain.LoanSnapshot{
		Name:           l.Name,
		InterestRate:   l.InterestRate,
		BalancePennies: l.BalancePennies(),
	}
}
