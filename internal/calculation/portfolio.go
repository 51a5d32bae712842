package calculation

import (
	"sort"

	"github.com/loansim/loansim/internal/domain"
)

// LoanPortfolio is an ordered collection of loans. The order is fixed once
// at construction (interest rate descending, original order on ties) and
// never changes as balances move. Walking that order is the avalanche
// strategy: extra money always attacks the costliest debt first.
type LoanPortfolio struct {
	Loans []*Loan
}

// NewLoanPortfolio takes exclusive ownership of the given loans and sorts
// them by interest rate descending, stable on ties.
func NewLoanPortfolio(loans []*Loan) *LoanPortfolio {
	sorted := make([]*Loan, len(loans))
	copy(sorted, loans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InterestRate > sorted[j].InterestRate
	})
	return &LoanPortfolio{Loans: sorted}
}

// NewLoanPortfolioFromRecords builds fresh loans from immutable records and
// assembles them into a portfolio.
func NewLoanPortfolioFromRecords(records []domain.LoanRecord, autoPayDiscount float64) *LoanPortfolio {
	loans := make([]*Loan, 0, len(records))
	for _, record := range records {
		loans = append(loans, NewLoan(record, autoPayDiscount))
	}
	return NewLoanPortfolio(loans)
}

// BalancePennies sums all loan balances.
func (p *LoanPortfolio) BalancePennies() int64 {
	var total int64
	for _, l := range p.Loans {
		total += l.BalancePennies()
	}
	return total
}

// MinimumPayment sums each loan's minimum payment at the given horizon.
// Informational only: it does not mutate any loan.
func (p *LoanPortfolio) MinimumPayment(monthsRemaining int) int64 {
	var total int64
	for _, l := range p.Loans {
		total += l.MinimumPaymentPennies(monthsRemaining)
	}
	return total
}

// SimulateOneMonthMinimumPayments advances every loan by one month. For each
// loan, in portfolio order: the minimum payment is computed against the
// pre-accrual balance, interest accrues, then the minimum is paid against
// the post-accrual balance. That ordering is a contract: reversing it
// changes every subsequent month. Returns the total paid this month.
func (p *LoanPortfolio) SimulateOneMonthMinimumPayments(monthsRemaining int) (int64, error) {
	var amountPaid int64
	for _, l := range p.Loans {
		minimum := l.MinimumPaymentPennies(monthsRemaining)
		l.AccrueOneMonthInterest()
		if err := l.MakePayment(minimum); err != nil {
			return amountPaid, err
		}
		amountPaid += minimum
	}
	return amountPaid, nil
}

// MakeAdditionalPayment spends amountPennies across the portfolio in
// avalanche order: paid-off loans are skipped, any loan whose balance fits
// in the remaining amount is retired in full, and the first loan that
// cannot be retired receives the rest. Money left over after every loan is
// paid off is simply unspent.
func (p *LoanPortfolio) MakeAdditionalPayment(amountPennies int64) error {
	remaining := amountPennies
	for _, l := range p.Loans {
		if remaining <= 0 {
			break
		}
		balance := l.BalancePennies()
		if balance <= 0 {
			continue
		}
		if balance <= remaining {
			if err := l.MakePayment(balance); err != nil {
				return err
			}
			remaining -= balance
			continue
		}
		return l.MakePayment(remaining)
	}
	return nil
}

// Snapshot captures every loan's current state, in portfolio order.
func (p *LoanPortfolio) Snapshot() []domain.LoanSnapshot {
	snaps := make([]domain.LoanSnapshot, 0, len(p.Loans))
	for _, l := range p.Loans {
		snaps = append(snaps, l.Snapshot())
	}
	return snaps
}
